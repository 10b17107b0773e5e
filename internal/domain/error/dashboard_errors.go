// Package error defines domain-specific errors for the personal finance dashboard.
package error

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Dashboard domain errors.
var (
	// ErrAmountNotNumeric is returned when a stored transaction amount cannot
	// be coerced to a number. This indicates data corruption rather than a
	// caller mistake: the aggregation fails instead of silently skipping the
	// row, because a skipped row would misrepresent the user's balance.
	ErrAmountNotNumeric = errors.New("transaction amount is not numeric")

	// ErrInvalidMonthsBack is returned when the monthly summary window is not positive.
	ErrInvalidMonthsBack = errors.New("months must be greater than zero")
)

// StatsErrorCode defines error codes for aggregation errors.
// Format: DSH-XXYYYY where XX is category and YYYY is specific error.
type StatsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidMonthsBack StatsErrorCode = "DSH-010001"

	// Computation errors (02XXXX)
	ErrCodeAmountNotNumeric StatsErrorCode = "DSH-020001"
)

// StatsError represents an aggregation error with code and message.
// For computation errors, TransactionID identifies the offending row.
type StatsError struct {
	Code          StatsErrorCode
	Message       string
	TransactionID uuid.UUID
	Err           error
}

// Error implements the error interface.
func (e *StatsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *StatsError) Unwrap() error {
	return e.Err
}

// NewStatsError creates a new StatsError with the given code and message.
func NewStatsError(code StatsErrorCode, message string, err error) *StatsError {
	return &StatsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewComputationError creates a StatsError identifying the transaction whose
// stored amount could not be coerced to a number.
func NewComputationError(transactionID uuid.UUID, rawAmount string) *StatsError {
	return &StatsError{
		Code:          ErrCodeAmountNotNumeric,
		Message:       fmt.Sprintf("transaction %s has non-numeric amount %q", transactionID, rawAmount),
		TransactionID: transactionID,
		Err:           ErrAmountNotNumeric,
	}
}

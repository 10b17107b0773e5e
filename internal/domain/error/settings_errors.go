// Package error defines domain-specific errors for the personal finance dashboard.
package error

import "errors"

// Settings domain errors.
var (
	// ErrInvalidFirstDayOfWeek is returned when the first day of week value is not recognized.
	ErrInvalidFirstDayOfWeek = errors.New("invalid first day of week")

	// ErrProfileNameTooLong is returned when the profile name exceeds the maximum length.
	ErrProfileNameTooLong = errors.New("profile name exceeds maximum length")
)

// SettingsErrorCode defines error codes for user settings errors.
// Format: SET-XXYYYY where XX is category and YYYY is specific error.
type SettingsErrorCode string

const (
	// Profile errors (01XXXX)
	ErrCodeInvalidFirstDayOfWeek SettingsErrorCode = "SET-010001"
	ErrCodeProfileNameTooLong    SettingsErrorCode = "SET-010002"
	ErrCodeMissingProfileFields  SettingsErrorCode = "SET-010003"
)

// SettingsError represents a user settings error with code and message.
type SettingsError struct {
	Code    SettingsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SettingsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SettingsError) Unwrap() error {
	return e.Err
}

// NewSettingsError creates a new SettingsError with the given code and message.
func NewSettingsError(code SettingsErrorCode, message string, err error) *SettingsError {
	return &SettingsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

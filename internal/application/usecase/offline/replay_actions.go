// Package offline contains the deferred action queue use cases.
package offline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MuriloKuehne/personal-finance-dashboard/internal/application/adapter"
	"github.com/MuriloKuehne/personal-finance-dashboard/internal/application/usecase/transaction"
	"github.com/MuriloKuehne/personal-finance-dashboard/internal/domain/entity"
	domainerror "github.com/MuriloKuehne/personal-finance-dashboard/internal/domain/error"
)

// createTransactionPayload mirrors the create-transaction request body as
// the client recorded it while offline.
type createTransactionPayload struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	CategoryID  *uuid.UUID      `json:"category_id,omitempty"`
}

// ReplayActionsInput represents the input for replaying a user's queue.
type ReplayActionsInput struct {
	UserID uuid.UUID
}

// ReplayActionsOutput represents the outcome of one replay pass.
type ReplayActionsOutput struct {
	Replayed int
	Dropped  int
	Failed   int
}

// ReplayActionsUseCase drains a user's deferred action queue through the
// regular use cases, as if the client had been online when it recorded them.
type ReplayActionsUseCase struct {
	queue     adapter.ActionQueue
	createTxn *transaction.CreateTransactionUseCase
	logger    *slog.Logger
}

// NewReplayActionsUseCase creates a new ReplayActionsUseCase instance.
func NewReplayActionsUseCase(
	queue adapter.ActionQueue,
	createTxn *transaction.CreateTransactionUseCase,
	logger *slog.Logger,
) *ReplayActionsUseCase {
	return &ReplayActionsUseCase{
		queue:     queue,
		createTxn: createTxn,
		logger:    logger,
	}
}

// Execute replays the user's pending actions in enqueue order. An action is
// removed only after its replay succeeded, so a crash mid-pass loses
// nothing. Unparseable or unknown actions are dropped with a log: retrying
// them can never succeed. A failed replay of a well-formed action keeps the
// action queued for the next pass and stops the pass, preserving order.
func (uc *ReplayActionsUseCase) Execute(ctx context.Context, input ReplayActionsInput) (*ReplayActionsOutput, error) {
	actions, err := uc.queue.List(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list actions: %w", err)
	}

	output := &ReplayActionsOutput{}

	for _, action := range actions {
		switch action.Type {
		case adapter.QueuedActionCreateTransaction:
			if err := uc.replayCreateTransaction(ctx, action); err != nil {
				if isPermanent(err) {
					uc.logger.Warn("dropping unreplayable action",
						"action_id", action.ID,
						"user_id", action.UserID,
						"error", err)
					if removeErr := uc.queue.Remove(ctx, action.UserID, action.ID); removeErr != nil {
						return output, fmt.Errorf("failed to remove action: %w", removeErr)
					}
					output.Dropped++
					continue
				}
				output.Failed++
				return output, fmt.Errorf("failed to replay action %s: %w", action.ID, err)
			}
		default:
			uc.logger.Warn("dropping action of unknown type",
				"action_id", action.ID,
				"user_id", action.UserID,
				"type", action.Type)
			if err := uc.queue.Remove(ctx, action.UserID, action.ID); err != nil {
				return output, fmt.Errorf("failed to remove action: %w", err)
			}
			output.Dropped++
			continue
		}

		if err := uc.queue.Remove(ctx, action.UserID, action.ID); err != nil {
			return output, fmt.Errorf("failed to remove action: %w", err)
		}
		output.Replayed++
	}

	return output, nil
}

func (uc *ReplayActionsUseCase) replayCreateTransaction(ctx context.Context, action *adapter.QueuedAction) error {
	var payload createTransactionPayload
	if err := json.Unmarshal(action.Payload, &payload); err != nil {
		return permanentError{fmt.Errorf("malformed payload: %w", err)}
	}

	date, err := time.Parse("2006-01-02", payload.Date)
	if err != nil {
		return permanentError{fmt.Errorf("malformed date %q: %w", payload.Date, err)}
	}

	_, err = uc.createTxn.Execute(ctx, transaction.CreateTransactionInput{
		UserID:      action.UserID,
		Date:        date,
		Description: payload.Description,
		Amount:      payload.Amount,
		Type:        entity.TransactionType(payload.Type),
		CategoryID:  payload.CategoryID,
	})
	return err
}

// permanentError marks a replay failure no retry can fix.
type permanentError struct {
	err error
}

func (e permanentError) Error() string { return e.err.Error() }

func (e permanentError) Unwrap() error { return e.err }

// isPermanent reports whether retrying the action could ever succeed.
// Malformed payloads and validation rejections are permanent; anything
// else (store outage, timeout) is worth keeping for the next pass.
func isPermanent(err error) bool {
	if _, ok := err.(permanentError); ok {
		return true
	}
	var txnErr *domainerror.TransactionError
	return errors.As(err, &txnErr)
}

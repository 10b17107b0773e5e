// Package offline contains the deferred action queue use cases.
package offline

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/MuriloKuehne/personal-finance-dashboard/internal/application/adapter"
)

// ClearActionsInput represents the input for clearing pending actions.
type ClearActionsInput struct {
	UserID uuid.UUID
}

// ClearActionsUseCase handles dropping a user's pending deferred actions.
type ClearActionsUseCase struct {
	queue adapter.ActionQueue
}

// NewClearActionsUseCase creates a new ClearActionsUseCase instance.
func NewClearActionsUseCase(queue adapter.ActionQueue) *ClearActionsUseCase {
	return &ClearActionsUseCase{
		queue: queue,
	}
}

// Execute drops all of the user's pending actions without replaying them.
func (uc *ClearActionsUseCase) Execute(ctx context.Context, input ClearActionsInput) error {
	if err := uc.queue.Clear(ctx, input.UserID); err != nil {
		return fmt.Errorf("failed to clear actions: %w", err)
	}

	return nil
}

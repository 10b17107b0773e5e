// Package offline contains the deferred action queue use cases.
package offline

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/MuriloKuehne/personal-finance-dashboard/internal/application/adapter"
)

// ListActionsInput represents the input for listing pending actions.
type ListActionsInput struct {
	UserID uuid.UUID
}

// ListActionsOutput represents the output of listing pending actions.
type ListActionsOutput struct {
	Actions []*adapter.QueuedAction
}

// ListActionsUseCase handles listing a user's pending deferred actions.
type ListActionsUseCase struct {
	queue adapter.ActionQueue
}

// NewListActionsUseCase creates a new ListActionsUseCase instance.
func NewListActionsUseCase(queue adapter.ActionQueue) *ListActionsUseCase {
	return &ListActionsUseCase{
		queue: queue,
	}
}

// Execute returns the user's pending actions in enqueue order.
func (uc *ListActionsUseCase) Execute(ctx context.Context, input ListActionsInput) (*ListActionsOutput, error) {
	actions, err := uc.queue.List(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list actions: %w", err)
	}

	return &ListActionsOutput{
		Actions: actions,
	}, nil
}

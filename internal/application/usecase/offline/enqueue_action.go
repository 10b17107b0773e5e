// Package offline contains the deferred action queue use cases. Actions
// recorded while a client had no connectivity are kept durably per user and
// replayed against the regular use cases once a replay pass runs.
package offline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MuriloKuehne/personal-finance-dashboard/internal/application/adapter"
)

// EnqueueActionInput represents the input for queueing a deferred action.
type EnqueueActionInput struct {
	UserID  uuid.UUID
	Type    adapter.QueuedActionType
	Payload json.RawMessage
}

// EnqueueActionOutput represents the output of queueing a deferred action.
type EnqueueActionOutput struct {
	Action *adapter.QueuedAction
}

// EnqueueActionUseCase handles recording deferred actions.
type EnqueueActionUseCase struct {
	queue adapter.ActionQueue
}

// NewEnqueueActionUseCase creates a new EnqueueActionUseCase instance.
func NewEnqueueActionUseCase(queue adapter.ActionQueue) *EnqueueActionUseCase {
	return &EnqueueActionUseCase{
		queue: queue,
	}
}

// Execute appends the action to the user's queue. The payload is stored
// verbatim and only validated at replay time, so a malformed payload is
// accepted here and fails later; the queue never loses what the client
// recorded.
func (uc *EnqueueActionUseCase) Execute(ctx context.Context, input EnqueueActionInput) (*EnqueueActionOutput, error) {
	if input.Type == "" {
		return nil, fmt.Errorf("action type is required")
	}

	action := &adapter.QueuedAction{
		ID:       uuid.New(),
		UserID:   input.UserID,
		Type:     input.Type,
		Payload:  input.Payload,
		QueuedAt: time.Now().UTC(),
	}

	if err := uc.queue.Enqueue(ctx, action); err != nil {
		return nil, fmt.Errorf("failed to enqueue action: %w", err)
	}

	return &EnqueueActionOutput{
		Action: action,
	}, nil
}

// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// QueuedActionType identifies the kind of deferred action in the offline queue.
type QueuedActionType string

const (
	QueuedActionCreateTransaction QueuedActionType = "create_transaction"
)

// QueuedAction is a deferred write recorded while the client was offline.
// Payload holds the original request body verbatim so the replay worker can
// feed it back through the same use case that would have handled it online.
type QueuedAction struct {
	ID       uuid.UUID        `json:"id"`
	UserID   uuid.UUID        `json:"user_id"`
	Type     QueuedActionType `json:"type"`
	Payload  json.RawMessage  `json:"payload"`
	QueuedAt time.Time        `json:"queued_at"`
}

// ActionQueue defines the interface for the durable offline action queue.
type ActionQueue interface {
	// Enqueue appends an action to the user's queue.
	Enqueue(ctx context.Context, action *QueuedAction) error

	// List returns the user's pending actions in enqueue order.
	List(ctx context.Context, userID uuid.UUID) ([]*QueuedAction, error)

	// Remove deletes a single action from the user's queue.
	Remove(ctx context.Context, userID, actionID uuid.UUID) error

	// Clear drops all pending actions for the user.
	Clear(ctx context.Context, userID uuid.UUID) error

	// Users returns the ids of users that currently have pending actions.
	Users(ctx context.Context) ([]uuid.UUID, error)
}

// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"encoding/json"
	"time"

	"github.com/MuriloKuehne/personal-finance-dashboard/internal/application/adapter"
)

// EnqueueActionRequest represents the request body for queueing an offline
// action. Payload is kept verbatim and only interpreted when the action is
// replayed.
type EnqueueActionRequest struct {
	Type    string          `json:"type" binding:"required"`
	Payload json.RawMessage `json:"payload" binding:"required"`
}

// QueuedActionResponse represents a single queued action in API responses.
type QueuedActionResponse struct {
	ID       string          `json:"id"`
	Type     string          `json:"type"`
	Payload  json.RawMessage `json:"payload"`
	QueuedAt time.Time       `json:"queued_at"`
}

// QueuedActionListResponse represents the response for listing queued actions.
type QueuedActionListResponse struct {
	Actions []QueuedActionResponse `json:"actions"`
}

// ToQueuedActionResponse converts a QueuedAction to a QueuedActionResponse DTO.
func ToQueuedActionResponse(action *adapter.QueuedAction) QueuedActionResponse {
	return QueuedActionResponse{
		ID:       action.ID.String(),
		Type:     string(action.Type),
		Payload:  action.Payload,
		QueuedAt: action.QueuedAt,
	}
}

// ToQueuedActionListResponse converts queued actions to a QueuedActionListResponse DTO.
func ToQueuedActionListResponse(actions []*adapter.QueuedAction) QueuedActionListResponse {
	responses := make([]QueuedActionResponse, len(actions))
	for i, action := range actions {
		responses[i] = ToQueuedActionResponse(action)
	}
	return QueuedActionListResponse{
		Actions: responses,
	}
}

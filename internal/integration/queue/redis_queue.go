// Package queue implements the Redis-backed offline action queue.
package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/MuriloKuehne/personal-finance-dashboard/internal/application/adapter"
)

const (
	// actionListKeyPrefix prefixes the per-user pending action list.
	actionListKeyPrefix = "offline:actions:"
	// userSetKey is the set of users with pending actions, kept alongside
	// the lists so the replay worker can find work without scanning keys.
	userSetKey = "offline:users"
)

// redisActionQueue implements the adapter.ActionQueue interface on Redis.
// Each user's pending actions live in one list, appended in enqueue order;
// actions are stored as JSON.
type redisActionQueue struct {
	client *redis.Client
}

// NewRedisActionQueue creates a new Redis-backed action queue.
func NewRedisActionQueue(client *redis.Client) adapter.ActionQueue {
	return &redisActionQueue{
		client: client,
	}
}

// Enqueue appends an action to the user's queue.
func (q *redisActionQueue) Enqueue(ctx context.Context, action *adapter.QueuedAction) error {
	payload, err := json.Marshal(action)
	if err != nil {
		return fmt.Errorf("failed to marshal action: %w", err)
	}

	pipe := q.client.TxPipeline()
	pipe.RPush(ctx, listKey(action.UserID), payload)
	pipe.SAdd(ctx, userSetKey, action.UserID.String())
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to enqueue action: %w", err)
	}
	return nil
}

// List returns the user's pending actions in enqueue order.
func (q *redisActionQueue) List(ctx context.Context, userID uuid.UUID) ([]*adapter.QueuedAction, error) {
	raw, err := q.client.LRange(ctx, listKey(userID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read action list: %w", err)
	}

	actions := make([]*adapter.QueuedAction, 0, len(raw))
	for _, item := range raw {
		var action adapter.QueuedAction
		if err := json.Unmarshal([]byte(item), &action); err != nil {
			return nil, fmt.Errorf("failed to unmarshal action: %w", err)
		}
		actions = append(actions, &action)
	}
	return actions, nil
}

// Remove deletes a single action from the user's queue. The stored JSON is
// matched by re-reading the list and removing the entry whose id matches,
// since LREM matches whole values.
func (q *redisActionQueue) Remove(ctx context.Context, userID, actionID uuid.UUID) error {
	key := listKey(userID)

	raw, err := q.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return fmt.Errorf("failed to read action list: %w", err)
	}

	for _, item := range raw {
		var action adapter.QueuedAction
		if err := json.Unmarshal([]byte(item), &action); err != nil {
			continue
		}
		if action.ID != actionID {
			continue
		}
		if err := q.client.LRem(ctx, key, 1, item).Err(); err != nil {
			return fmt.Errorf("failed to remove action: %w", err)
		}
		break
	}

	return q.dropUserIfDrained(ctx, userID)
}

// Clear drops all pending actions for the user.
func (q *redisActionQueue) Clear(ctx context.Context, userID uuid.UUID) error {
	pipe := q.client.TxPipeline()
	pipe.Del(ctx, listKey(userID))
	pipe.SRem(ctx, userSetKey, userID.String())
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear actions: %w", err)
	}
	return nil
}

// Users returns the ids of users that currently have pending actions.
func (q *redisActionQueue) Users(ctx context.Context) ([]uuid.UUID, error) {
	members, err := q.client.SMembers(ctx, userSetKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read user set: %w", err)
	}

	users := make([]uuid.UUID, 0, len(members))
	for _, member := range members {
		userID, err := uuid.Parse(member)
		if err != nil {
			continue
		}
		users = append(users, userID)
	}
	return users, nil
}

func (q *redisActionQueue) dropUserIfDrained(ctx context.Context, userID uuid.UUID) error {
	length, err := q.client.LLen(ctx, listKey(userID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check queue length: %w", err)
	}
	if length == 0 {
		if err := q.client.SRem(ctx, userSetKey, userID.String()).Err(); err != nil {
			return fmt.Errorf("failed to drop drained user: %w", err)
		}
	}
	return nil
}

func listKey(userID uuid.UUID) string {
	return actionListKeyPrefix + userID.String()
}

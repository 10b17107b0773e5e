// Package offline contains the deferred action queue use cases.
package offline

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/MuriloKuehne/personal-finance-dashboard/internal/application/adapter"
	"github.com/MuriloKuehne/personal-finance-dashboard/internal/application/usecase/transaction"
	"github.com/MuriloKuehne/personal-finance-dashboard/internal/domain/entity"
	domainerror "github.com/MuriloKuehne/personal-finance-dashboard/internal/domain/error"
)

type memoryQueue struct {
	actions map[uuid.UUID][]*adapter.QueuedAction
}

func newMemoryQueue() *memoryQueue {
	return &memoryQueue{actions: make(map[uuid.UUID][]*adapter.QueuedAction)}
}

func (q *memoryQueue) Enqueue(_ context.Context, action *adapter.QueuedAction) error {
	q.actions[action.UserID] = append(q.actions[action.UserID], action)
	return nil
}

func (q *memoryQueue) List(_ context.Context, userID uuid.UUID) ([]*adapter.QueuedAction, error) {
	return append([]*adapter.QueuedAction(nil), q.actions[userID]...), nil
}

func (q *memoryQueue) Remove(_ context.Context, userID, actionID uuid.UUID) error {
	pending := q.actions[userID]
	for i, action := range pending {
		if action.ID == actionID {
			q.actions[userID] = append(pending[:i:i], pending[i+1:]...)
			return nil
		}
	}
	return nil
}

func (q *memoryQueue) Clear(_ context.Context, userID uuid.UUID) error {
	delete(q.actions, userID)
	return nil
}

func (q *memoryQueue) Users(_ context.Context) ([]uuid.UUID, error) {
	users := make([]uuid.UUID, 0, len(q.actions))
	for userID := range q.actions {
		users = append(users, userID)
	}
	return users, nil
}

type capturingTxnRepo struct {
	created []*entity.Transaction
}

func (r *capturingTxnRepo) Create(_ context.Context, transaction *entity.Transaction) error {
	r.created = append(r.created, transaction)
	return nil
}

func (r *capturingTxnRepo) FindByIDAndUser(context.Context, uuid.UUID, uuid.UUID) (*entity.TransactionWithCategory, error) {
	return nil, domainerror.ErrTransactionNotFound
}

func (r *capturingTxnRepo) FindByFilter(context.Context, adapter.TransactionFilter) ([]*entity.TransactionWithCategory, error) {
	return nil, nil
}

func (r *capturingTxnRepo) Update(context.Context, *entity.Transaction) error { return nil }

func (r *capturingTxnRepo) Delete(context.Context, uuid.UUID, uuid.UUID) error { return nil }

func (r *capturingTxnRepo) ExistsByCategory(context.Context, uuid.UUID, uuid.UUID) (bool, error) {
	return false, nil
}

type emptyCategoryRepo struct{}

func (emptyCategoryRepo) Create(context.Context, *entity.Category) error { return nil }

func (emptyCategoryRepo) FindByID(context.Context, uuid.UUID) (*entity.Category, error) {
	return nil, domainerror.ErrCategoryNotFound
}

func (emptyCategoryRepo) FindByUser(context.Context, uuid.UUID) ([]*entity.Category, error) {
	return nil, nil
}

func (emptyCategoryRepo) FindByUserAndType(context.Context, uuid.UUID, entity.CategoryType) ([]*entity.Category, error) {
	return nil, nil
}

func (emptyCategoryRepo) Update(context.Context, *entity.Category) error { return nil }

func (emptyCategoryRepo) Delete(context.Context, uuid.UUID) error { return nil }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func enqueueRaw(t *testing.T, queue *memoryQueue, userID uuid.UUID, actionType adapter.QueuedActionType, payload string) *adapter.QueuedAction {
	t.Helper()
	action := &adapter.QueuedAction{
		ID:       uuid.New(),
		UserID:   userID,
		Type:     actionType,
		Payload:  json.RawMessage(payload),
		QueuedAt: time.Now().UTC(),
	}
	if err := queue.Enqueue(context.Background(), action); err != nil {
		t.Fatalf("enqueue failed: %v", err)
	}
	return action
}

func TestReplayActionsUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	newUseCase := func(queue *memoryQueue, txnRepo *capturingTxnRepo) *ReplayActionsUseCase {
		createTxn := transaction.NewCreateTransactionUseCase(txnRepo, emptyCategoryRepo{})
		return NewReplayActionsUseCase(queue, createTxn, discardLogger())
	}

	t.Run("replays queued creations and empties the queue", func(t *testing.T) {
		queue := newMemoryQueue()
		txnRepo := &capturingTxnRepo{}
		enqueueRaw(t, queue, userID, adapter.QueuedActionCreateTransaction,
			`{"date":"2024-03-15","description":"Coffee","amount":"4.50","type":"expense"}`)
		enqueueRaw(t, queue, userID, adapter.QueuedActionCreateTransaction,
			`{"date":"2024-03-16","description":"Paycheck","amount":"2500","type":"income"}`)

		output, err := newUseCase(queue, txnRepo).Execute(context.Background(), ReplayActionsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Replayed != 2 || output.Dropped != 0 {
			t.Errorf("output = %+v, want 2 replayed", output)
		}
		if len(txnRepo.created) != 2 {
			t.Fatalf("created %d transactions, want 2", len(txnRepo.created))
		}
		if txnRepo.created[0].Description != "Coffee" {
			t.Errorf("replay order broken: first created is %q", txnRepo.created[0].Description)
		}
		if remaining, _ := queue.List(context.Background(), userID); len(remaining) != 0 {
			t.Errorf("queue still holds %d actions", len(remaining))
		}
	})

	t.Run("drops unknown action types", func(t *testing.T) {
		queue := newMemoryQueue()
		txnRepo := &capturingTxnRepo{}
		enqueueRaw(t, queue, userID, "delete_everything", `{}`)
		enqueueRaw(t, queue, userID, adapter.QueuedActionCreateTransaction,
			`{"date":"2024-03-15","description":"Coffee","amount":"4.50","type":"expense"}`)

		output, err := newUseCase(queue, txnRepo).Execute(context.Background(), ReplayActionsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Dropped != 1 || output.Replayed != 1 {
			t.Errorf("output = %+v, want 1 dropped and 1 replayed", output)
		}
	})

	t.Run("drops malformed payloads instead of wedging the queue", func(t *testing.T) {
		queue := newMemoryQueue()
		txnRepo := &capturingTxnRepo{}
		enqueueRaw(t, queue, userID, adapter.QueuedActionCreateTransaction, `not json`)

		output, err := newUseCase(queue, txnRepo).Execute(context.Background(), ReplayActionsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Dropped != 1 {
			t.Errorf("output = %+v, want 1 dropped", output)
		}
		if remaining, _ := queue.List(context.Background(), userID); len(remaining) != 0 {
			t.Errorf("queue still holds %d actions", len(remaining))
		}
	})

	t.Run("drops payloads the use case rejects", func(t *testing.T) {
		queue := newMemoryQueue()
		txnRepo := &capturingTxnRepo{}
		enqueueRaw(t, queue, userID, adapter.QueuedActionCreateTransaction,
			`{"date":"2024-03-15","description":"Bad","amount":"-1","type":"expense"}`)

		output, err := newUseCase(queue, txnRepo).Execute(context.Background(), ReplayActionsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Dropped != 1 || len(txnRepo.created) != 0 {
			t.Errorf("output = %+v, created = %d", output, len(txnRepo.created))
		}
	})
}

// Package queue implements the Redis-backed offline action queue.
package queue

import (
	"context"
	"log/slog"
	"time"

	"github.com/MuriloKuehne/personal-finance-dashboard/internal/application/adapter"
	"github.com/MuriloKuehne/personal-finance-dashboard/internal/application/usecase/offline"
)

// Worker periodically replays pending offline actions for every user that
// has any queued.
type Worker struct {
	queue        adapter.ActionQueue
	replay       *offline.ReplayActionsUseCase
	pollInterval time.Duration
}

// WorkerConfig holds configuration for the replay worker.
type WorkerConfig struct {
	PollInterval time.Duration
}

// NewWorker creates a new replay worker.
func NewWorker(queue adapter.ActionQueue, replay *offline.ReplayActionsUseCase, config WorkerConfig) *Worker {
	return &Worker{
		queue:        queue,
		replay:       replay,
		pollInterval: config.PollInterval,
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Offline replay worker started", "poll_interval", w.pollInterval)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	// Process immediately on start, then on ticker
	w.processAll(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Offline replay worker shutting down")
			return
		case <-ticker.C:
			w.processAll(ctx)
		}
	}
}

// processAll runs one replay pass over every user with pending actions.
// A failing user's queue is left for the next pass; it never blocks the
// other users in the same pass.
func (w *Worker) processAll(ctx context.Context) {
	users, err := w.queue.Users(ctx)
	if err != nil {
		slog.Error("Failed to list users with pending actions", "error", err)
		return
	}

	for _, userID := range users {
		select {
		case <-ctx.Done():
			return
		default:
		}

		output, err := w.replay.Execute(ctx, offline.ReplayActionsInput{UserID: userID})
		if err != nil {
			slog.Error("Replay pass failed", "user_id", userID, "error", err)
			continue
		}

		if output.Replayed > 0 || output.Dropped > 0 {
			slog.Info("Replayed offline actions",
				"user_id", userID,
				"replayed", output.Replayed,
				"dropped", output.Dropped,
			)
		}
	}
}

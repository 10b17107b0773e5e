// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MuriloKuehne/personal-finance-dashboard/internal/domain/entity"
)

// TransactionFilter defines filter options for listing transactions.
// StartDate and EndDate are inclusive calendar-day bounds on the
// transaction date.
type TransactionFilter struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Type      *entity.TransactionType
	Limit     int // 0 means no limit
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByIDAndUser retrieves a transaction with its category, scoped to the
	// owning user. A transaction owned by someone else is reported as not found.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.TransactionWithCategory, error)

	// FindByFilter retrieves transactions matching the filter with their
	// categories, ordered by date descending then created_at descending.
	FindByFilter(ctx context.Context, filter TransactionFilter) ([]*entity.TransactionWithCategory, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction scoped to the owning user. Deleting a
	// missing or non-owned id reports ErrTransactionNotFound, never a no-op.
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// ExistsByCategory checks whether any transaction references the category.
	ExistsByCategory(ctx context.Context, categoryID, userID uuid.UUID) (bool, error)
}

// Package dashboard contains the aggregation engine and dashboard use cases.
package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MuriloKuehne/personal-finance-dashboard/internal/domain/entity"
)

// Row is one transaction as fetched for aggregation. Amount carries the
// store's raw numeric representation; the engine coerces it to a decimal and
// fails the computation if coercion is impossible, so a corrupt row can never
// silently vanish from the totals.
type Row struct {
	ID         uuid.UUID
	Amount     string
	Type       entity.TransactionType
	Date       time.Time
	CategoryID *uuid.UUID
}

// RowFilter defines the predicates the store supports for aggregation
// fetches: exact type match and an inclusive date range. Anything beyond
// that is the engine's job; the bucketing logic, not the caller, decides
// what "this month" or "this week" is.
type RowFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Type      *entity.TransactionType
	Ascending bool
}

// DashboardRepository defines the interface for aggregation data fetches.
type DashboardRepository interface {
	// FindRows returns the user's transaction rows matching the filter,
	// ordered by date (descending unless Ascending is set), then by
	// created_at as a tie-break.
	FindRows(ctx context.Context, userID uuid.UUID, filter RowFilter) ([]Row, error)
}

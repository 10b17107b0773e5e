// Package dashboard contains the aggregation engine and dashboard use cases.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GetDashboardStatsInput represents the input for getting dashboard stats.
type GetDashboardStatsInput struct {
	UserID uuid.UUID
}

// GetDashboardStatsUseCase handles the headline dashboard totals.
type GetDashboardStatsUseCase struct {
	dashboardRepo DashboardRepository
	now           func() time.Time
}

// NewGetDashboardStatsUseCase creates a new GetDashboardStatsUseCase instance.
func NewGetDashboardStatsUseCase(dashboardRepo DashboardRepository) *GetDashboardStatsUseCase {
	return &GetDashboardStatsUseCase{
		dashboardRepo: dashboardRepo,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// Execute fetches all of the user's transactions and computes the totals.
// The fetch is deliberately unfiltered: the engine's month window, not a
// store-side predicate, decides what counts as the current month.
func (uc *GetDashboardStatsUseCase) Execute(
	ctx context.Context,
	input GetDashboardStatsInput,
) (*DashboardStats, error) {
	rows, err := uc.dashboardRepo.FindRows(ctx, input.UserID, RowFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	return ComputeDashboardStats(rows, uc.now())
}

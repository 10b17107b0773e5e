// Package dashboard contains the aggregation engine and dashboard use cases.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GetWeeklySummaryInput represents the input for getting the weekly summary.
type GetWeeklySummaryInput struct {
	UserID uuid.UUID
}

// GetWeeklySummaryUseCase handles the day-bucketed chart for the current week.
type GetWeeklySummaryUseCase struct {
	dashboardRepo DashboardRepository
	now           func() time.Time
}

// NewGetWeeklySummaryUseCase creates a new GetWeeklySummaryUseCase instance.
func NewGetWeeklySummaryUseCase(dashboardRepo DashboardRepository) *GetWeeklySummaryUseCase {
	return &GetWeeklySummaryUseCase{
		dashboardRepo: dashboardRepo,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// Execute fetches the current week's transactions (Sunday through Saturday,
// see WeekStartDay) and buckets them by day. Only days with activity appear.
func (uc *GetWeeklySummaryUseCase) Execute(
	ctx context.Context,
	input GetWeeklySummaryInput,
) ([]DailyBucket, error) {
	weekStart, weekEnd := WeekBounds(uc.now())

	rows, err := uc.dashboardRepo.FindRows(ctx, input.UserID, RowFilter{
		StartDate: &weekStart,
		EndDate:   &weekEnd,
		Ascending: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	return ComputeWeeklySummary(rows)
}

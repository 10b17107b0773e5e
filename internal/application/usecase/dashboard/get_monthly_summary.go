// Package dashboard contains the aggregation engine and dashboard use cases.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	domainerror "github.com/MuriloKuehne/personal-finance-dashboard/internal/domain/error"
)

// DefaultMonthsBack is the monthly summary window used when the caller does
// not specify one.
const DefaultMonthsBack = 6

// GetMonthlySummaryInput represents the input for getting the monthly summary.
type GetMonthlySummaryInput struct {
	UserID uuid.UUID
	Months int
}

// GetMonthlySummaryUseCase handles the month-bucketed income/expense chart.
type GetMonthlySummaryUseCase struct {
	dashboardRepo DashboardRepository
	now           func() time.Time
}

// NewGetMonthlySummaryUseCase creates a new GetMonthlySummaryUseCase instance.
func NewGetMonthlySummaryUseCase(dashboardRepo DashboardRepository) *GetMonthlySummaryUseCase {
	return &GetMonthlySummaryUseCase{
		dashboardRepo: dashboardRepo,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// Execute fetches the user's transactions dated within the last Months
// months and buckets them by calendar month. Only months with activity
// appear in the result.
func (uc *GetMonthlySummaryUseCase) Execute(
	ctx context.Context,
	input GetMonthlySummaryInput,
) ([]MonthlyBucket, error) {
	months := input.Months
	if months == 0 {
		months = DefaultMonthsBack
	}
	if months < 0 {
		return nil, domainerror.NewStatsError(
			domainerror.ErrCodeInvalidMonthsBack,
			"months must be greater than zero",
			domainerror.ErrInvalidMonthsBack,
		)
	}

	startDate := dateOnly(uc.now().AddDate(0, -months, 0))

	rows, err := uc.dashboardRepo.FindRows(ctx, input.UserID, RowFilter{
		StartDate: &startDate,
		Ascending: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	return ComputeMonthlySummary(rows)
}

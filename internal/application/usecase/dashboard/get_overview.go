// Package dashboard contains the aggregation engine and dashboard use cases.
package dashboard

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/MuriloKuehne/personal-finance-dashboard/internal/application/adapter"
	"github.com/MuriloKuehne/personal-finance-dashboard/internal/domain/entity"
)

// recentTransactionLimit is the number of latest transactions shown on the
// dashboard's recent-activity card.
const recentTransactionLimit = 5

// GetOverviewInput represents the input for assembling the dashboard overview.
type GetOverviewInput struct {
	UserID uuid.UUID
}

// StatsSection carries the stats fetch result with its own error; exactly
// one of the two fields is populated.
type StatsSection struct {
	Data *DashboardStats
	Err  error
}

// MonthlySection carries the monthly summary fetch result with its own error.
type MonthlySection struct {
	Data []MonthlyBucket
	Err  error
}

// WeeklySection carries the weekly summary fetch result with its own error.
type WeeklySection struct {
	Data []DailyBucket
	Err  error
}

// RecentSection carries the recent transactions fetch result with its own error.
type RecentSection struct {
	Data []*entity.TransactionWithCategory
	Err  error
}

// GetOverviewOutput bundles the independently-fetched dashboard sections.
type GetOverviewOutput struct {
	Stats   StatsSection
	Monthly MonthlySection
	Weekly  WeeklySection
	Recent  RecentSection
}

// GetOverviewUseCase assembles the full dashboard in one call. The four
// fetches are logically independent and run concurrently; each section
// reports its own outcome, and a failed section never blocks the others;
// the presentation layer substitutes an empty view for it.
type GetOverviewUseCase struct {
	statsUseCase   *GetDashboardStatsUseCase
	monthlyUseCase *GetMonthlySummaryUseCase
	weeklyUseCase  *GetWeeklySummaryUseCase
	txnRepo        adapter.TransactionRepository
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(
	statsUseCase *GetDashboardStatsUseCase,
	monthlyUseCase *GetMonthlySummaryUseCase,
	weeklyUseCase *GetWeeklySummaryUseCase,
	txnRepo adapter.TransactionRepository,
) *GetOverviewUseCase {
	return &GetOverviewUseCase{
		statsUseCase:   statsUseCase,
		monthlyUseCase: monthlyUseCase,
		weeklyUseCase:  weeklyUseCase,
		txnRepo:        txnRepo,
	}
}

// Execute runs the four dashboard fetches in parallel. The closures always
// return nil so the group acts as a plain wait: per-section errors live in
// the section results, never cancel the siblings.
func (uc *GetOverviewUseCase) Execute(ctx context.Context, input GetOverviewInput) *GetOverviewOutput {
	output := &GetOverviewOutput{}

	var g errgroup.Group

	g.Go(func() error {
		output.Stats.Data, output.Stats.Err = uc.statsUseCase.Execute(ctx, GetDashboardStatsInput{
			UserID: input.UserID,
		})
		return nil
	})

	g.Go(func() error {
		output.Monthly.Data, output.Monthly.Err = uc.monthlyUseCase.Execute(ctx, GetMonthlySummaryInput{
			UserID: input.UserID,
		})
		return nil
	})

	g.Go(func() error {
		output.Weekly.Data, output.Weekly.Err = uc.weeklyUseCase.Execute(ctx, GetWeeklySummaryInput{
			UserID: input.UserID,
		})
		return nil
	})

	g.Go(func() error {
		transactions, err := uc.txnRepo.FindByFilter(ctx, adapter.TransactionFilter{
			UserID: input.UserID,
			Limit:  recentTransactionLimit,
		})
		output.Recent.Data, output.Recent.Err = transactions, err
		return nil
	})

	_ = g.Wait()

	return output
}

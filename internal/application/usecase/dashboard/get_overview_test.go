package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/MuriloKuehne/personal-finance-dashboard/internal/application/adapter"
	"github.com/MuriloKuehne/personal-finance-dashboard/internal/domain/entity"
)

type fakeDashboardRepo struct {
	rows []Row
	err  error
	// errOnAscending fails only the fetches the summary use cases issue,
	// leaving the unfiltered stats fetch healthy.
	errOnAscending error
}

func (f *fakeDashboardRepo) FindRows(_ context.Context, _ uuid.UUID, filter RowFilter) ([]Row, error) {
	if f.err != nil {
		return nil, f.err
	}
	if filter.Ascending && f.errOnAscending != nil {
		return nil, f.errOnAscending
	}
	return f.rows, nil
}

type fakeTransactionRepo struct {
	transactions []*entity.TransactionWithCategory
	err          error
	lastFilter   adapter.TransactionFilter
}

func (f *fakeTransactionRepo) Create(context.Context, *entity.Transaction) error { return nil }

func (f *fakeTransactionRepo) FindByIDAndUser(context.Context, uuid.UUID, uuid.UUID) (*entity.TransactionWithCategory, error) {
	return nil, nil
}

func (f *fakeTransactionRepo) FindByFilter(_ context.Context, filter adapter.TransactionFilter) ([]*entity.TransactionWithCategory, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	return f.transactions, nil
}

func (f *fakeTransactionRepo) Update(context.Context, *entity.Transaction) error { return nil }

func (f *fakeTransactionRepo) Delete(context.Context, uuid.UUID, uuid.UUID) error { return nil }

func (f *fakeTransactionRepo) ExistsByCategory(context.Context, uuid.UUID, uuid.UUID) (bool, error) {
	return false, nil
}

func newOverviewUseCase(dashRepo DashboardRepository, txnRepo adapter.TransactionRepository) *GetOverviewUseCase {
	return NewGetOverviewUseCase(
		NewGetDashboardStatsUseCase(dashRepo),
		NewGetMonthlySummaryUseCase(dashRepo),
		NewGetWeeklySummaryUseCase(dashRepo),
		txnRepo,
	)
}

func TestGetOverviewUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	t.Run("all sections succeed", func(t *testing.T) {
		dashRepo := &fakeDashboardRepo{rows: []Row{
			row("100", entity.TransactionTypeIncome, "2024-03-10"),
			row("40", entity.TransactionTypeExpense, "2024-03-12"),
		}}
		txnRepo := &fakeTransactionRepo{transactions: []*entity.TransactionWithCategory{
			{Transaction: &entity.Transaction{ID: uuid.New(), UserID: userID}},
		}}

		output := newOverviewUseCase(dashRepo, txnRepo).Execute(context.Background(), GetOverviewInput{UserID: userID})

		if output.Stats.Err != nil || output.Monthly.Err != nil || output.Weekly.Err != nil || output.Recent.Err != nil {
			t.Fatalf("unexpected section errors: %+v", output)
		}
		if output.Stats.Data == nil {
			t.Fatal("stats data is nil")
		}
		assertDecimal(t, "TotalIncome", output.Stats.Data.TotalIncome, "100")
		if len(output.Recent.Data) != 1 {
			t.Errorf("recent = %d transactions, want 1", len(output.Recent.Data))
		}
		if txnRepo.lastFilter.Limit != recentTransactionLimit {
			t.Errorf("recent fetch limit = %d, want %d", txnRepo.lastFilter.Limit, recentTransactionLimit)
		}
	})

	t.Run("failed section does not block the others", func(t *testing.T) {
		boom := errors.New("store unavailable")
		dashRepo := &fakeDashboardRepo{
			rows:           []Row{row("10", entity.TransactionTypeIncome, "2024-03-10")},
			errOnAscending: boom,
		}
		txnRepo := &fakeTransactionRepo{}

		output := newOverviewUseCase(dashRepo, txnRepo).Execute(context.Background(), GetOverviewInput{UserID: userID})

		if output.Stats.Err != nil {
			t.Errorf("stats section failed: %v", output.Stats.Err)
		}
		if output.Recent.Err != nil {
			t.Errorf("recent section failed: %v", output.Recent.Err)
		}
		if !errors.Is(output.Monthly.Err, boom) {
			t.Errorf("monthly err = %v, want wrapped %v", output.Monthly.Err, boom)
		}
		if !errors.Is(output.Weekly.Err, boom) {
			t.Errorf("weekly err = %v, want wrapped %v", output.Weekly.Err, boom)
		}
	})

	t.Run("every section failing still returns a complete shape", func(t *testing.T) {
		boom := errors.New("store unavailable")
		dashRepo := &fakeDashboardRepo{err: boom}
		txnRepo := &fakeTransactionRepo{err: boom}

		output := newOverviewUseCase(dashRepo, txnRepo).Execute(context.Background(), GetOverviewInput{UserID: userID})

		if output.Stats.Err == nil || output.Monthly.Err == nil || output.Weekly.Err == nil || output.Recent.Err == nil {
			t.Fatalf("expected all sections to report errors: %+v", output)
		}
		if output.Stats.Data != nil || output.Monthly.Data != nil || output.Weekly.Data != nil || output.Recent.Data != nil {
			t.Errorf("failed sections must not carry data: %+v", output)
		}
	})
}

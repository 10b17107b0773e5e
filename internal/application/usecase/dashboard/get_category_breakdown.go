// Package dashboard contains the aggregation engine and dashboard use cases.
package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/MuriloKuehne/personal-finance-dashboard/internal/application/adapter"
	"github.com/MuriloKuehne/personal-finance-dashboard/internal/domain/entity"
	domainerror "github.com/MuriloKuehne/personal-finance-dashboard/internal/domain/error"
)

// GetCategoryBreakdownInput represents the input for getting a category breakdown.
type GetCategoryBreakdownInput struct {
	UserID uuid.UUID
	Type   entity.TransactionType
}

// GetCategoryBreakdownUseCase handles the per-category pie chart data.
type GetCategoryBreakdownUseCase struct {
	dashboardRepo DashboardRepository
	categoryRepo  adapter.CategoryRepository
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase instance.
func NewGetCategoryBreakdownUseCase(
	dashboardRepo DashboardRepository,
	categoryRepo adapter.CategoryRepository,
) *GetCategoryBreakdownUseCase {
	return &GetCategoryBreakdownUseCase{
		dashboardRepo: dashboardRepo,
		categoryRepo:  categoryRepo,
	}
}

// Execute fetches the user's transactions of the given type and sums them per
// category, attaching each category's name and color for display. Categories
// with no matching transactions are omitted.
func (uc *GetCategoryBreakdownUseCase) Execute(
	ctx context.Context,
	input GetCategoryBreakdownInput,
) ([]CategoryBreakdown, error) {
	if input.Type != entity.TransactionTypeIncome && input.Type != entity.TransactionTypeExpense {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	rowType := input.Type
	rows, err := uc.dashboardRepo.FindRows(ctx, input.UserID, RowFilter{
		Type:      &rowType,
		Ascending: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	categories, err := uc.categoryRepo.FindByUserAndType(ctx, input.UserID, entity.CategoryType(input.Type))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}

	return ComputeCategoryBreakdown(rows, input.Type, categories)
}

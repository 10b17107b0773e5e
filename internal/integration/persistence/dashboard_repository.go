// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MuriloKuehne/personal-finance-dashboard/internal/application/usecase/dashboard"
	"github.com/MuriloKuehne/personal-finance-dashboard/internal/domain/entity"
	"github.com/MuriloKuehne/personal-finance-dashboard/internal/integration/persistence/model"
)

// dashboardRepository implements the dashboard.DashboardRepository interface.
type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new dashboard repository instance.
func NewDashboardRepository(db *gorm.DB) dashboard.DashboardRepository {
	return &dashboardRepository{
		db: db,
	}
}

// FindRows returns the user's transaction rows for aggregation. Amounts are
// scanned as raw strings, not decimals: coercion belongs to the engine so a
// corrupt stored value surfaces as a computation error naming the row
// instead of a scan failure naming nothing.
func (r *dashboardRepository) FindRows(ctx context.Context, userID uuid.UUID, filter dashboard.RowFilter) ([]dashboard.Row, error) {
	var results []struct {
		ID         uuid.UUID  `gorm:"column:id"`
		Amount     string     `gorm:"column:amount"`
		Type       string     `gorm:"column:type"`
		Date       time.Time  `gorm:"column:date"`
		CategoryID *uuid.UUID `gorm:"column:category_id"`
	}

	query := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("id, amount, type, date, category_id").
		Where("user_id = ?", userID)

	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}

	order := "date DESC, created_at DESC"
	if filter.Ascending {
		order = "date ASC, created_at ASC"
	}

	if err := query.Order(order).Scan(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch aggregation rows: %w", err)
	}

	rows := make([]dashboard.Row, len(results))
	for i, res := range results {
		rows[i] = dashboard.Row{
			ID:         res.ID,
			Amount:     res.Amount,
			Type:       entity.TransactionType(res.Type),
			Date:       res.Date,
			CategoryID: res.CategoryID,
		}
	}

	return rows, nil
}

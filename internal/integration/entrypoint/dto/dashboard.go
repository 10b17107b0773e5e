// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/MuriloKuehne/personal-finance-dashboard/internal/application/usecase/dashboard"
	"github.com/MuriloKuehne/personal-finance-dashboard/internal/domain/entity"
)

// DashboardStatsResponse represents the headline totals for the dashboard
// cards. Amounts travel as strings so decimal values survive the trip
// without float rounding.
type DashboardStatsResponse struct {
	TotalIncome     string `json:"total_income"`
	TotalExpenses   string `json:"total_expenses"`
	NetBalance      string `json:"net_balance"`
	MonthlyIncome   string `json:"monthly_income"`
	MonthlyExpenses string `json:"monthly_expenses"`
}

// MonthlyBucketResponse represents one calendar month in the monthly summary.
type MonthlyBucketResponse struct {
	Month   string `json:"month"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
}

// MonthlySummaryResponse represents the response for the monthly summary API.
type MonthlySummaryResponse struct {
	Months []MonthlyBucketResponse `json:"months"`
}

// DailyBucketResponse represents one calendar day in the weekly summary.
type DailyBucketResponse struct {
	Day     string `json:"day"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
}

// WeeklySummaryResponse represents the response for the weekly summary API.
type WeeklySummaryResponse struct {
	Days []DailyBucketResponse `json:"days"`
}

// CategoryBreakdownEntryResponse represents one slice of the breakdown chart.
type CategoryBreakdownEntryResponse struct {
	CategoryID *string `json:"category_id"`
	Name       string  `json:"name"`
	Value      string  `json:"value"`
	Color      string  `json:"color"`
}

// CategoryBreakdownResponse represents the response for the category breakdown API.
type CategoryBreakdownResponse struct {
	Breakdown []CategoryBreakdownEntryResponse `json:"breakdown"`
}

// OverviewSectionError carries the failure message for a dashboard section
// that could not be computed.
type OverviewSectionError struct {
	Error string `json:"error"`
}

// OverviewResponse represents the combined dashboard response. Each section
// carries either its data or an error; a failed section never suppresses the
// others.
type OverviewResponse struct {
	Stats        *DashboardStatsResponse  `json:"stats"`
	StatsError   *OverviewSectionError    `json:"stats_error,omitempty"`
	Monthly      *MonthlySummaryResponse  `json:"monthly_summary"`
	MonthlyError *OverviewSectionError    `json:"monthly_summary_error,omitempty"`
	Weekly       *WeeklySummaryResponse   `json:"weekly_summary"`
	WeeklyError  *OverviewSectionError    `json:"weekly_summary_error,omitempty"`
	Recent       *TransactionListResponse `json:"recent_transactions"`
	RecentError  *OverviewSectionError    `json:"recent_transactions_error,omitempty"`
}

// ToDashboardStatsResponse converts DashboardStats to a DashboardStatsResponse DTO.
func ToDashboardStatsResponse(stats *dashboard.DashboardStats) DashboardStatsResponse {
	return DashboardStatsResponse{
		TotalIncome:     stats.TotalIncome.String(),
		TotalExpenses:   stats.TotalExpenses.String(),
		NetBalance:      stats.NetBalance.String(),
		MonthlyIncome:   stats.MonthlyIncome.String(),
		MonthlyExpenses: stats.MonthlyExpenses.String(),
	}
}

// ToMonthlySummaryResponse converts monthly buckets to a MonthlySummaryResponse DTO.
func ToMonthlySummaryResponse(buckets []dashboard.MonthlyBucket) MonthlySummaryResponse {
	months := make([]MonthlyBucketResponse, len(buckets))
	for i, bucket := range buckets {
		months[i] = MonthlyBucketResponse{
			Month:   bucket.Month,
			Income:  bucket.Income.String(),
			Expense: bucket.Expense.String(),
		}
	}
	return MonthlySummaryResponse{Months: months}
}

// ToWeeklySummaryResponse converts daily buckets to a WeeklySummaryResponse DTO.
func ToWeeklySummaryResponse(buckets []dashboard.DailyBucket) WeeklySummaryResponse {
	days := make([]DailyBucketResponse, len(buckets))
	for i, bucket := range buckets {
		days[i] = DailyBucketResponse{
			Day:     bucket.Day,
			Income:  bucket.Income.String(),
			Expense: bucket.Expense.String(),
		}
	}
	return WeeklySummaryResponse{Days: days}
}

// ToCategoryBreakdownResponse converts breakdown entries to a CategoryBreakdownResponse DTO.
func ToCategoryBreakdownResponse(entries []dashboard.CategoryBreakdown) CategoryBreakdownResponse {
	breakdown := make([]CategoryBreakdownEntryResponse, len(entries))
	for i, entry := range entries {
		var categoryID *string
		if entry.CategoryID != nil {
			id := entry.CategoryID.String()
			categoryID = &id
		}
		breakdown[i] = CategoryBreakdownEntryResponse{
			CategoryID: categoryID,
			Name:       entry.Name,
			Value:      entry.Value.String(),
			Color:      entry.Color,
		}
	}
	return CategoryBreakdownResponse{Breakdown: breakdown}
}

// ToOverviewResponse converts a GetOverviewOutput to an OverviewResponse DTO.
func ToOverviewResponse(output *dashboard.GetOverviewOutput) OverviewResponse {
	response := OverviewResponse{}

	if output.Stats.Err != nil {
		response.StatsError = &OverviewSectionError{Error: output.Stats.Err.Error()}
	} else {
		stats := ToDashboardStatsResponse(output.Stats.Data)
		response.Stats = &stats
	}

	if output.Monthly.Err != nil {
		response.MonthlyError = &OverviewSectionError{Error: output.Monthly.Err.Error()}
	} else {
		monthly := ToMonthlySummaryResponse(output.Monthly.Data)
		response.Monthly = &monthly
	}

	if output.Weekly.Err != nil {
		response.WeeklyError = &OverviewSectionError{Error: output.Weekly.Err.Error()}
	} else {
		weekly := ToWeeklySummaryResponse(output.Weekly.Data)
		response.Weekly = &weekly
	}

	if output.Recent.Err != nil {
		response.RecentError = &OverviewSectionError{Error: output.Recent.Err.Error()}
	} else {
		recent := toRecentTransactionsResponse(output.Recent.Data)
		response.Recent = &recent
	}

	return response
}

func toRecentTransactionsResponse(transactions []*entity.TransactionWithCategory) TransactionListResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, item := range transactions {
		txn := item.Transaction
		response := TransactionResponse{
			ID:          txn.ID.String(),
			UserID:      txn.UserID.String(),
			Date:        txn.Date.Format("2006-01-02"),
			Description: txn.Description,
			Amount:      txn.Amount.String(),
			Type:        string(txn.Type),
			CreatedAt:   txn.CreatedAt,
			UpdatedAt:   txn.UpdatedAt,
		}
		if txn.CategoryID != nil {
			id := txn.CategoryID.String()
			response.CategoryID = &id
		}
		if item.Category != nil {
			response.Category = &TransactionCategoryResponse{
				ID:    item.Category.ID.String(),
				Name:  item.Category.Name,
				Color: item.Category.Color,
				Type:  string(item.Category.Type),
			}
		}
		responses[i] = response
	}
	return TransactionListResponse{Transactions: responses}
}

// Package dashboard contains the aggregation engine and dashboard use cases.
//
// The engine is a set of pure, side-effect-free functions over already-fetched
// transaction rows. It never touches the network or storage; fetching is the
// repository's job. Sums accumulate in decimal arithmetic, never floats.
package dashboard

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MuriloKuehne/personal-finance-dashboard/internal/domain/entity"
	domainerror "github.com/MuriloKuehne/personal-finance-dashboard/internal/domain/error"
)

// Placeholder identity for rows without a category in breakdowns.
const (
	UncategorizedName  = "Uncategorized"
	UncategorizedColor = "#6B7280"
)

// DashboardStats holds the headline totals for the dashboard cards.
type DashboardStats struct {
	TotalIncome     decimal.Decimal `json:"total_income"`
	TotalExpenses   decimal.Decimal `json:"total_expenses"`
	NetBalance      decimal.Decimal `json:"net_balance"`
	MonthlyIncome   decimal.Decimal `json:"monthly_income"`
	MonthlyExpenses decimal.Decimal `json:"monthly_expenses"`
}

// MonthlyBucket holds income and expense sums for one calendar month.
type MonthlyBucket struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// DailyBucket holds income and expense sums for one calendar day.
type DailyBucket struct {
	Day     string          `json:"day"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// CategoryBreakdown holds the summed amount for one category.
type CategoryBreakdown struct {
	CategoryID *uuid.UUID      `json:"category_id,omitempty"`
	Name       string          `json:"name"`
	Value      decimal.Decimal `json:"value"`
	Color      string          `json:"color"`
}

// ComputeDashboardStats partitions rows by type and sums amounts, overall and
// restricted to the calendar month containing now (first through last day,
// inclusive). Empty input yields all-zero stats, not an error. NetBalance may
// be negative; it is never clamped.
func ComputeDashboardStats(rows []Row, now time.Time) (*DashboardStats, error) {
	stats := &DashboardStats{
		TotalIncome:     decimal.Zero,
		TotalExpenses:   decimal.Zero,
		MonthlyIncome:   decimal.Zero,
		MonthlyExpenses: decimal.Zero,
	}

	monthStart, monthEnd := MonthBounds(now)

	for _, row := range rows {
		// A row with a type outside the enum counts in neither total.
		if row.Type != entity.TransactionTypeIncome && row.Type != entity.TransactionTypeExpense {
			continue
		}

		amount, err := coerceAmount(row)
		if err != nil {
			return nil, err
		}

		date := dateOnly(row.Date)
		inMonth := !date.Before(monthStart) && !date.After(monthEnd)

		if row.Type == entity.TransactionTypeIncome {
			stats.TotalIncome = stats.TotalIncome.Add(amount)
			if inMonth {
				stats.MonthlyIncome = stats.MonthlyIncome.Add(amount)
			}
		} else {
			stats.TotalExpenses = stats.TotalExpenses.Add(amount)
			if inMonth {
				stats.MonthlyExpenses = stats.MonthlyExpenses.Add(amount)
			}
		}
	}

	stats.NetBalance = stats.TotalIncome.Sub(stats.TotalExpenses)
	return stats, nil
}

// ComputeMonthlySummary buckets rows by calendar month (YYYY-MM) and sums
// income and expense independently per bucket. Only months with at least one
// transaction are emitted, ascending chronologically; months with no activity
// produce gaps, not zero entries. Rows are sorted by date before bucketing so
// the output order never depends on the caller's ordering.
func ComputeMonthlySummary(rows []Row) ([]MonthlyBucket, error) {
	return bucketize(rows, monthKey, func(key string, income, expense decimal.Decimal) MonthlyBucket {
		return MonthlyBucket{Month: key, Income: income, Expense: expense}
	})
}

// ComputeWeeklySummary buckets rows by exact calendar day (YYYY-MM-DD), one
// bucket per distinct day present. The caller is expected to have fetched the
// current week's rows, but the function works correctly over any set.
func ComputeWeeklySummary(rows []Row) ([]DailyBucket, error) {
	return bucketize(rows, dayKey, func(key string, income, expense decimal.Decimal) DailyBucket {
		return DailyBucket{Day: key, Income: income, Expense: expense}
	})
}

// ComputeCategoryBreakdown filters rows to the given type, sums amounts per
// category and attaches each category's name and color. Categories with no
// matching transactions are omitted; rows without a category are grouped
// under a fixed placeholder entry.
func ComputeCategoryBreakdown(
	rows []Row,
	transactionType entity.TransactionType,
	categories []*entity.Category,
) ([]CategoryBreakdown, error) {
	sorted := sortedByDate(rows)

	sums := make(map[uuid.UUID]decimal.Decimal)
	order := make([]uuid.UUID, 0)

	for _, row := range sorted {
		if row.Type != transactionType {
			continue
		}

		amount, err := coerceAmount(row)
		if err != nil {
			return nil, err
		}

		key := uuid.Nil
		if row.CategoryID != nil {
			key = *row.CategoryID
		}

		if _, seen := sums[key]; !seen {
			order = append(order, key)
		}
		sums[key] = sums[key].Add(amount)
	}

	byID := make(map[uuid.UUID]*entity.Category, len(categories))
	for _, category := range categories {
		byID[category.ID] = category
	}

	breakdown := make([]CategoryBreakdown, 0, len(order))
	for _, key := range order {
		item := CategoryBreakdown{Value: sums[key]}

		if key == uuid.Nil {
			item.Name = UncategorizedName
			item.Color = UncategorizedColor
		} else {
			id := key
			item.CategoryID = &id
			if category, ok := byID[key]; ok {
				item.Name = category.Name
				item.Color = category.Color
			} else {
				item.Name = UncategorizedName
				item.Color = UncategorizedColor
			}
		}

		breakdown = append(breakdown, item)
	}

	return breakdown, nil
}

// bucketize groups rows by the given key function, accumulating income and
// expense sums per bucket in first-encountered order over date-sorted input.
func bucketize[T any](
	rows []Row,
	key func(time.Time) string,
	build func(key string, income, expense decimal.Decimal) T,
) ([]T, error) {
	sorted := sortedByDate(rows)

	type sums struct {
		income  decimal.Decimal
		expense decimal.Decimal
	}

	byKey := make(map[string]*sums)
	order := make([]string, 0)

	for _, row := range sorted {
		// A row with a type outside the enum must not open a bucket.
		if row.Type != entity.TransactionTypeIncome && row.Type != entity.TransactionTypeExpense {
			continue
		}

		amount, err := coerceAmount(row)
		if err != nil {
			return nil, err
		}

		k := key(row.Date)
		bucket, ok := byKey[k]
		if !ok {
			bucket = &sums{income: decimal.Zero, expense: decimal.Zero}
			byKey[k] = bucket
			order = append(order, k)
		}

		if row.Type == entity.TransactionTypeIncome {
			bucket.income = bucket.income.Add(amount)
		} else {
			bucket.expense = bucket.expense.Add(amount)
		}
	}

	buckets := make([]T, 0, len(order))
	for _, k := range order {
		bucket := byKey[k]
		buckets = append(buckets, build(k, bucket.income, bucket.expense))
	}

	return buckets, nil
}

// sortedByDate returns a stable date-ascending copy of rows, leaving the
// caller's slice untouched. Ties keep their input order.
func sortedByDate(rows []Row) []Row {
	sorted := make([]Row, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

// coerceAmount converts a row's raw amount to a decimal. Failure is a
// computation error naming the offending row; bad rows are never skipped.
func coerceAmount(row Row) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(row.Amount)
	if err != nil {
		return decimal.Zero, domainerror.NewComputationError(row.ID, row.Amount)
	}
	return amount, nil
}

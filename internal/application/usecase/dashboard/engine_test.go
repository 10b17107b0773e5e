package dashboard

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MuriloKuehne/personal-finance-dashboard/internal/domain/entity"
	domainerror "github.com/MuriloKuehne/personal-finance-dashboard/internal/domain/error"
)

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func row(amount string, txnType entity.TransactionType, date string) Row {
	return Row{
		ID:     uuid.New(),
		Amount: amount,
		Type:   txnType,
		Date:   day(date),
	}
}

func assertDecimal(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Errorf("%s = %s, want %s", name, got, want)
	}
}

func TestComputeDashboardStats(t *testing.T) {
	t.Run("partitions totals and month window", func(t *testing.T) {
		rows := []Row{
			row("100", entity.TransactionTypeIncome, "2024-03-15"),
			row("40", entity.TransactionTypeExpense, "2024-03-20"),
			row("25", entity.TransactionTypeExpense, "2024-04-01"),
		}

		stats, err := ComputeDashboardStats(rows, day("2024-03-25"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		assertDecimal(t, "TotalIncome", stats.TotalIncome, "100")
		assertDecimal(t, "TotalExpenses", stats.TotalExpenses, "65")
		assertDecimal(t, "NetBalance", stats.NetBalance, "35")
		assertDecimal(t, "MonthlyIncome", stats.MonthlyIncome, "100")
		assertDecimal(t, "MonthlyExpenses", stats.MonthlyExpenses, "40")
	})

	t.Run("empty input yields zeros without error", func(t *testing.T) {
		stats, err := ComputeDashboardStats(nil, day("2024-03-25"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		assertDecimal(t, "TotalIncome", stats.TotalIncome, "0")
		assertDecimal(t, "TotalExpenses", stats.TotalExpenses, "0")
		assertDecimal(t, "NetBalance", stats.NetBalance, "0")
		assertDecimal(t, "MonthlyIncome", stats.MonthlyIncome, "0")
		assertDecimal(t, "MonthlyExpenses", stats.MonthlyExpenses, "0")
	})

	t.Run("month boundary days are included", func(t *testing.T) {
		rows := []Row{
			row("10", entity.TransactionTypeIncome, "2024-02-01"),
			row("20", entity.TransactionTypeIncome, "2024-02-29"),
			row("5", entity.TransactionTypeIncome, "2024-01-31"),
			row("7", entity.TransactionTypeIncome, "2024-03-01"),
		}

		stats, err := ComputeDashboardStats(rows, day("2024-02-14"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		assertDecimal(t, "MonthlyIncome", stats.MonthlyIncome, "30")
		assertDecimal(t, "TotalIncome", stats.TotalIncome, "42")
	})

	t.Run("net balance can be negative", func(t *testing.T) {
		rows := []Row{
			row("10", entity.TransactionTypeIncome, "2024-03-01"),
			row("30", entity.TransactionTypeExpense, "2024-03-02"),
		}

		stats, err := ComputeDashboardStats(rows, day("2024-03-25"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		assertDecimal(t, "NetBalance", stats.NetBalance, "-20")
	})

	t.Run("totals are invariant under input reordering", func(t *testing.T) {
		rows := []Row{
			row("1.10", entity.TransactionTypeIncome, "2024-03-03"),
			row("2.20", entity.TransactionTypeIncome, "2024-01-01"),
			row("3.30", entity.TransactionTypeExpense, "2024-02-02"),
		}
		reversed := []Row{rows[2], rows[1], rows[0]}

		first, err := ComputeDashboardStats(rows, day("2024-03-25"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := ComputeDashboardStats(reversed, day("2024-03-25"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !first.TotalIncome.Equal(second.TotalIncome) ||
			!first.TotalExpenses.Equal(second.TotalExpenses) ||
			!first.NetBalance.Equal(second.NetBalance) {
			t.Errorf("stats changed under reordering: %+v vs %+v", first, second)
		}
	})

	t.Run("non-numeric amount reports the offending transaction", func(t *testing.T) {
		bad := Row{ID: uuid.New(), Amount: "abc", Type: entity.TransactionTypeIncome, Date: day("2024-03-10")}
		rows := []Row{
			row("50", entity.TransactionTypeIncome, "2024-03-01"),
			bad,
		}

		_, err := ComputeDashboardStats(rows, day("2024-03-25"))
		if err == nil {
			t.Fatal("expected a computation error")
		}

		var statsErr *domainerror.StatsError
		if !errors.As(err, &statsErr) {
			t.Fatalf("expected *StatsError, got %T", err)
		}
		if statsErr.Code != domainerror.ErrCodeAmountNotNumeric {
			t.Errorf("code = %s, want %s", statsErr.Code, domainerror.ErrCodeAmountNotNumeric)
		}
		if statsErr.TransactionID != bad.ID {
			t.Errorf("transaction id = %s, want %s", statsErr.TransactionID, bad.ID)
		}
		if !errors.Is(err, domainerror.ErrAmountNotNumeric) {
			t.Error("expected error to wrap ErrAmountNotNumeric")
		}
	})

	t.Run("rows with an unknown type count in neither total", func(t *testing.T) {
		rows := []Row{
			row("100", entity.TransactionTypeIncome, "2024-03-15"),
			row("40", entity.TransactionTypeExpense, "2024-03-20"),
			row("999", entity.TransactionType("transfer"), "2024-03-21"),
		}

		stats, err := ComputeDashboardStats(rows, day("2024-03-25"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		assertDecimal(t, "TotalIncome", stats.TotalIncome, "100")
		assertDecimal(t, "TotalExpenses", stats.TotalExpenses, "40")
		assertDecimal(t, "MonthlyExpenses", stats.MonthlyExpenses, "40")
		assertDecimal(t, "NetBalance", stats.NetBalance, "60")
	})
}

func TestComputeMonthlySummary(t *testing.T) {
	t.Run("buckets by calendar month in ascending order", func(t *testing.T) {
		rows := []Row{
			row("100", entity.TransactionTypeIncome, "2024-03-15"),
			row("40", entity.TransactionTypeExpense, "2024-03-20"),
			row("25", entity.TransactionTypeExpense, "2024-04-01"),
		}

		buckets, err := ComputeMonthlySummary(rows)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(buckets) != 2 {
			t.Fatalf("got %d buckets, want 2", len(buckets))
		}
		if buckets[0].Month != "2024-03" || buckets[1].Month != "2024-04" {
			t.Fatalf("bucket order = [%s, %s]", buckets[0].Month, buckets[1].Month)
		}
		assertDecimal(t, "March income", buckets[0].Income, "100")
		assertDecimal(t, "March expense", buckets[0].Expense, "40")
		assertDecimal(t, "April income", buckets[1].Income, "0")
		assertDecimal(t, "April expense", buckets[1].Expense, "25")
	})

	t.Run("sorts unordered input before bucketing", func(t *testing.T) {
		rows := []Row{
			row("25", entity.TransactionTypeExpense, "2024-04-01"),
			row("100", entity.TransactionTypeIncome, "2024-03-15"),
		}

		buckets, err := ComputeMonthlySummary(rows)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(buckets) != 2 || buckets[0].Month != "2024-03" {
			t.Fatalf("expected 2024-03 first, got %+v", buckets)
		}
	})

	t.Run("gaps in history produce gaps in output", func(t *testing.T) {
		rows := []Row{
			row("10", entity.TransactionTypeIncome, "2024-01-10"),
			row("20", entity.TransactionTypeIncome, "2024-05-10"),
		}

		buckets, err := ComputeMonthlySummary(rows)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(buckets) != 2 {
			t.Fatalf("got %d buckets, want 2 (no zero-filled months)", len(buckets))
		}
		if buckets[0].Month != "2024-01" || buckets[1].Month != "2024-05" {
			t.Errorf("bucket months = [%s, %s]", buckets[0].Month, buckets[1].Month)
		}
	})

	t.Run("empty input yields empty summary", func(t *testing.T) {
		buckets, err := ComputeMonthlySummary(nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(buckets) != 0 {
			t.Errorf("got %d buckets, want 0", len(buckets))
		}
	})

	t.Run("rows with an unknown type open no bucket", func(t *testing.T) {
		rows := []Row{
			row("100", entity.TransactionTypeIncome, "2024-03-15"),
			row("999", entity.TransactionType("transfer"), "2024-04-02"),
		}

		buckets, err := ComputeMonthlySummary(rows)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(buckets) != 1 || buckets[0].Month != "2024-03" {
			t.Fatalf("buckets = %+v, want only 2024-03", buckets)
		}
		assertDecimal(t, "March income", buckets[0].Income, "100")
		assertDecimal(t, "March expense", buckets[0].Expense, "0")
	})
}

func TestComputeWeeklySummary(t *testing.T) {
	t.Run("buckets by distinct day", func(t *testing.T) {
		rows := []Row{
			row("10", entity.TransactionTypeIncome, "2024-03-18"),
			row("5", entity.TransactionTypeExpense, "2024-03-18"),
			row("7", entity.TransactionTypeExpense, "2024-03-20"),
		}

		buckets, err := ComputeWeeklySummary(rows)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(buckets) != 2 {
			t.Fatalf("got %d buckets, want 2 (days without data are omitted)", len(buckets))
		}
		if buckets[0].Day != "2024-03-18" || buckets[1].Day != "2024-03-20" {
			t.Fatalf("bucket days = [%s, %s]", buckets[0].Day, buckets[1].Day)
		}
		assertDecimal(t, "monday income", buckets[0].Income, "10")
		assertDecimal(t, "monday expense", buckets[0].Expense, "5")
		assertDecimal(t, "wednesday expense", buckets[1].Expense, "7")
	})

	t.Run("non-numeric amount fails the computation", func(t *testing.T) {
		rows := []Row{
			{ID: uuid.New(), Amount: "12,50", Type: entity.TransactionTypeIncome, Date: day("2024-03-18")},
		}

		if _, err := ComputeWeeklySummary(rows); err == nil {
			t.Fatal("expected a computation error")
		}
	})
}

func TestComputeCategoryBreakdown(t *testing.T) {
	groceries := entity.NewCategory(uuid.New(), "Groceries", "#10B981", entity.CategoryTypeExpense)
	rent := entity.NewCategory(uuid.New(), "Rent", "#EF4444", entity.CategoryTypeExpense)
	unused := entity.NewCategory(uuid.New(), "Travel", "#3B82F6", entity.CategoryTypeExpense)
	categories := []*entity.Category{groceries, rent, unused}

	withCategory := func(r Row, id uuid.UUID) Row {
		r.CategoryID = &id
		return r
	}

	t.Run("sums per category and omits inactive ones", func(t *testing.T) {
		rows := []Row{
			withCategory(row("30", entity.TransactionTypeExpense, "2024-03-01"), groceries.ID),
			withCategory(row("20", entity.TransactionTypeExpense, "2024-03-05"), groceries.ID),
			withCategory(row("800", entity.TransactionTypeExpense, "2024-03-02"), rent.ID),
			withCategory(row("1000", entity.TransactionTypeIncome, "2024-03-03"), uuid.New()),
		}

		breakdown, err := ComputeCategoryBreakdown(rows, entity.TransactionTypeExpense, categories)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(breakdown) != 2 {
			t.Fatalf("got %d entries, want 2", len(breakdown))
		}
		if breakdown[0].Name != "Groceries" || breakdown[1].Name != "Rent" {
			t.Fatalf("entry order = [%s, %s]", breakdown[0].Name, breakdown[1].Name)
		}
		assertDecimal(t, "groceries", breakdown[0].Value, "50")
		assertDecimal(t, "rent", breakdown[1].Value, "800")
		if breakdown[0].Color != "#10B981" {
			t.Errorf("groceries color = %s", breakdown[0].Color)
		}
	})

	t.Run("uncategorized rows group under the placeholder", func(t *testing.T) {
		rows := []Row{
			row("15", entity.TransactionTypeExpense, "2024-03-01"),
			row("5", entity.TransactionTypeExpense, "2024-03-02"),
		}

		breakdown, err := ComputeCategoryBreakdown(rows, entity.TransactionTypeExpense, categories)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(breakdown) != 1 {
			t.Fatalf("got %d entries, want 1", len(breakdown))
		}
		if breakdown[0].Name != UncategorizedName || breakdown[0].Color != UncategorizedColor {
			t.Errorf("placeholder entry = %+v", breakdown[0])
		}
		if breakdown[0].CategoryID != nil {
			t.Error("placeholder entry must not carry a category id")
		}
		assertDecimal(t, "uncategorized", breakdown[0].Value, "20")
	})

	t.Run("filters rows to the requested type", func(t *testing.T) {
		rows := []Row{
			withCategory(row("30", entity.TransactionTypeExpense, "2024-03-01"), groceries.ID),
			withCategory(row("999", entity.TransactionTypeIncome, "2024-03-01"), groceries.ID),
		}

		breakdown, err := ComputeCategoryBreakdown(rows, entity.TransactionTypeExpense, categories)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		assertDecimal(t, "groceries", breakdown[0].Value, "30")
	})
}

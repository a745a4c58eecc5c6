package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/domain/entity"
)

func txn(txnType entity.TransactionType, amount int64, category entity.Category, date time.Time) *entity.Transaction {
	return entity.NewTransaction(txnType, decimal.NewFromInt(amount), category, date, "", entity.PaymentMethodCard)
}

func TestTotals(t *testing.T) {
	date := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	transactions := []*entity.Transaction{
		txn(entity.TransactionTypeIncome, 4500, entity.CategorySalary, date),
		txn(entity.TransactionTypeIncome, 850, entity.CategoryFreelance, date),
		txn(entity.TransactionTypeExpense, 1200, entity.CategoryRent, date),
		txn(entity.TransactionTypeExpense, 85, entity.CategoryFood, date),
	}

	if got := TotalIncome(transactions); !got.Equal(decimal.NewFromInt(5350)) {
		t.Errorf("TotalIncome = %s, want 5350", got)
	}
	if got := TotalExpenses(transactions); !got.Equal(decimal.NewFromInt(1285)) {
		t.Errorf("TotalExpenses = %s, want 1285", got)
	}
}

func TestTotalsEmptyLedger(t *testing.T) {
	if got := TotalIncome(nil); !got.IsZero() {
		t.Errorf("TotalIncome(nil) = %s, want 0", got)
	}
	if got := TotalExpenses(nil); !got.IsZero() {
		t.Errorf("TotalExpenses(nil) = %s, want 0", got)
	}
}

func TestFilterByMonth(t *testing.T) {
	march := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)
	april := time.Date(2026, time.April, 5, 0, 0, 0, 0, time.UTC)
	marchLastYear := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)

	transactions := []*entity.Transaction{
		txn(entity.TransactionTypeExpense, 10, entity.CategoryFood, march),
		txn(entity.TransactionTypeExpense, 20, entity.CategoryFood, april),
		txn(entity.TransactionTypeExpense, 30, entity.CategoryFood, marchLastYear),
	}

	filtered := FilterByMonth(transactions, 2026, time.March)
	if len(filtered) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(filtered))
	}
	if !filtered[0].Amount.Equal(decimal.NewFromInt(10)) {
		t.Errorf("expected the March 2026 transaction, got amount %s", filtered[0].Amount)
	}
}

func TestExpensesByCategory(t *testing.T) {
	date := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	transactions := []*entity.Transaction{
		txn(entity.TransactionTypeExpense, 85, entity.CategoryFood, date),
		txn(entity.TransactionTypeExpense, 65, entity.CategoryFood, date),
		txn(entity.TransactionTypeExpense, 45, entity.CategoryTransport, date),
		txn(entity.TransactionTypeIncome, 4500, entity.CategorySalary, date),
	}

	byCategory := ExpensesByCategory(transactions)

	if len(byCategory) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(byCategory))
	}
	if !byCategory[entity.CategoryFood].Equal(decimal.NewFromInt(150)) {
		t.Errorf("food = %s, want 150", byCategory[entity.CategoryFood])
	}
	if !byCategory[entity.CategoryTransport].Equal(decimal.NewFromInt(45)) {
		t.Errorf("transport = %s, want 45", byCategory[entity.CategoryTransport])
	}

	// Sum of per-category amounts must equal the expense total.
	sum := decimal.Zero
	for _, amount := range byCategory {
		sum = sum.Add(amount)
	}
	if !sum.Equal(TotalExpenses(transactions)) {
		t.Errorf("category sum %s != expense total %s", sum, TotalExpenses(transactions))
	}
}

func TestDailySpending(t *testing.T) {
	transactions := []*entity.Transaction{
		txn(entity.TransactionTypeExpense, 85, entity.CategoryFood, time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)),
		txn(entity.TransactionTypeExpense, 15, entity.CategoryFood, time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)),
		txn(entity.TransactionTypeExpense, 45, entity.CategoryTransport, time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)),
		txn(entity.TransactionTypeIncome, 850, entity.CategoryFreelance, time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)),
	}

	daily := DailySpending(transactions)

	if len(daily) != 2 {
		t.Fatalf("expected 2 days, got %d", len(daily))
	}
	if !daily[3].Equal(decimal.NewFromInt(100)) {
		t.Errorf("day 3 = %s, want 100", daily[3])
	}
	if !daily[4].Equal(decimal.NewFromInt(45)) {
		t.Errorf("day 4 = %s, want 45", daily[4])
	}
	if _, ok := daily[5]; ok {
		t.Error("income day should be absent from daily spending")
	}
}

func TestCategorySpending(t *testing.T) {
	date := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	transactions := []*entity.Transaction{
		txn(entity.TransactionTypeExpense, 85, entity.CategoryFood, date),
		txn(entity.TransactionTypeExpense, 45, entity.CategoryTransport, date),
		txn(entity.TransactionTypeIncome, 100, entity.CategoryInvestment, date),
	}

	if got := CategorySpending(transactions, entity.CategoryFood); !got.Equal(decimal.NewFromInt(85)) {
		t.Errorf("food spending = %s, want 85", got)
	}
	// Income in a shared category does not count as spending.
	if got := CategorySpending(transactions, entity.CategoryInvestment); !got.IsZero() {
		t.Errorf("investment spending = %s, want 0", got)
	}
}

// Package analytics contains the aggregation engine: pure functions that
// derive totals, category breakdowns and daily series from a ledger snapshot.
package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/domain/entity"
)

// FilterByMonth returns the transactions whose Date falls in the given
// calendar month. The transaction's Date field is used, not CreatedAt.
func FilterByMonth(transactions []*entity.Transaction, year int, month time.Month) []*entity.Transaction {
	filtered := make([]*entity.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t.Date.Year() == year && t.Date.Month() == month {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// TotalIncome sums the amounts of income transactions in the snapshot.
func TotalIncome(transactions []*entity.Transaction) decimal.Decimal {
	return totalByType(transactions, entity.TransactionTypeIncome)
}

// TotalExpenses sums the amounts of expense transactions in the snapshot.
func TotalExpenses(transactions []*entity.Transaction) decimal.Decimal {
	return totalByType(transactions, entity.TransactionTypeExpense)
}

func totalByType(transactions []*entity.Transaction, transactionType entity.TransactionType) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		if t.Type == transactionType {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// ExpensesByCategory maps each category to its summed expense amount.
// Income transactions are ignored.
func ExpensesByCategory(transactions []*entity.Transaction) map[entity.Category]decimal.Decimal {
	byCategory := make(map[entity.Category]decimal.Decimal)
	for _, t := range transactions {
		if t.Type != entity.TransactionTypeExpense {
			continue
		}
		byCategory[t.Category] = byCategory[t.Category].Add(t.Amount)
	}
	return byCategory
}

// DailySpending maps day-of-month (1..31) to the summed expense amount for
// that calendar day. Days without expenses are absent from the map.
func DailySpending(transactions []*entity.Transaction) map[int]decimal.Decimal {
	daily := make(map[int]decimal.Decimal)
	for _, t := range transactions {
		if t.Type != entity.TransactionTypeExpense {
			continue
		}
		day := t.Date.Day()
		daily[day] = daily[day].Add(t.Amount)
	}
	return daily
}

// CategorySpending returns the summed expense amount for a single category.
func CategorySpending(transactions []*entity.Transaction, category entity.Category) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		if t.Type == entity.TransactionTypeExpense && t.Category == category {
			total = total.Add(t.Amount)
		}
	}
	return total
}

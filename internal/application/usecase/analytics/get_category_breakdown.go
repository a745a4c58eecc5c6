// Package analytics contains the aggregation engine use cases.
package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/domain/entity"
)

// GetCategoryBreakdownInput represents the input for the category breakdown.
// When Year is zero the breakdown covers the full ledger.
type GetCategoryBreakdownInput struct {
	Year  int
	Month time.Month
}

// CategoryBreakdownItem represents a single category in the breakdown.
type CategoryBreakdownItem struct {
	Category      entity.Category
	CategoryLabel string
	Amount        decimal.Decimal
	Percentage    float64
}

// GetCategoryBreakdownOutput represents the expense breakdown by category.
type GetCategoryBreakdownOutput struct {
	TotalExpenses decimal.Decimal
	Categories    []CategoryBreakdownItem
}

// GetCategoryBreakdownUseCase derives the per-category expense breakdown.
type GetCategoryBreakdownUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase instance.
func NewGetCategoryBreakdownUseCase(transactionRepo adapter.TransactionRepository) *GetCategoryBreakdownUseCase {
	return &GetCategoryBreakdownUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute computes the breakdown, largest category first.
func (uc *GetCategoryBreakdownUseCase) Execute(
	ctx context.Context,
	input GetCategoryBreakdownInput,
) (*GetCategoryBreakdownOutput, error) {
	transactions, err := fetchPeriod(ctx, uc.transactionRepo, input.Year, input.Month)
	if err != nil {
		return nil, err
	}

	byCategory := ExpensesByCategory(transactions)
	total := TotalExpenses(transactions)

	categories := make([]CategoryBreakdownItem, 0, len(byCategory))
	for category, amount := range byCategory {
		var percentage float64
		if !total.IsZero() {
			pct := amount.Mul(decimal.NewFromInt(100)).Div(total)
			percentage, _ = pct.Round(2).Float64()
		}

		categories = append(categories, CategoryBreakdownItem{
			Category:      category,
			CategoryLabel: category.Label(),
			Amount:        amount,
			Percentage:    percentage,
		})
	}

	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Amount.Equal(categories[j].Amount) {
			return categories[i].Category < categories[j].Category
		}
		return categories[i].Amount.GreaterThan(categories[j].Amount)
	})

	return &GetCategoryBreakdownOutput{
		TotalExpenses: total,
		Categories:    categories,
	}, nil
}

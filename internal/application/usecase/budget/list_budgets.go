// Package budget contains budget-goal use cases.
package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/application/usecase/analytics"
	"github.com/smartspend/backend/internal/domain/entity"
)

// ListBudgetsInput represents the input for listing budget goals.
// Now anchors the current calendar month; the zero value means time.Now.
type ListBudgetsInput struct {
	Now time.Time
}

// ListBudgetsOutput represents all goals with their live monthly spending.
type ListBudgetsOutput struct {
	Budgets    []*entity.BudgetStatus
	TotalLimit decimal.Decimal
	TotalSpent decimal.Decimal
}

// ListBudgetsUseCase lists budget goals. Spending is always recomputed from
// the ledger for the current month; the stored spent value is ignored.
type ListBudgetsUseCase struct {
	budgetRepo      adapter.BudgetRepository
	transactionRepo adapter.TransactionRepository
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(
	budgetRepo adapter.BudgetRepository,
	transactionRepo adapter.TransactionRepository,
) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute lists the budgets with live spending.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	goals, err := uc.budgetRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	transactions, err := uc.transactionRepo.FindByMonth(ctx, now.Year(), now.Month())
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger for budget listing: %w", err)
	}

	byCategory := analytics.ExpensesByCategory(transactions)

	output := &ListBudgetsOutput{
		Budgets:    make([]*entity.BudgetStatus, 0, len(goals)),
		TotalLimit: decimal.Zero,
		TotalSpent: decimal.Zero,
	}

	for _, goal := range goals {
		spent := byCategory[goal.Category]
		percentUsed := decimal.Zero
		if !goal.Limit.IsZero() {
			percentUsed = spent.Mul(decimal.NewFromInt(100)).Div(goal.Limit)
		}

		output.Budgets = append(output.Budgets, &entity.BudgetStatus{
			Goal:        goal,
			Spent:       spent,
			PercentUsed: percentUsed,
			State:       entity.StateFor(spent, goal.Limit),
		})
		output.TotalLimit = output.TotalLimit.Add(goal.Limit)
		output.TotalSpent = output.TotalSpent.Add(spent)
	}

	return output, nil
}

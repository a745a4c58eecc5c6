// Package budget contains budget-goal use cases.
package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/domain/entity"
	domainerror "github.com/smartspend/backend/internal/domain/error"
)

// SetBudgetInput represents the input for creating or updating a budget goal.
type SetBudgetInput struct {
	Category entity.Category
	Limit    decimal.Decimal
}

// SetBudgetOutput represents the output of setting a budget goal.
type SetBudgetOutput struct {
	Goal    *entity.BudgetGoal
	Created bool
}

// SetBudgetUseCase creates the goal for a category, or replaces its limit
// when one already exists. Budgets apply to expense categories only.
type SetBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewSetBudgetUseCase creates a new SetBudgetUseCase instance.
func NewSetBudgetUseCase(budgetRepo adapter.BudgetRepository) *SetBudgetUseCase {
	return &SetBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute sets the budget goal.
func (uc *SetBudgetUseCase) Execute(ctx context.Context, input SetBudgetInput) (*SetBudgetOutput, error) {
	if !entity.IsValidCategoryForType(input.Category, entity.TransactionTypeExpense) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetCategory,
			"budget category must be a valid expense category",
			domainerror.ErrInvalidBudgetCategory,
		)
	}

	if input.Limit.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetLimit,
			"budget limit must be greater than 0",
			domainerror.ErrInvalidBudgetLimit,
		)
	}

	existing, err := uc.budgetRepo.FindByCategory(ctx, input.Category)
	if err != nil {
		return nil, fmt.Errorf("failed to load budget for %s: %w", input.Category, err)
	}

	var goal *entity.BudgetGoal
	created := existing == nil
	if created {
		goal = entity.NewBudgetGoal(input.Category, input.Limit)
	} else {
		goal = existing
		goal.Limit = input.Limit
		goal.UpdatedAt = time.Now().UTC()
	}

	if err := uc.budgetRepo.Save(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to save budget: %w", err)
	}

	return &SetBudgetOutput{Goal: goal, Created: created}, nil
}

// Package budget contains budget-goal use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/domain/entity"
	domainerror "github.com/smartspend/backend/internal/domain/error"
)

// DeleteBudgetInput represents the input for removing a budget goal.
type DeleteBudgetInput struct {
	Category entity.Category
}

// DeleteBudgetUseCase removes the goal for a category.
type DeleteBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewDeleteBudgetUseCase creates a new DeleteBudgetUseCase instance.
func NewDeleteBudgetUseCase(budgetRepo adapter.BudgetRepository) *DeleteBudgetUseCase {
	return &DeleteBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute removes the budget goal.
func (uc *DeleteBudgetUseCase) Execute(ctx context.Context, input DeleteBudgetInput) error {
	goal, err := uc.budgetRepo.FindByCategory(ctx, input.Category)
	if err != nil {
		return fmt.Errorf("failed to load budget for %s: %w", input.Category, err)
	}
	if goal == nil {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetNotFound,
			fmt.Sprintf("no budget configured for category %s", input.Category),
			domainerror.ErrBudgetNotFound,
		)
	}

	if err := uc.budgetRepo.Delete(ctx, input.Category); err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}
	return nil
}

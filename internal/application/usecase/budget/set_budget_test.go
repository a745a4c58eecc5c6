package budget

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/domain/entity"
	domainerror "github.com/smartspend/backend/internal/domain/error"
)

func TestSetBudget_CreateThenReplace(t *testing.T) {
	repo := newFakeBudgetRepo()
	uc := NewSetBudgetUseCase(repo)
	ctx := context.Background()

	output, err := uc.Execute(ctx, SetBudgetInput{
		Category: entity.CategoryFood,
		Limit:    decimal.NewFromInt(100),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !output.Created {
		t.Error("expected first set to report created")
	}

	output, err = uc.Execute(ctx, SetBudgetInput{
		Category: entity.CategoryFood,
		Limit:    decimal.NewFromInt(250),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Created {
		t.Error("expected second set to replace, not create")
	}
	if !output.Goal.Limit.Equal(decimal.NewFromInt(250)) {
		t.Errorf("expected limit replaced, got %s", output.Goal.Limit)
	}
	if len(repo.goals) != 1 {
		t.Errorf("expected one goal per category, got %d", len(repo.goals))
	}
}

func TestSetBudget_RejectsIncomeCategory(t *testing.T) {
	uc := NewSetBudgetUseCase(newFakeBudgetRepo())

	_, err := uc.Execute(context.Background(), SetBudgetInput{
		Category: entity.CategorySalary,
		Limit:    decimal.NewFromInt(100),
	})

	var budgetErr *domainerror.BudgetError
	if !errors.As(err, &budgetErr) {
		t.Fatalf("expected BudgetError, got %v", err)
	}
	if budgetErr.Code != domainerror.ErrCodeInvalidBudgetCategory {
		t.Errorf("unexpected code %s", budgetErr.Code)
	}
}

func TestSetBudget_RejectsNonPositiveLimit(t *testing.T) {
	uc := NewSetBudgetUseCase(newFakeBudgetRepo())

	for _, limit := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-10)} {
		_, err := uc.Execute(context.Background(), SetBudgetInput{
			Category: entity.CategoryFood,
			Limit:    limit,
		})

		var budgetErr *domainerror.BudgetError
		if !errors.As(err, &budgetErr) {
			t.Fatalf("limit %s: expected BudgetError, got %v", limit, err)
		}
		if budgetErr.Code != domainerror.ErrCodeInvalidBudgetLimit {
			t.Errorf("limit %s: unexpected code %s", limit, budgetErr.Code)
		}
	}
}

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/domain/entity"
)

func TestBudgetRepository_SaveUpserts(t *testing.T) {
	repo := NewBudgetRepository(newTestDB(t))
	ctx := context.Background()

	goal := entity.NewBudgetGoal(entity.CategoryFood, decimal.NewFromInt(100))
	if err := repo.Save(ctx, goal); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Same category replaces the limit instead of adding a row.
	goal.Limit = decimal.NewFromInt(250)
	if err := repo.Save(ctx, goal); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	all, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 goal, got %d", len(all))
	}
	if !all[0].Limit.Equal(decimal.NewFromInt(250)) {
		t.Errorf("expected limit replaced, got %s", all[0].Limit)
	}
}

func TestBudgetRepository_FindByCategoryMissing(t *testing.T) {
	repo := NewBudgetRepository(newTestDB(t))

	goal, err := repo.FindByCategory(context.Background(), entity.CategoryFood)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if goal != nil {
		t.Errorf("expected nil for unset category, got %+v", goal)
	}
}

func TestBudgetRepository_FindAllOldestFirst(t *testing.T) {
	repo := NewBudgetRepository(newTestDB(t))
	ctx := context.Background()

	base := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	first := entity.NewBudgetGoal(entity.CategoryFood, decimal.NewFromInt(100))
	first.CreatedAt = base
	second := entity.NewBudgetGoal(entity.CategoryTransport, decimal.NewFromInt(50))
	second.CreatedAt = base.Add(time.Hour)
	for _, goal := range []*entity.BudgetGoal{second, first} {
		if err := repo.Save(ctx, goal); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	all, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 goals, got %d", len(all))
	}
	if all[0].Category != entity.CategoryFood {
		t.Errorf("expected oldest goal first, got %s", all[0].Category)
	}
}

func TestBudgetRepository_Delete(t *testing.T) {
	repo := NewBudgetRepository(newTestDB(t))
	ctx := context.Background()

	if err := repo.Save(ctx, entity.NewBudgetGoal(entity.CategoryFood, decimal.NewFromInt(100))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Delete(ctx, entity.CategoryFood); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Delete(ctx, entity.CategoryFood); err != nil {
		t.Fatalf("expected repeated delete to be a no-op, got %v", err)
	}

	goal, err := repo.FindByCategory(ctx, entity.CategoryFood)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if goal != nil {
		t.Error("expected goal removed")
	}
}

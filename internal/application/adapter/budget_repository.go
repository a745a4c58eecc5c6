// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/smartspend/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget goal persistence.
// Category is the unique key: at most one goal exists per category.
type BudgetRepository interface {
	// Save creates or replaces the goal for its category.
	Save(ctx context.Context, goal *entity.BudgetGoal) error

	// FindByCategory retrieves the goal for a category, or nil when none exists.
	FindByCategory(ctx context.Context, category entity.Category) (*entity.BudgetGoal, error)

	// FindAll retrieves all budget goals, oldest first by creation time.
	FindAll(ctx context.Context) ([]*entity.BudgetGoal, error)

	// Delete removes the goal for a category. Missing categories are a no-op.
	Delete(ctx context.Context, category entity.Category) error

	// DeleteAll removes every budget goal.
	DeleteAll(ctx context.Context) error
}

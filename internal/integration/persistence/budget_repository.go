package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/domain/entity"
	"github.com/smartspend/backend/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{
		db: db,
	}
}

// Save creates or replaces the goal for its category.
func (r *budgetRepository) Save(ctx context.Context, goal *entity.BudgetGoal) error {
	budgetModel := model.BudgetGoalFromEntity(goal)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "category"}},
			UpdateAll: true,
		}).
		Create(budgetModel)
	return result.Error
}

// FindByCategory retrieves the goal for a category, or nil when none exists.
func (r *budgetRepository) FindByCategory(ctx context.Context, category entity.Category) (*entity.BudgetGoal, error) {
	var budgetModel model.BudgetGoalModel
	result := r.db.WithContext(ctx).
		Where("category = ?", string(category)).
		First(&budgetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return budgetModel.ToEntity(), nil
}

// FindAll retrieves all budget goals, oldest first.
func (r *budgetRepository) FindAll(ctx context.Context) ([]*entity.BudgetGoal, error) {
	var budgetModels []model.BudgetGoalModel
	result := r.db.WithContext(ctx).
		Order("created_at ASC, category ASC").
		Find(&budgetModels)
	if result.Error != nil {
		return nil, result.Error
	}

	goals := make([]*entity.BudgetGoal, len(budgetModels))
	for i, bm := range budgetModels {
		goals[i] = bm.ToEntity()
	}
	return goals, nil
}

// Delete removes the goal for a category. Missing categories are a no-op.
func (r *budgetRepository) Delete(ctx context.Context, category entity.Category) error {
	result := r.db.WithContext(ctx).
		Where("category = ?", string(category)).
		Delete(&model.BudgetGoalModel{})
	return result.Error
}

// DeleteAll removes every budget goal.
func (r *budgetRepository) DeleteAll(ctx context.Context) error {
	result := r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&model.BudgetGoalModel{})
	return result.Error
}

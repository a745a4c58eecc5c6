package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/domain/entity"
)

// BudgetGoalModel represents the budget_goals table in the database.
// Category is the primary key: one goal per expense category.
type BudgetGoalModel struct {
	Category  string          `gorm:"type:varchar(32);primaryKey"`
	Limit     decimal.Decimal `gorm:"column:limit_amount;type:decimal(15,2);not null"`
	Spent     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BudgetGoalModel.
func (BudgetGoalModel) TableName() string {
	return "budget_goals"
}

// ToEntity converts a BudgetGoalModel to a domain BudgetGoal entity.
func (m *BudgetGoalModel) ToEntity() *entity.BudgetGoal {
	return &entity.BudgetGoal{
		Category:  entity.Category(m.Category),
		Limit:     m.Limit,
		Spent:     m.Spent,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// BudgetGoalFromEntity converts a domain BudgetGoal entity to a BudgetGoalModel.
func BudgetGoalFromEntity(g *entity.BudgetGoal) *BudgetGoalModel {
	return &BudgetGoalModel{
		Category:  string(g.Category),
		Limit:     g.Limit,
		Spent:     g.Spent,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

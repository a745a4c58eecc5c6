// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetState represents where current spending sits relative to the limit.
type BudgetState string

const (
	BudgetStateOK       BudgetState = "ok"
	BudgetStateWarning  BudgetState = "warning"
	BudgetStateExceeded BudgetState = "exceeded"
)

// BudgetWarningRatio is the spent/limit ratio at which a budget enters the
// warning state.
var BudgetWarningRatio = decimal.NewFromFloat(0.75)

// BudgetGoal represents a monthly spending limit for one expense category.
// Category is the unique key: at most one goal exists per category.
type BudgetGoal struct {
	Category  Category
	Limit     decimal.Decimal
	Spent     decimal.Decimal // Cached value; the ledger is the source of truth
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBudgetGoal creates a new BudgetGoal entity with zero cached spending.
func NewBudgetGoal(category Category, limit decimal.Decimal) *BudgetGoal {
	now := time.Now().UTC()

	return &BudgetGoal{
		Category:  category,
		Limit:     limit,
		Spent:     decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// StateFor classifies a spent amount against a limit.
// spent/limit < 0.75 is ok, below 1.0 is warning, at or above 1.0 is exceeded.
func StateFor(spent, limit decimal.Decimal) BudgetState {
	if limit.LessThanOrEqual(decimal.Zero) {
		return BudgetStateOK
	}

	ratio := spent.Div(limit)
	switch {
	case ratio.GreaterThanOrEqual(decimal.NewFromInt(1)):
		return BudgetStateExceeded
	case ratio.GreaterThanOrEqual(BudgetWarningRatio):
		return BudgetStateWarning
	default:
		return BudgetStateOK
	}
}

// BudgetStatus is a budget goal together with its live, recomputed spending.
type BudgetStatus struct {
	Goal        *BudgetGoal
	Spent       decimal.Decimal // Recomputed from the ledger for the current month
	PercentUsed decimal.Decimal
	State       BudgetState
}

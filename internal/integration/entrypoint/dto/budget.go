package dto

import (
	"time"

	"github.com/smartspend/backend/internal/application/usecase/budget"
	"github.com/smartspend/backend/internal/domain/entity"
)

// SetBudgetRequest represents the request body for creating or replacing a goal.
type SetBudgetRequest struct {
	Category string  `json:"category" binding:"required"`
	Limit    float64 `json:"limit" binding:"required"`
}

// BudgetStatusResponse represents one goal with its live monthly spending.
type BudgetStatusResponse struct {
	Category      string    `json:"category"`
	CategoryLabel string    `json:"category_label"`
	Limit         string    `json:"limit"`
	Spent         string    `json:"spent"`
	PercentUsed   string    `json:"percent_used"`
	State         string    `json:"state"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BudgetListResponse represents the response for listing budget goals.
type BudgetListResponse struct {
	Budgets    []BudgetStatusResponse `json:"budgets"`
	TotalLimit string                 `json:"total_limit"`
	TotalSpent string                 `json:"total_spent"`
}

// SetBudgetResponse represents the response for setting a budget goal.
type SetBudgetResponse struct {
	Category  string    `json:"category"`
	Limit     string    `json:"limit"`
	Created   bool      `json:"created"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToBudgetStatusResponse converts a domain BudgetStatus to its DTO.
func ToBudgetStatusResponse(status *entity.BudgetStatus) BudgetStatusResponse {
	return BudgetStatusResponse{
		Category:      string(status.Goal.Category),
		CategoryLabel: status.Goal.Category.Label(),
		Limit:         status.Goal.Limit.String(),
		Spent:         status.Spent.String(),
		PercentUsed:   status.PercentUsed.String(),
		State:         string(status.State),
		CreatedAt:     status.Goal.CreatedAt,
		UpdatedAt:     status.Goal.UpdatedAt,
	}
}

// ToBudgetListResponse converts a list output to a BudgetListResponse DTO.
func ToBudgetListResponse(output *budget.ListBudgetsOutput) BudgetListResponse {
	budgets := make([]BudgetStatusResponse, len(output.Budgets))
	for i, status := range output.Budgets {
		budgets[i] = ToBudgetStatusResponse(status)
	}
	return BudgetListResponse{
		Budgets:    budgets,
		TotalLimit: output.TotalLimit.String(),
		TotalSpent: output.TotalSpent.String(),
	}
}

// ToSetBudgetResponse converts a set output to a SetBudgetResponse DTO.
func ToSetBudgetResponse(output *budget.SetBudgetOutput) SetBudgetResponse {
	return SetBudgetResponse{
		Category:  string(output.Goal.Category),
		Limit:     output.Goal.Limit.String(),
		Created:   output.Created,
		CreatedAt: output.Goal.CreatedAt,
		UpdatedAt: output.Goal.UpdatedAt,
	}
}

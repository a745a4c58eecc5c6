package dto

import (
	"github.com/smartspend/backend/internal/application/usecase/analytics"
)

// SummaryResponse represents the aggregated totals for a period.
type SummaryResponse struct {
	TotalIncome   string `json:"total_income"`
	TotalExpenses string `json:"total_expenses"`
	Balance       string `json:"balance"`
}

// CategoryBreakdownItemResponse represents one category in the breakdown.
type CategoryBreakdownItemResponse struct {
	Category      string  `json:"category"`
	CategoryLabel string  `json:"category_label"`
	Amount        string  `json:"amount"`
	Percentage    float64 `json:"percentage"`
}

// CategoryBreakdownResponse represents the per-category expense breakdown.
type CategoryBreakdownResponse struct {
	TotalExpenses string                          `json:"total_expenses"`
	Categories    []CategoryBreakdownItemResponse `json:"categories"`
}

// DailySpendingResponse maps day-of-month to the summed expense amount.
type DailySpendingResponse struct {
	Year  int            `json:"year"`
	Month int            `json:"month"`
	Days  map[int]string `json:"days"`
}

// ToSummaryResponse converts a summary output to a SummaryResponse DTO.
func ToSummaryResponse(output *analytics.GetSummaryOutput) SummaryResponse {
	return SummaryResponse{
		TotalIncome:   output.TotalIncome.String(),
		TotalExpenses: output.TotalExpenses.String(),
		Balance:       output.Balance.String(),
	}
}

// ToCategoryBreakdownResponse converts a breakdown output to its DTO.
func ToCategoryBreakdownResponse(output *analytics.GetCategoryBreakdownOutput) CategoryBreakdownResponse {
	categories := make([]CategoryBreakdownItemResponse, len(output.Categories))
	for i, item := range output.Categories {
		categories[i] = CategoryBreakdownItemResponse{
			Category:      string(item.Category),
			CategoryLabel: item.CategoryLabel,
			Amount:        item.Amount.String(),
			Percentage:    item.Percentage,
		}
	}
	return CategoryBreakdownResponse{
		TotalExpenses: output.TotalExpenses.String(),
		Categories:    categories,
	}
}

// ToDailySpendingResponse converts a daily spending output to its DTO.
func ToDailySpendingResponse(output *analytics.GetDailySpendingOutput) DailySpendingResponse {
	days := make(map[int]string, len(output.Days))
	for day, amount := range output.Days {
		days[day] = amount.String()
	}
	return DailySpendingResponse{
		Year:  output.Year,
		Month: int(output.Month),
		Days:  days,
	}
}

package dto

import (
	"time"

	"github.com/smartspend/backend/internal/application/usecase/transaction"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Type          string  `json:"type" binding:"required,oneof=expense income"`
	Amount        float64 `json:"amount" binding:"required"`
	Category      string  `json:"category" binding:"required"`
	Date          string  `json:"date" binding:"required"`
	Notes         string  `json:"notes,omitempty" binding:"omitempty,max=1000"`
	PaymentMethod string  `json:"payment_method" binding:"required,oneof=cash upi card bank"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Type          *string  `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
	Amount        *float64 `json:"amount,omitempty"`
	Category      *string  `json:"category,omitempty"`
	Date          *string  `json:"date,omitempty"`
	Notes         *string  `json:"notes,omitempty" binding:"omitempty,max=1000"`
	PaymentMethod *string  `json:"payment_method,omitempty" binding:"omitempty,oneof=cash upi card bank"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	Amount        string    `json:"amount"`
	Category      string    `json:"category"`
	CategoryLabel string    `json:"category_label"`
	Date          string    `json:"date"`
	Notes         string    `json:"notes"`
	PaymentMethod string    `json:"payment_method"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BudgetEvaluationResponse reports the budget check triggered by an expense.
type BudgetEvaluationResponse struct {
	State        string `json:"state"`
	Spent        string `json:"spent"`
	Limit        string `json:"limit"`
	PercentUsed  string `json:"percent_used"`
	AlertEmitted bool   `json:"alert_emitted"`
}

// CreateTransactionResponse represents the response for transaction creation.
type CreateTransactionResponse struct {
	Transaction TransactionResponse       `json:"transaction"`
	Budget      *BudgetEvaluationResponse `json:"budget,omitempty"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions  []TransactionResponse `json:"transactions"`
	TotalIncome   string                `json:"total_income"`
	TotalExpenses string                `json:"total_expenses"`
	Balance       string                `json:"balance"`
}

// ToTransactionResponse converts a use case output to a TransactionResponse DTO.
func ToTransactionResponse(t *transaction.TransactionOutput) TransactionResponse {
	return TransactionResponse{
		ID:            t.ID.String(),
		Type:          string(t.Type),
		Amount:        t.Amount.String(),
		Category:      string(t.Category),
		CategoryLabel: t.CategoryLabel,
		Date:          t.Date.Format("2006-01-02"),
		Notes:         t.Notes,
		PaymentMethod: string(t.PaymentMethod),
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

// ToTransactionListResponse converts a list output to a TransactionListResponse DTO.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	transactions := make([]TransactionResponse, len(output.Transactions))
	for i, t := range output.Transactions {
		transactions[i] = ToTransactionResponse(t)
	}
	return TransactionListResponse{
		Transactions:  transactions,
		TotalIncome:   output.TotalIncome.String(),
		TotalExpenses: output.TotalExpenses.String(),
		Balance:       output.Balance.String(),
	}
}

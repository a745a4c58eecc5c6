// Package transaction contains ledger use cases.
package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/domain/entity"
)

// TransactionOutput represents a transaction returned by ledger use cases.
type TransactionOutput struct {
	ID            uuid.UUID
	Type          entity.TransactionType
	Amount        decimal.Decimal
	Category      entity.Category
	CategoryLabel string
	Date          time.Time
	Notes         string
	PaymentMethod entity.PaymentMethod
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// toTransactionOutput converts a domain entity to a use case output.
func toTransactionOutput(t *entity.Transaction) *TransactionOutput {
	return &TransactionOutput{
		ID:            t.ID,
		Type:          t.Type,
		Amount:        t.Amount,
		Category:      t.Category,
		CategoryLabel: t.Category.Label(),
		Date:          t.Date,
		Notes:         t.Notes,
		PaymentMethod: t.PaymentMethod,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

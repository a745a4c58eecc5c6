// Package transaction contains ledger use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/domain/entity"
	domainerror "github.com/smartspend/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for a partial transaction update.
// Nil fields are left unchanged.
type UpdateTransactionInput struct {
	ID            uuid.UUID
	Type          *entity.TransactionType
	Amount        *decimal.Decimal
	Category      *entity.Category
	Date          *time.Time
	Notes         *string
	PaymentMethod *entity.PaymentMethod
}

// UpdateTransactionOutput represents the output of a transaction update.
type UpdateTransactionOutput struct {
	Transaction *TransactionOutput
}

// UpdateTransactionUseCase merges partial changes into an existing transaction.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(transactionRepo adapter.TransactionRepository) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	txn, err := uc.transactionRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load transaction: %w", err)
	}

	if input.Type != nil {
		txn.Type = *input.Type
	}
	if input.Amount != nil {
		txn.Amount = *input.Amount
	}
	if input.Category != nil {
		txn.Category = *input.Category
	}
	if input.Date != nil {
		txn.Date = *input.Date
	}
	if input.Notes != nil {
		txn.Notes = *input.Notes
	}
	if input.PaymentMethod != nil {
		txn.PaymentMethod = *input.PaymentMethod
	}

	// The merged record must satisfy the same invariants as a new one.
	if err := validateInput(CreateTransactionInput{
		Type:          txn.Type,
		Amount:        txn.Amount,
		Category:      txn.Category,
		Date:          txn.Date,
		Notes:         txn.Notes,
		PaymentMethod: txn.PaymentMethod,
	}); err != nil {
		return nil, err
	}

	txn.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{Transaction: toTransactionOutput(txn)}, nil
}

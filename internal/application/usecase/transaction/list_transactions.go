// Package transaction contains ledger use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/application/usecase/analytics"
	"github.com/smartspend/backend/internal/domain/entity"
)

// ListTransactionsInput represents the input for listing transactions.
// When Year is zero the full ledger is returned.
type ListTransactionsInput struct {
	Year  int
	Month time.Month
}

// ListTransactionsOutput represents the listed transactions with totals.
type ListTransactionsOutput struct {
	Transactions  []*TransactionOutput
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	Balance       decimal.Decimal
}

// ListTransactionsUseCase lists the ledger newest-first, optionally scoped
// to one calendar month by transaction date.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute lists the transactions for the requested period.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	raw, err := uc.fetch(ctx, input)
	if err != nil {
		return nil, err
	}

	outputs := make([]*TransactionOutput, len(raw))
	for i, t := range raw {
		outputs[i] = toTransactionOutput(t)
	}

	income := analytics.TotalIncome(raw)
	expenses := analytics.TotalExpenses(raw)

	return &ListTransactionsOutput{
		Transactions:  outputs,
		TotalIncome:   income,
		TotalExpenses: expenses,
		Balance:       income.Sub(expenses),
	}, nil
}

func (uc *ListTransactionsUseCase) fetch(ctx context.Context, input ListTransactionsInput) ([]*entity.Transaction, error) {
	if input.Year == 0 {
		transactions, err := uc.transactionRepo.FindAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list transactions: %w", err)
		}
		return transactions, nil
	}

	transactions, err := uc.transactionRepo.FindByMonth(ctx, input.Year, input.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for %d-%02d: %w", input.Year, input.Month, err)
	}
	return transactions, nil
}

// Package analytics contains the aggregation engine use cases.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/domain/entity"
)

// GetSummaryInput represents the input for the monthly summary. When Year is
// zero the summary covers the full ledger instead of a single month.
type GetSummaryInput struct {
	Year  int
	Month time.Month
}

// GetSummaryOutput represents the aggregated totals for the requested period.
type GetSummaryOutput struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	Balance       decimal.Decimal
}

// GetSummaryUseCase derives income/expense totals from the ledger.
// Aggregates are recomputed on every call; nothing is cached.
type GetSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(transactionRepo adapter.TransactionRepository) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute computes the summary for the requested period.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	transactions, err := fetchPeriod(ctx, uc.transactionRepo, input.Year, input.Month)
	if err != nil {
		return nil, err
	}

	income := TotalIncome(transactions)
	expenses := TotalExpenses(transactions)

	return &GetSummaryOutput{
		TotalIncome:   income,
		TotalExpenses: expenses,
		Balance:       income.Sub(expenses),
	}, nil
}

// fetchPeriod loads either the full ledger or one calendar month of it.
func fetchPeriod(
	ctx context.Context,
	repo adapter.TransactionRepository,
	year int,
	month time.Month,
) ([]*entity.Transaction, error) {
	if year == 0 {
		transactions, err := repo.FindAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load ledger: %w", err)
		}
		return transactions, nil
	}

	transactions, err := repo.FindByMonth(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger for %d-%02d: %w", year, month, err)
	}
	return transactions, nil
}

// Package analytics contains the aggregation engine use cases.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/application/adapter"
	domainerror "github.com/smartspend/backend/internal/domain/error"
)

// GetDailySpendingInput represents the input for the daily spending series.
// Unlike the other aggregates, the daily series is always month-scoped.
type GetDailySpendingInput struct {
	Year  int
	Month time.Month
}

// GetDailySpendingOutput maps day-of-month to the summed expense amount.
type GetDailySpendingOutput struct {
	Year  int
	Month time.Month
	Days  map[int]decimal.Decimal
}

// GetDailySpendingUseCase derives the per-day expense series for one month.
type GetDailySpendingUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetDailySpendingUseCase creates a new GetDailySpendingUseCase instance.
func NewGetDailySpendingUseCase(transactionRepo adapter.TransactionRepository) *GetDailySpendingUseCase {
	return &GetDailySpendingUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute computes the daily series for the requested month.
func (uc *GetDailySpendingUseCase) Execute(
	ctx context.Context,
	input GetDailySpendingInput,
) (*GetDailySpendingOutput, error) {
	if input.Year == 0 || input.Month < time.January || input.Month > time.December {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"a valid year and month are required",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	transactions, err := uc.transactionRepo.FindByMonth(ctx, input.Year, input.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger for %d-%02d: %w", input.Year, input.Month, err)
	}

	return &GetDailySpendingOutput{
		Year:  input.Year,
		Month: input.Month,
		Days:  DailySpending(transactions),
	}, nil
}

// Package transaction contains ledger use cases.
package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/application/usecase/budget"
	"github.com/smartspend/backend/internal/domain/entity"
	domainerror "github.com/smartspend/backend/internal/domain/error"
)

// MaxNotesLength is the maximum allowed length for transaction notes.
const MaxNotesLength = 1000

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	Type          entity.TransactionType
	Amount        decimal.Decimal
	Category      entity.Category
	Date          time.Time
	Notes         string
	PaymentMethod entity.PaymentMethod
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *TransactionOutput
	Budget      *budget.EvaluateBudgetOutput // Nil for income transactions
}

// CreateTransactionUseCase validates and persists a new transaction, emits
// its durable notification and, for expenses, triggers budget evaluation.
type CreateTransactionUseCase struct {
	transactionRepo  adapter.TransactionRepository
	notificationRepo adapter.NotificationRepository
	settingsRepo     adapter.SettingsRepository
	evaluateBudget   *budget.EvaluateBudgetUseCase
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	notificationRepo adapter.NotificationRepository,
	settingsRepo adapter.SettingsRepository,
	evaluateBudget *budget.EvaluateBudgetUseCase,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo:  transactionRepo,
		notificationRepo: notificationRepo,
		settingsRepo:     settingsRepo,
		evaluateBudget:   evaluateBudget,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	txn := entity.NewTransaction(
		input.Type,
		input.Amount,
		input.Category,
		input.Date,
		input.Notes,
		input.PaymentMethod,
	)

	if err := uc.transactionRepo.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	// The transaction notification fires for every successful addition,
	// independent of budget evaluation. A failure here must not roll back
	// the already-persisted transaction.
	if err := uc.recordNotification(ctx, txn); err != nil {
		slog.Warn("Failed to record transaction notification",
			"transaction_id", txn.ID,
			"error", err,
		)
	}

	output := &CreateTransactionOutput{Transaction: toTransactionOutput(txn)}

	if txn.Type == entity.TransactionTypeExpense {
		// Spending is always evaluated against the current calendar month,
		// even when the transaction itself is back-dated.
		evaluation, err := uc.evaluateBudget.Execute(ctx, budget.EvaluateBudgetInput{
			Category: txn.Category,
		})
		if err != nil {
			slog.Warn("Budget evaluation failed after expense addition",
				"transaction_id", txn.ID,
				"category", txn.Category,
				"error", err,
			)
		} else if evaluation.Evaluated {
			output.Budget = evaluation
		}
	}

	return output, nil
}

// recordNotification appends the durable transaction notification.
func (uc *CreateTransactionUseCase) recordNotification(ctx context.Context, txn *entity.Transaction) error {
	currency := entity.DefaultCurrency
	if settings, err := uc.settingsRepo.Get(ctx); err == nil {
		currency = settings.Currency
	}

	var title, verb string
	if txn.Type == entity.TransactionTypeIncome {
		title = "Income Added"
		verb = "Received"
	} else {
		title = "Expense Added"
		verb = "Spent"
	}

	label := txn.Category.Label()
	message := fmt.Sprintf("%s %s%s for %s", verb, currency, txn.Amount.StringFixed(2), label)
	if txn.Notes != "" {
		message += " - " + txn.Notes
	}

	notification := entity.NewNotification(
		entity.NotificationTypeTransaction,
		title,
		message,
		&entity.NotificationPayload{
			Transaction: &entity.TransactionPayload{
				TransactionType: txn.Type,
				Amount:          txn.Amount,
				Category:        txn.Category,
				CategoryLabel:   label,
				Notes:           txn.Notes,
				Currency:        currency,
			},
		},
	)
	return uc.notificationRepo.Create(ctx, notification)
}

// validateInput rejects invalid transactions before any mutation.
func validateInput(input CreateTransactionInput) error {
	if input.Type != entity.TransactionTypeExpense && input.Type != entity.TransactionTypeIncome {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be greater than 0",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if !entity.IsValidCategoryForType(input.Category, input.Type) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidCategoryForType,
			fmt.Sprintf("category %q is not valid for %s transactions", input.Category, input.Type),
			domainerror.ErrInvalidCategoryForType,
		)
	}

	if input.Date.IsZero() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"transaction date is required",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	if !entity.IsValidPaymentMethod(input.PaymentMethod) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidPaymentMethod,
			"payment method must be 'cash', 'upi', 'card' or 'bank'",
			domainerror.ErrInvalidPaymentMethod,
		)
	}

	if len(input.Notes) > MaxNotesLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionFields,
			fmt.Sprintf("notes must not exceed %d characters", MaxNotesLength),
			nil,
		)
	}

	return nil
}

// Package data contains data-lifecycle use cases: demo seeding, clear-all
// and the plain-text export.
package data

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/domain/entity"
)

// demoTransaction describes one row of the fixed demo dataset. Day is the
// day-of-month within the seeding month.
type demoTransaction struct {
	txnType entity.TransactionType
	amount  int64
	category entity.Category
	day     int
	notes   string
	method  entity.PaymentMethod
}

// demoDataset is the fixed 13-row sample ledger seeded on first run.
var demoDataset = []demoTransaction{
	{entity.TransactionTypeIncome, 4500, entity.CategorySalary, 1, "Monthly salary", entity.PaymentMethodBank},
	{entity.TransactionTypeIncome, 850, entity.CategoryFreelance, 5, "Web design project", entity.PaymentMethodBank},
	{entity.TransactionTypeExpense, 1200, entity.CategoryRent, 1, "Monthly rent", entity.PaymentMethodBank},
	{entity.TransactionTypeExpense, 85, entity.CategoryFood, 3, "Groceries", entity.PaymentMethodCard},
	{entity.TransactionTypeExpense, 45, entity.CategoryTransport, 4, "Gas", entity.PaymentMethodCard},
	{entity.TransactionTypeExpense, 120, entity.CategoryShopping, 6, "New clothes", entity.PaymentMethodCard},
	{entity.TransactionTypeExpense, 15, entity.CategoryEntertainment, 7, "Netflix subscription", entity.PaymentMethodCard},
	{entity.TransactionTypeExpense, 65, entity.CategoryFood, 8, "Restaurant dinner", entity.PaymentMethodCard},
	{entity.TransactionTypeExpense, 180, entity.CategoryBills, 10, "Electric & internet", entity.PaymentMethodBank},
	{entity.TransactionTypeExpense, 35, entity.CategoryHealth, 12, "Pharmacy", entity.PaymentMethodCash},
	{entity.TransactionTypeExpense, 250, entity.CategoryInvestment, 15, "Stock purchase", entity.PaymentMethodBank},
	{entity.TransactionTypeExpense, 55, entity.CategoryFood, 18, "Groceries", entity.PaymentMethodCard},
	{entity.TransactionTypeExpense, 30, entity.CategoryTransport, 20, "Uber rides", entity.PaymentMethodUPI},
}

// SeedDemoDataInput represents the input for demo seeding.
// Now anchors the seeding month; the zero value means time.Now.
type SeedDemoDataInput struct {
	Now time.Time
}

// SeedDemoDataOutput reports whether seeding happened.
type SeedDemoDataOutput struct {
	Seeded bool
	Count  int
}

// SeedDemoDataUseCase populates an empty ledger with the demo dataset on
// first run. Seeding is suppressed once the user has explicitly cleared
// their data.
type SeedDemoDataUseCase struct {
	transactionRepo adapter.TransactionRepository
	settingsRepo    adapter.SettingsRepository
}

// NewSeedDemoDataUseCase creates a new SeedDemoDataUseCase instance.
func NewSeedDemoDataUseCase(
	transactionRepo adapter.TransactionRepository,
	settingsRepo adapter.SettingsRepository,
) *SeedDemoDataUseCase {
	return &SeedDemoDataUseCase{
		transactionRepo: transactionRepo,
		settingsRepo:    settingsRepo,
	}
}

// Execute seeds the demo dataset when the preconditions hold.
func (uc *SeedDemoDataUseCase) Execute(ctx context.Context, input SeedDemoDataInput) (*SeedDemoDataOutput, error) {
	count, err := uc.transactionRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count transactions: %w", err)
	}
	if count > 0 {
		return &SeedDemoDataOutput{Seeded: false}, nil
	}

	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if settings.DataCleared {
		slog.Debug("Demo seeding suppressed: data was explicitly cleared")
		return &SeedDemoDataOutput{Seeded: false}, nil
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	for _, row := range demoDataset {
		date := time.Date(now.Year(), now.Month(), row.day, 0, 0, 0, 0, time.UTC)
		txn := &entity.Transaction{
			ID:            uuid.New(),
			Type:          row.txnType,
			Amount:        decimal.NewFromInt(row.amount),
			Category:      row.category,
			Date:          date,
			Notes:         row.notes,
			PaymentMethod: row.method,
			CreatedAt:     date,
			UpdatedAt:     date,
		}
		if err := uc.transactionRepo.Create(ctx, txn); err != nil {
			return nil, fmt.Errorf("failed to seed demo transaction: %w", err)
		}
	}

	slog.Info("Seeded demo transactions", "count", len(demoDataset))
	return &SeedDemoDataOutput{Seeded: true, Count: len(demoDataset)}, nil
}

package data

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/domain/entity"
)

const exportRule = "==============================================="
const exportSubRule = "-----------------------------------------------"

// ExportDataInput represents the input for the data export.
// Now sets the export timestamp; the zero value means time.Now.
type ExportDataInput struct {
	Now time.Time
}

// ExportDataOutput carries the rendered report and its suggested filename.
type ExportDataOutput struct {
	Filename string
	Content  string
}

// ExportDataUseCase renders the whole ledger as a plain-text report.
type ExportDataUseCase struct {
	transactionRepo adapter.TransactionRepository
	settingsRepo    adapter.SettingsRepository
}

// NewExportDataUseCase creates a new ExportDataUseCase instance.
func NewExportDataUseCase(
	transactionRepo adapter.TransactionRepository,
	settingsRepo adapter.SettingsRepository,
) *ExportDataUseCase {
	return &ExportDataUseCase{
		transactionRepo: transactionRepo,
		settingsRepo:    settingsRepo,
	}
}

// Execute builds the export report from all stored transactions.
func (uc *ExportDataUseCase) Execute(ctx context.Context, input ExportDataInput) (*ExportDataOutput, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	currency := settings.Currency

	totalExpense := decimal.Zero
	totalInvestment := decimal.Zero
	for _, txn := range transactions {
		if txn.Type == entity.TransactionTypeExpense {
			totalExpense = totalExpense.Add(txn.Amount)
		}
		if txn.Category == entity.CategoryInvestment {
			totalInvestment = totalInvestment.Add(txn.Amount)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "SMARTSPEND DATA EXPORT\n")
	fmt.Fprintf(&b, "Exported: %s\n", now.Format(time.RFC3339))
	fmt.Fprintf(&b, "%s\n\n", exportRule)

	fmt.Fprintf(&b, "SUMMARY\n")
	fmt.Fprintf(&b, "%s\n", exportSubRule)
	fmt.Fprintf(&b, "Total Transactions: %d\n", len(transactions))
	fmt.Fprintf(&b, "Total Expense: %s%s\n", currency, totalExpense.StringFixed(2))
	fmt.Fprintf(&b, "Total Investment: %s%s\n\n", currency, totalInvestment.StringFixed(2))

	fmt.Fprintf(&b, "TRANSACTIONS (%d total)\n", len(transactions))
	fmt.Fprintf(&b, "%s\n", exportSubRule)

	if len(transactions) == 0 {
		fmt.Fprintf(&b, "No transactions recorded.\n")
	} else {
		for i, txn := range transactions {
			fmt.Fprintf(&b, "\n%d. %s\n", i+1, txn.Label())
			fmt.Fprintf(&b, "   Amount: %s%s\n", currency, txn.Amount.String())
			fmt.Fprintf(&b, "   Category: %s\n", txn.Category)
			fmt.Fprintf(&b, "   Date: %s\n", txn.Date.Format("2006-01-02"))
			fmt.Fprintf(&b, "   Type: %s\n", txn.Type)
			fmt.Fprintf(&b, "   Payment Method: %s\n", txn.PaymentMethod)
		}
	}

	return &ExportDataOutput{
		Filename: fmt.Sprintf("smartspend-export-%s.txt", now.Format("2006-01-02")),
		Content:  b.String(),
	}, nil
}

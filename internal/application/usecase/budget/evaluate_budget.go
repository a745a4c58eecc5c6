// Package budget contains budget-goal use cases.
package budget

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/application/usecase/alert"
	"github.com/smartspend/backend/internal/application/usecase/analytics"
	"github.com/smartspend/backend/internal/domain/entity"
)

const (
	warningAlertDuration  = 5 * time.Second
	exceededAlertDuration = 6 * time.Second
)

// EvaluateBudgetInput represents the input for a budget evaluation.
// Now anchors the current calendar month; the zero value means time.Now.
type EvaluateBudgetInput struct {
	Category entity.Category
	Now      time.Time
}

// EvaluateBudgetOutput represents the result of a budget evaluation.
// Evaluated is false when no budget is configured for the category.
type EvaluateBudgetOutput struct {
	Evaluated    bool
	State        entity.BudgetState
	Spent        decimal.Decimal
	Limit        decimal.Decimal
	PercentUsed  decimal.Decimal
	AlertEmitted bool
}

// EvaluateBudgetUseCase recomputes current-month spending for one category
// and emits an alert plus notification when the newly computed state is
// warning or exceeded. The check fires on every qualifying addition; repeated
// additions above threshold produce repeated alerts.
type EvaluateBudgetUseCase struct {
	budgetRepo      adapter.BudgetRepository
	transactionRepo adapter.TransactionRepository
	settingsRepo    adapter.SettingsRepository
	showAlert       *alert.ShowAlertUseCase
}

// NewEvaluateBudgetUseCase creates a new EvaluateBudgetUseCase instance.
func NewEvaluateBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	transactionRepo adapter.TransactionRepository,
	settingsRepo adapter.SettingsRepository,
	showAlert *alert.ShowAlertUseCase,
) *EvaluateBudgetUseCase {
	return &EvaluateBudgetUseCase{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
		settingsRepo:    settingsRepo,
		showAlert:       showAlert,
	}
}

// Execute evaluates the budget for the category.
func (uc *EvaluateBudgetUseCase) Execute(ctx context.Context, input EvaluateBudgetInput) (*EvaluateBudgetOutput, error) {
	goal, err := uc.budgetRepo.FindByCategory(ctx, input.Category)
	if err != nil {
		return nil, fmt.Errorf("failed to load budget for %s: %w", input.Category, err)
	}
	if goal == nil {
		// No budget configured means no evaluation.
		return &EvaluateBudgetOutput{Evaluated: false}, nil
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	transactions, err := uc.transactionRepo.FindByMonth(ctx, now.Year(), now.Month())
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger for budget evaluation: %w", err)
	}

	spent := analytics.CategorySpending(transactions, input.Category)
	state := entity.StateFor(spent, goal.Limit)
	percentUsed := spent.Mul(decimal.NewFromInt(100)).Div(goal.Limit)

	output := &EvaluateBudgetOutput{
		Evaluated:   true,
		State:       state,
		Spent:       spent,
		Limit:       goal.Limit,
		PercentUsed: percentUsed,
	}

	// Refresh the cached spent value. The cache is never read back as
	// authoritative, so a failed refresh only gets a log line.
	goal.Spent = spent
	goal.UpdatedAt = now
	if err := uc.budgetRepo.Save(ctx, goal); err != nil {
		slog.Warn("Failed to refresh cached budget spending",
			"category", input.Category,
			"error", err,
		)
	}

	if state == entity.BudgetStateOK {
		return output, nil
	}

	currency := entity.DefaultCurrency
	if settings, err := uc.settingsRepo.Get(ctx); err == nil {
		currency = settings.Currency
	}

	title, message, level, duration := uc.composeAlert(goal, spent, percentUsed, currency)
	if _, err := uc.showAlert.Execute(ctx, alert.ShowAlertInput{
		Title:    title,
		Message:  message,
		Level:    level,
		Duration: duration,
	}); err != nil {
		return nil, fmt.Errorf("failed to emit budget alert: %w", err)
	}
	output.AlertEmitted = true

	return output, nil
}

// composeAlert picks the alert wording. Spending strictly over the limit gets
// the exceeded wording; everything else past the warning threshold (including
// spending exactly at the limit) gets the percent-used wording.
func (uc *EvaluateBudgetUseCase) composeAlert(
	goal *entity.BudgetGoal,
	spent decimal.Decimal,
	percentUsed decimal.Decimal,
	currency string,
) (title, message string, level entity.AlertLevel, duration time.Duration) {
	label := goal.Category.Label()

	if spent.GreaterThan(goal.Limit) {
		title = "⚠️ Budget Exceeded"
		message = fmt.Sprintf(
			"You have exceeded your %s budget! Spent: %s%s / Limit: %s%s",
			label,
			currency, spent.StringFixed(2),
			currency, goal.Limit.StringFixed(2),
		)
		return title, message, entity.AlertLevelError, exceededAlertDuration
	}

	title = "⚠️ Budget Warning"
	message = fmt.Sprintf(
		"You've used %s%% of your %s budget (%s%s / %s%s)",
		percentUsed.Round(0).String(),
		label,
		currency, spent.StringFixed(2),
		currency, goal.Limit.StringFixed(2),
	)
	return title, message, entity.AlertLevelWarning, warningAlertDuration
}

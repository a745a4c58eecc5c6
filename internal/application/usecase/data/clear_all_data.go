package data

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/smartspend/backend/internal/application/adapter"
)

// ClearAllDataUseCase wipes transactions, budgets, notifications and the
// profile, then sets the data-cleared flag so demo seeding never runs
// again. Currency and theme preferences survive the wipe.
type ClearAllDataUseCase struct {
	transactionRepo  adapter.TransactionRepository
	budgetRepo       adapter.BudgetRepository
	notificationRepo adapter.NotificationRepository
	profileRepo      adapter.ProfileRepository
	settingsRepo     adapter.SettingsRepository
}

// NewClearAllDataUseCase creates a new ClearAllDataUseCase instance.
func NewClearAllDataUseCase(
	transactionRepo adapter.TransactionRepository,
	budgetRepo adapter.BudgetRepository,
	notificationRepo adapter.NotificationRepository,
	profileRepo adapter.ProfileRepository,
	settingsRepo adapter.SettingsRepository,
) *ClearAllDataUseCase {
	return &ClearAllDataUseCase{
		transactionRepo:  transactionRepo,
		budgetRepo:       budgetRepo,
		notificationRepo: notificationRepo,
		profileRepo:      profileRepo,
		settingsRepo:     settingsRepo,
	}
}

// Execute deletes all user data and marks the store as cleared.
func (uc *ClearAllDataUseCase) Execute(ctx context.Context) error {
	if err := uc.transactionRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to clear transactions: %w", err)
	}
	if err := uc.budgetRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to clear budgets: %w", err)
	}
	if err := uc.notificationRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to clear notifications: %w", err)
	}
	if err := uc.profileRepo.Delete(ctx); err != nil {
		return fmt.Errorf("failed to clear profile: %w", err)
	}

	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	settings.DataCleared = true
	if err := uc.settingsRepo.Save(ctx, settings); err != nil {
		return fmt.Errorf("failed to persist data-cleared flag: %w", err)
	}

	slog.Info("All user data cleared")
	return nil
}

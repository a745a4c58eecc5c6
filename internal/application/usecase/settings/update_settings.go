// Package settings contains per-installation preference use cases.
package settings

import (
	"context"
	"fmt"

	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/domain/entity"
	domainerror "github.com/smartspend/backend/internal/domain/error"
)

// UpdateSettingsInput represents the input for updating preferences.
// Nil fields are left unchanged. The data-cleared marker is not settable
// here; only the clear-all operation mutates it.
type UpdateSettingsInput struct {
	Currency *string
	Theme    *entity.Theme
}

// UpdateSettingsOutput represents the updated settings.
type UpdateSettingsOutput struct {
	Settings *entity.Settings
}

// UpdateSettingsUseCase updates the currency symbol and theme preference.
type UpdateSettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewUpdateSettingsUseCase creates a new UpdateSettingsUseCase instance.
func NewUpdateSettingsUseCase(settingsRepo adapter.SettingsRepository) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{
		settingsRepo: settingsRepo,
	}
}

// Execute updates the settings.
func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, input UpdateSettingsInput) (*UpdateSettingsOutput, error) {
	if input.Currency != nil && !entity.IsValidCurrency(*input.Currency) {
		return nil, domainerror.NewProfileError(
			domainerror.ErrCodeInvalidCurrency,
			"currency must be one of ₹, $, € or £",
			domainerror.ErrInvalidCurrency,
		)
	}

	if input.Theme != nil && !entity.IsValidTheme(*input.Theme) {
		return nil, domainerror.NewProfileError(
			domainerror.ErrCodeInvalidTheme,
			"theme must be 'light', 'dark' or 'system'",
			domainerror.ErrInvalidTheme,
		)
	}

	current, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	if input.Currency != nil {
		current.Currency = *input.Currency
	}
	if input.Theme != nil {
		current.Theme = *input.Theme
	}

	if err := uc.settingsRepo.Save(ctx, current); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	return &UpdateSettingsOutput{Settings: current}, nil
}

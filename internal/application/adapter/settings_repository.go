// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/smartspend/backend/internal/domain/entity"
)

// SettingsRepository defines the interface for per-installation settings,
// including the explicit-clear marker that suppresses demo reseeding.
type SettingsRepository interface {
	// Get retrieves the settings, falling back to defaults when unset.
	Get(ctx context.Context) (*entity.Settings, error)

	// Save persists the settings.
	Save(ctx context.Context, settings *entity.Settings) error
}

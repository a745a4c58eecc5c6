package persistence

import (
	"context"
	"testing"

	"github.com/smartspend/backend/internal/domain/entity"
)

func TestSettingsRepository_GetDefaults(t *testing.T) {
	repo := NewSettingsRepository(newTestDB(t))

	settings, err := repo.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.Currency != entity.DefaultCurrency {
		t.Errorf("expected default currency, got %q", settings.Currency)
	}
	if settings.Theme != entity.ThemeSystem {
		t.Errorf("expected system theme, got %q", settings.Theme)
	}
	if settings.DataCleared {
		t.Error("expected data-cleared flag unset by default")
	}
}

func TestSettingsRepository_SaveIsSingleton(t *testing.T) {
	repo := NewSettingsRepository(newTestDB(t))
	ctx := context.Background()

	settings, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	settings.Currency = "€"
	settings.Theme = entity.ThemeDark
	if err := repo.Save(ctx, settings); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	settings.DataCleared = true
	if err := repo.Save(ctx, settings); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Currency != "€" || stored.Theme != entity.ThemeDark || !stored.DataCleared {
		t.Errorf("unexpected settings: %+v", stored)
	}
}

// Package alert contains transient-alert use cases.
package alert

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/smartspend/backend/internal/application/adapter"
)

// DismissAlertInput represents the input for dismissing an alert.
type DismissAlertInput struct {
	ID uuid.UUID
}

// DismissAlertUseCase removes an alert from the registry before its expiry.
// Dismissing an alert that has already expired or been removed is a no-op.
type DismissAlertUseCase struct {
	registry adapter.AlertRegistry
}

// NewDismissAlertUseCase creates a new DismissAlertUseCase instance.
func NewDismissAlertUseCase(registry adapter.AlertRegistry) *DismissAlertUseCase {
	return &DismissAlertUseCase{
		registry: registry,
	}
}

// Execute dismisses the alert.
func (uc *DismissAlertUseCase) Execute(ctx context.Context, input DismissAlertInput) error {
	if err := uc.registry.Dismiss(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to dismiss alert: %w", err)
	}
	return nil
}

// Package alert contains transient-alert use cases.
package alert

import (
	"context"
	"fmt"

	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/domain/entity"
)

// ListAlertsOutput represents the currently active alerts.
type ListAlertsOutput struct {
	Alerts []*entity.Alert
}

// ListAlertsUseCase lists the alerts that have not yet expired.
type ListAlertsUseCase struct {
	registry adapter.AlertRegistry
}

// NewListAlertsUseCase creates a new ListAlertsUseCase instance.
func NewListAlertsUseCase(registry adapter.AlertRegistry) *ListAlertsUseCase {
	return &ListAlertsUseCase{
		registry: registry,
	}
}

// Execute lists the active alerts.
func (uc *ListAlertsUseCase) Execute(ctx context.Context) (*ListAlertsOutput, error) {
	alerts, err := uc.registry.Active(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active alerts: %w", err)
	}
	return &ListAlertsOutput{Alerts: alerts}, nil
}

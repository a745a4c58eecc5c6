// Package alert contains transient-alert use cases.
package alert

import (
	"context"
	"fmt"
	"time"

	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/domain/entity"
	domainerror "github.com/smartspend/backend/internal/domain/error"
)

// ShowAlertInput represents the input for showing an alert.
type ShowAlertInput struct {
	Title    string
	Message  string
	Level    entity.AlertLevel
	Duration time.Duration // Zero means the default of 5 seconds
}

// ShowAlertOutput represents the output of showing an alert.
type ShowAlertOutput struct {
	Alert *entity.Alert
}

// ShowAlertUseCase places an alert in the transient registry and records a
// matching durable notification of type alert.
type ShowAlertUseCase struct {
	registry         adapter.AlertRegistry
	notificationRepo adapter.NotificationRepository
}

// NewShowAlertUseCase creates a new ShowAlertUseCase instance.
func NewShowAlertUseCase(
	registry adapter.AlertRegistry,
	notificationRepo adapter.NotificationRepository,
) *ShowAlertUseCase {
	return &ShowAlertUseCase{
		registry:         registry,
		notificationRepo: notificationRepo,
	}
}

// Execute shows the alert and appends its notification record.
func (uc *ShowAlertUseCase) Execute(ctx context.Context, input ShowAlertInput) (*ShowAlertOutput, error) {
	if input.Level == "" {
		input.Level = entity.AlertLevelInfo
	}
	if !entity.IsValidAlertLevel(input.Level) {
		return nil, domainerror.NewNotificationError(
			domainerror.ErrCodeInvalidAlertLevel,
			"alert level must be 'info', 'warning', 'error' or 'success'",
			domainerror.ErrInvalidAlertLevel,
		)
	}

	a := entity.NewAlert(input.Level, input.Title, input.Message, input.Duration)

	if err := uc.registry.Show(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to register alert: %w", err)
	}

	notification := entity.NewNotification(
		entity.NotificationTypeAlert,
		input.Title,
		input.Message,
		&entity.NotificationPayload{
			Alert: &entity.AlertPayload{Level: a.Level},
		},
	)
	if err := uc.notificationRepo.Create(ctx, notification); err != nil {
		return nil, fmt.Errorf("failed to record alert notification: %w", err)
	}

	return &ShowAlertOutput{Alert: a}, nil
}

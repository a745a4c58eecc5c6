// Package notification contains notification-store use cases.
package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/smartspend/backend/internal/application/adapter"
	domainerror "github.com/smartspend/backend/internal/domain/error"
)

// MarkReadInput represents the input for marking one notification read.
type MarkReadInput struct {
	ID uuid.UUID
}

// MarkReadUseCase sets the read flag on a single notification.
type MarkReadUseCase struct {
	notificationRepo adapter.NotificationRepository
}

// NewMarkReadUseCase creates a new MarkReadUseCase instance.
func NewMarkReadUseCase(notificationRepo adapter.NotificationRepository) *MarkReadUseCase {
	return &MarkReadUseCase{
		notificationRepo: notificationRepo,
	}
}

// Execute marks the notification as read.
func (uc *MarkReadUseCase) Execute(ctx context.Context, input MarkReadInput) error {
	if err := uc.notificationRepo.MarkRead(ctx, input.ID); err != nil {
		if errors.Is(err, domainerror.ErrNotificationNotFound) {
			return domainerror.NewNotificationError(
				domainerror.ErrCodeNotificationNotFound,
				"notification not found",
				domainerror.ErrNotificationNotFound,
			)
		}
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}

// MarkAllReadUseCase sets the read flag on every notification.
type MarkAllReadUseCase struct {
	notificationRepo adapter.NotificationRepository
}

// NewMarkAllReadUseCase creates a new MarkAllReadUseCase instance.
func NewMarkAllReadUseCase(notificationRepo adapter.NotificationRepository) *MarkAllReadUseCase {
	return &MarkAllReadUseCase{
		notificationRepo: notificationRepo,
	}
}

// Execute marks every notification as read.
func (uc *MarkAllReadUseCase) Execute(ctx context.Context) error {
	if err := uc.notificationRepo.MarkAllRead(ctx); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}

// Package notification contains notification-store use cases.
package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/smartspend/backend/internal/application/adapter"
)

// DeleteNotificationInput represents the input for deleting one notification.
type DeleteNotificationInput struct {
	ID uuid.UUID
}

// DeleteNotificationUseCase removes a single notification from the store.
type DeleteNotificationUseCase struct {
	notificationRepo adapter.NotificationRepository
}

// NewDeleteNotificationUseCase creates a new DeleteNotificationUseCase instance.
func NewDeleteNotificationUseCase(notificationRepo adapter.NotificationRepository) *DeleteNotificationUseCase {
	return &DeleteNotificationUseCase{
		notificationRepo: notificationRepo,
	}
}

// Execute deletes the notification. Missing IDs are a no-op.
func (uc *DeleteNotificationUseCase) Execute(ctx context.Context, input DeleteNotificationInput) error {
	if err := uc.notificationRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	return nil
}

// ClearNotificationsUseCase removes every notification from the store.
type ClearNotificationsUseCase struct {
	notificationRepo adapter.NotificationRepository
}

// NewClearNotificationsUseCase creates a new ClearNotificationsUseCase instance.
func NewClearNotificationsUseCase(notificationRepo adapter.NotificationRepository) *ClearNotificationsUseCase {
	return &ClearNotificationsUseCase{
		notificationRepo: notificationRepo,
	}
}

// Execute clears the notification store.
func (uc *ClearNotificationsUseCase) Execute(ctx context.Context) error {
	if err := uc.notificationRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to clear notifications: %w", err)
	}
	return nil
}

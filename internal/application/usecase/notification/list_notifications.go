// Package notification contains notification-store use cases.
package notification

import (
	"context"
	"fmt"

	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/domain/entity"
)

// ListNotificationsOutput represents all notifications, newest first, with
// the derived unread count.
type ListNotificationsOutput struct {
	Notifications []*entity.Notification
	UnreadCount   int64
}

// ListNotificationsUseCase lists the durable notification history.
type ListNotificationsUseCase struct {
	notificationRepo adapter.NotificationRepository
}

// NewListNotificationsUseCase creates a new ListNotificationsUseCase instance.
func NewListNotificationsUseCase(notificationRepo adapter.NotificationRepository) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{
		notificationRepo: notificationRepo,
	}
}

// Execute lists the notifications.
func (uc *ListNotificationsUseCase) Execute(ctx context.Context) (*ListNotificationsOutput, error) {
	notifications, err := uc.notificationRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	unread, err := uc.notificationRepo.UnreadCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return &ListNotificationsOutput{
		Notifications: notifications,
		UnreadCount:   unread,
	}, nil
}

// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/smartspend/backend/internal/domain/entity"
)

// NotificationRepository defines the interface for the durable notification store.
// The collection is append-only; only the Read flag is ever mutated.
type NotificationRepository interface {
	// Create persists a new notification.
	Create(ctx context.Context, notification *entity.Notification) error

	// FindAll retrieves all notifications, newest first.
	FindAll(ctx context.Context) ([]*entity.Notification, error)

	// MarkRead sets the read flag on one notification.
	MarkRead(ctx context.Context, id uuid.UUID) error

	// MarkAllRead sets the read flag on every notification.
	MarkAllRead(ctx context.Context) error

	// Delete removes a notification. Missing IDs are a no-op.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteAll removes every notification.
	DeleteAll(ctx context.Context) error

	// UnreadCount returns the number of notifications with read=false.
	UnreadCount(ctx context.Context) (int64, error)
}

package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/domain/entity"
	domainerror "github.com/smartspend/backend/internal/domain/error"
	"github.com/smartspend/backend/internal/integration/persistence/model"
)

// notificationRepository implements the adapter.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository instance.
func NewNotificationRepository(db *gorm.DB) adapter.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// Create persists a new notification.
func (r *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	notificationModel := model.NotificationFromEntity(notification)
	result := r.db.WithContext(ctx).Create(notificationModel)
	return result.Error
}

// FindAll retrieves all notifications, newest first.
func (r *notificationRepository) FindAll(ctx context.Context) ([]*entity.Notification, error) {
	var notificationModels []model.NotificationModel
	result := r.db.WithContext(ctx).
		Order("timestamp DESC, id DESC").
		Find(&notificationModels)
	if result.Error != nil {
		return nil, result.Error
	}

	notifications := make([]*entity.Notification, len(notificationModels))
	for i, nm := range notificationModels {
		notifications[i] = nm.ToEntity()
	}
	return notifications, nil
}

// MarkRead sets the read flag on one notification.
func (r *notificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ?", id).
		Update("read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrNotificationNotFound
	}
	return nil
}

// MarkAllRead sets the read flag on every notification.
func (r *notificationRepository) MarkAllRead(ctx context.Context) error {
	result := r.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("read = ?", false).
		Update("read", true)
	return result.Error
}

// Delete removes a notification. Missing IDs are a no-op.
func (r *notificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.NotificationModel{})
	return result.Error
}

// DeleteAll removes every notification.
func (r *notificationRepository) DeleteAll(ctx context.Context) error {
	result := r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&model.NotificationModel{})
	return result.Error
}

// UnreadCount returns the number of notifications with read=false.
func (r *notificationRepository) UnreadCount(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("read = ?", false).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

package model

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/smartspend/backend/internal/domain/entity"
)

// NotificationModel represents the notifications table in the database.
// Payload holds the type-specific data as a JSON document.
type NotificationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Type      string    `gorm:"type:varchar(16);not null;index"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Message   string    `gorm:"type:text;not null"`
	Timestamp time.Time `gorm:"not null;index"`
	Read      bool      `gorm:"not null;default:false"`
	Payload   string    `gorm:"type:text"`
}

// TableName returns the table name for the NotificationModel.
func (NotificationModel) TableName() string {
	return "notifications"
}

// ToEntity converts a NotificationModel to a domain Notification entity.
// A payload that fails to decode degrades to nil rather than failing the read.
func (m *NotificationModel) ToEntity() *entity.Notification {
	var payload *entity.NotificationPayload
	if m.Payload != "" {
		payload = &entity.NotificationPayload{}
		if err := json.Unmarshal([]byte(m.Payload), payload); err != nil {
			slog.Debug("Dropping undecodable notification payload", "id", m.ID, "error", err)
			payload = nil
		}
	}

	return &entity.Notification{
		ID:        m.ID,
		Type:      entity.NotificationType(m.Type),
		Title:     m.Title,
		Message:   m.Message,
		Timestamp: m.Timestamp,
		Read:      m.Read,
		Payload:   payload,
	}
}

// NotificationFromEntity converts a domain Notification entity to a NotificationModel.
func NotificationFromEntity(n *entity.Notification) *NotificationModel {
	var payload string
	if n.Payload != nil {
		raw, err := json.Marshal(n.Payload)
		if err != nil {
			slog.Debug("Dropping unencodable notification payload", "id", n.ID, "error", err)
		} else {
			payload = string(raw)
		}
	}

	return &NotificationModel{
		ID:        n.ID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		Timestamp: n.Timestamp,
		Read:      n.Read,
		Payload:   payload,
	}
}

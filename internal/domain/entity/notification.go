// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NotificationType represents the kind of event a notification records.
type NotificationType string

const (
	NotificationTypeTransaction NotificationType = "transaction"
	NotificationTypeAlert       NotificationType = "alert"
	NotificationTypeSMS         NotificationType = "sms"
)

// TransactionPayload carries the structured data of a transaction notification.
type TransactionPayload struct {
	TransactionType TransactionType `json:"transaction_type"`
	Amount          decimal.Decimal `json:"amount"`
	Category        Category        `json:"category"`
	CategoryLabel   string          `json:"category_label"`
	Notes           string          `json:"notes,omitempty"`
	Currency        string          `json:"currency"`
}

// AlertPayload carries the structured data of an alert notification.
type AlertPayload struct {
	Level AlertLevel `json:"level"`
}

// NotificationPayload is a tagged union keyed by the notification type.
// Exactly one variant is set; both are nil for sms notifications.
type NotificationPayload struct {
	Transaction *TransactionPayload `json:"transaction,omitempty"`
	Alert       *AlertPayload       `json:"alert,omitempty"`
}

// Notification is a durable record of a past event. The collection is
// append-only and newest-first; only the Read flag is ever mutated.
type Notification struct {
	ID        uuid.UUID
	Type      NotificationType
	Title     string
	Message   string
	Timestamp time.Time
	Read      bool
	Payload   *NotificationPayload
}

// NewNotification creates a new unread Notification entity.
func NewNotification(
	notificationType NotificationType,
	title string,
	message string,
	payload *NotificationPayload,
) *Notification {
	return &Notification{
		ID:        uuid.New(),
		Type:      notificationType,
		Title:     title,
		Message:   message,
		Timestamp: time.Now().UTC(),
		Read:      false,
		Payload:   payload,
	}
}

package dto

import (
	"time"

	"github.com/smartspend/backend/internal/application/usecase/notification"
	"github.com/smartspend/backend/internal/domain/entity"
)

// TransactionPayloadResponse represents the payload of a transaction notification.
type TransactionPayloadResponse struct {
	TransactionType string `json:"transaction_type"`
	Amount          string `json:"amount"`
	Category        string `json:"category"`
	CategoryLabel   string `json:"category_label"`
	Notes           string `json:"notes,omitempty"`
	Currency        string `json:"currency"`
}

// AlertPayloadResponse represents the payload of an alert notification.
type AlertPayloadResponse struct {
	Level string `json:"level"`
}

// NotificationResponse represents a single notification in API responses.
type NotificationResponse struct {
	ID          string                      `json:"id"`
	Type        string                      `json:"type"`
	Title       string                      `json:"title"`
	Message     string                      `json:"message"`
	Timestamp   time.Time                   `json:"timestamp"`
	Read        bool                        `json:"read"`
	Transaction *TransactionPayloadResponse `json:"transaction,omitempty"`
	Alert       *AlertPayloadResponse       `json:"alert,omitempty"`
}

// NotificationListResponse represents the response for listing notifications.
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int64                  `json:"unread_count"`
}

// ToNotificationResponse converts a domain Notification to its DTO.
func ToNotificationResponse(n *entity.Notification) NotificationResponse {
	response := NotificationResponse{
		ID:        n.ID.String(),
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		Timestamp: n.Timestamp,
		Read:      n.Read,
	}
	if n.Payload != nil {
		if n.Payload.Transaction != nil {
			response.Transaction = &TransactionPayloadResponse{
				TransactionType: string(n.Payload.Transaction.TransactionType),
				Amount:          n.Payload.Transaction.Amount.String(),
				Category:        string(n.Payload.Transaction.Category),
				CategoryLabel:   n.Payload.Transaction.CategoryLabel,
				Notes:           n.Payload.Transaction.Notes,
				Currency:        n.Payload.Transaction.Currency,
			}
		}
		if n.Payload.Alert != nil {
			response.Alert = &AlertPayloadResponse{
				Level: string(n.Payload.Alert.Level),
			}
		}
	}
	return response
}

// ToNotificationListResponse converts a list output to its DTO.
func ToNotificationListResponse(output *notification.ListNotificationsOutput) NotificationListResponse {
	notifications := make([]NotificationResponse, len(output.Notifications))
	for i, n := range output.Notifications {
		notifications[i] = ToNotificationResponse(n)
	}
	return NotificationListResponse{
		Notifications: notifications,
		UnreadCount:   output.UnreadCount,
	}
}

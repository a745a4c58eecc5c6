package dto

import (
	"time"

	"github.com/smartspend/backend/internal/domain/entity"
)

// ShowAlertRequest represents the request body for showing an alert.
// Duration is in milliseconds; zero falls back to the default.
type ShowAlertRequest struct {
	Title    string `json:"title" binding:"required,max=255"`
	Message  string `json:"message" binding:"required"`
	Level    string `json:"level,omitempty"`
	Duration int64  `json:"duration,omitempty" binding:"omitempty,min=0"`
}

// AlertResponse represents a single transient alert in API responses.
type AlertResponse struct {
	ID        string    `json:"id"`
	Level     string    `json:"level"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Duration  int64     `json:"duration"`
}

// AlertListResponse represents the response for listing active alerts.
type AlertListResponse struct {
	Alerts []AlertResponse `json:"alerts"`
}

// ToAlertResponse converts a domain Alert to an AlertResponse DTO.
func ToAlertResponse(a *entity.Alert) AlertResponse {
	return AlertResponse{
		ID:        a.ID.String(),
		Level:     string(a.Level),
		Title:     a.Title,
		Message:   a.Message,
		Timestamp: a.Timestamp,
		Duration:  a.Duration.Milliseconds(),
	}
}

// ToAlertListResponse converts a slice of alerts to an AlertListResponse DTO.
func ToAlertListResponse(alerts []*entity.Alert) AlertListResponse {
	responses := make([]AlertResponse, len(alerts))
	for i, a := range alerts {
		responses[i] = ToAlertResponse(a)
	}
	return AlertListResponse{Alerts: responses}
}

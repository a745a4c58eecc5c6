// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AlertLevel represents the severity of a transient alert.
type AlertLevel string

const (
	AlertLevelInfo    AlertLevel = "info"
	AlertLevelWarning AlertLevel = "warning"
	AlertLevelError   AlertLevel = "error"
	AlertLevelSuccess AlertLevel = "success"
)

// DefaultAlertDuration is how long an alert stays visible when the caller
// does not specify a duration.
const DefaultAlertDuration = 5 * time.Second

// IsValidAlertLevel reports whether the level is one of the known values.
func IsValidAlertLevel(level AlertLevel) bool {
	switch level {
	case AlertLevelInfo, AlertLevelWarning, AlertLevelError, AlertLevelSuccess:
		return true
	}
	return false
}

// Alert is a transient user-facing message. Alerts exist only in the active
// session registry and expire automatically after Duration.
type Alert struct {
	ID        uuid.UUID
	Level     AlertLevel
	Title     string
	Message   string
	Timestamp time.Time
	Duration  time.Duration
}

// NewAlert creates a new Alert entity. A non-positive duration falls back to
// DefaultAlertDuration.
func NewAlert(level AlertLevel, title, message string, duration time.Duration) *Alert {
	if duration <= 0 {
		duration = DefaultAlertDuration
	}

	return &Alert{
		ID:        uuid.New(),
		Level:     level,
		Title:     title,
		Message:   message,
		Timestamp: time.Now().UTC(),
		Duration:  duration,
	}
}

// Package error defines domain-specific errors for the SmartSpend engine.
package error

import "errors"

// Notification and alert domain errors.
var (
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrInvalidAlertLevel is returned when the alert level is invalid.
	ErrInvalidAlertLevel = errors.New("invalid alert level")
)

// NotificationErrorCode defines error codes for notification errors.
// Format: NTF-XXYYYY where XX is category and YYYY is specific error.
type NotificationErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeNotificationNotFound      NotificationErrorCode = "NTF-010001"
	ErrCodeInvalidAlertLevel         NotificationErrorCode = "NTF-010002"
	ErrCodeMissingNotificationFields NotificationErrorCode = "NTF-010003"
)

// NotificationError represents a notification error with code and message.
type NotificationError struct {
	Code    NotificationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *NotificationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *NotificationError) Unwrap() error {
	return e.Err
}

// NewNotificationError creates a new NotificationError with the given code and message.
func NewNotificationError(code NotificationErrorCode, message string, err error) *NotificationError {
	return &NotificationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

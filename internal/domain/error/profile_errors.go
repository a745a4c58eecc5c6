// Package error defines domain-specific errors for the SmartSpend engine.
package error

import "errors"

// Profile and settings domain errors.
var (
	// ErrInvalidProfileName is returned when the profile name is empty.
	ErrInvalidProfileName = errors.New("invalid profile name")

	// ErrInvalidProfileAge is returned when the age is negative or implausible.
	ErrInvalidProfileAge = errors.New("invalid profile age")

	// ErrInvalidGender is returned when the gender is not a known value.
	ErrInvalidGender = errors.New("invalid gender")

	// ErrInvalidCurrency is returned when the currency symbol is unsupported.
	ErrInvalidCurrency = errors.New("invalid currency symbol")

	// ErrInvalidTheme is returned when the theme is not a known value.
	ErrInvalidTheme = errors.New("invalid theme")
)

// ProfileErrorCode defines error codes for profile and settings errors.
// Format: PRF-XXYYYY where XX is category and YYYY is specific error.
type ProfileErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidProfileName ProfileErrorCode = "PRF-010001"
	ErrCodeInvalidProfileAge  ProfileErrorCode = "PRF-010002"
	ErrCodeInvalidGender      ProfileErrorCode = "PRF-010003"
	ErrCodeInvalidCurrency    ProfileErrorCode = "PRF-010004"
	ErrCodeInvalidTheme       ProfileErrorCode = "PRF-010005"
)

// ProfileError represents a profile error with code and message.
type ProfileError struct {
	Code    ProfileErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProfileError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProfileError) Unwrap() error {
	return e.Err
}

// NewProfileError creates a new ProfileError with the given code and message.
func NewProfileError(code ProfileErrorCode, message string, err error) *ProfileError {
	return &ProfileError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

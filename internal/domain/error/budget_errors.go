// Package error defines domain-specific errors for the SmartSpend engine.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when no budget goal exists for a category.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrInvalidBudgetLimit is returned when the limit amount is zero or negative.
	ErrInvalidBudgetLimit = errors.New("invalid budget limit")

	// ErrInvalidBudgetCategory is returned when the category is not a valid
	// expense category. Budgets exist for expense categories only.
	ErrInvalidBudgetCategory = errors.New("invalid budget category")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BDG-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeBudgetNotFound        BudgetErrorCode = "BDG-010001"
	ErrCodeInvalidBudgetLimit    BudgetErrorCode = "BDG-010002"
	ErrCodeInvalidBudgetCategory BudgetErrorCode = "BDG-010003"
	ErrCodeMissingBudgetFields   BudgetErrorCode = "BDG-010004"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

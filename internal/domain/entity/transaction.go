// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// PaymentMethod represents how a transaction was paid.
type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "cash"
	PaymentMethodUPI  PaymentMethod = "upi"
	PaymentMethodCard PaymentMethod = "card"
	PaymentMethodBank PaymentMethod = "bank"
)

// Category represents a fixed transaction category.
type Category string

const (
	CategoryFood          Category = "food"
	CategoryTransport     Category = "transport"
	CategoryRent          Category = "rent"
	CategoryShopping      Category = "shopping"
	CategoryEducation     Category = "education"
	CategoryEntertainment Category = "entertainment"
	CategoryHealth        Category = "health"
	CategoryBills         Category = "bills"
	CategoryInvestment    Category = "investment"
	CategorySalary        Category = "salary"
	CategoryFreelance     Category = "freelance"
	CategoryOthers        Category = "others"
)

// ExpenseCategories lists the categories valid for expense transactions.
var ExpenseCategories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryRent,
	CategoryShopping,
	CategoryEducation,
	CategoryEntertainment,
	CategoryHealth,
	CategoryBills,
	CategoryInvestment,
	CategoryOthers,
}

// IncomeCategories lists the categories valid for income transactions.
var IncomeCategories = []Category{
	CategorySalary,
	CategoryFreelance,
	CategoryInvestment,
	CategoryOthers,
}

// CategoryLabels maps categories to their display labels.
var CategoryLabels = map[Category]string{
	CategoryFood:          "Food & Dining",
	CategoryTransport:     "Transport",
	CategoryRent:          "Rent & Housing",
	CategoryShopping:      "Shopping",
	CategoryEducation:     "Education",
	CategoryEntertainment: "Entertainment",
	CategoryHealth:        "Health",
	CategoryBills:         "Bills & Utilities",
	CategoryInvestment:    "Investment",
	CategorySalary:        "Salary",
	CategoryFreelance:     "Freelance",
	CategoryOthers:        "Others",
}

// PaymentMethodLabels maps payment methods to their display labels.
var PaymentMethodLabels = map[PaymentMethod]string{
	PaymentMethodCash: "Cash",
	PaymentMethodUPI:  "UPI",
	PaymentMethodCard: "Card",
	PaymentMethodBank: "Bank Transfer",
}

// IsValidPaymentMethod reports whether the payment method is one of the known values.
func IsValidPaymentMethod(method PaymentMethod) bool {
	switch method {
	case PaymentMethodCash, PaymentMethodUPI, PaymentMethodCard, PaymentMethodBank:
		return true
	}
	return false
}

// IsValidCategoryForType reports whether the category belongs to the valid
// set for the given transaction type. The investment and others categories
// are shared between both sets.
func IsValidCategoryForType(category Category, transactionType TransactionType) bool {
	var valid []Category
	switch transactionType {
	case TransactionTypeExpense:
		valid = ExpenseCategories
	case TransactionTypeIncome:
		valid = IncomeCategories
	default:
		return false
	}

	for _, c := range valid {
		if c == category {
			return true
		}
	}
	return false
}

// Label returns the display label for a category, falling back to the raw value.
func (c Category) Label() string {
	if label, ok := CategoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// Transaction represents a financial transaction in the SmartSpend ledger.
type Transaction struct {
	ID            uuid.UUID
	Type          TransactionType
	Amount        decimal.Decimal // Always positive; Type carries the sign semantics
	Category      Category
	Date          time.Time // Calendar date the transaction occurred
	Notes         string
	PaymentMethod PaymentMethod
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	transactionType TransactionType,
	amount decimal.Decimal,
	category Category,
	date time.Time,
	notes string,
	paymentMethod PaymentMethod,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:            uuid.New(),
		Type:          transactionType,
		Amount:        amount,
		Category:      category,
		Date:          date,
		Notes:         notes,
		PaymentMethod: paymentMethod,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Label returns the display label for the transaction: its notes when
// present, otherwise the category name. Used by the export report.
func (t *Transaction) Label() string {
	if t.Notes != "" {
		return t.Notes
	}
	return string(t.Category)
}

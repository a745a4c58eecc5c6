package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestIsValidCategoryForType(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		txnType  TransactionType
		want     bool
	}{
		{"food is a valid expense", CategoryFood, TransactionTypeExpense, true},
		{"salary is not a valid expense", CategorySalary, TransactionTypeExpense, false},
		{"salary is a valid income", CategorySalary, TransactionTypeIncome, true},
		{"rent is not a valid income", CategoryRent, TransactionTypeIncome, false},
		{"investment is valid for both as expense", CategoryInvestment, TransactionTypeExpense, true},
		{"investment is valid for both as income", CategoryInvestment, TransactionTypeIncome, true},
		{"others is valid for both as expense", CategoryOthers, TransactionTypeExpense, true},
		{"others is valid for both as income", CategoryOthers, TransactionTypeIncome, true},
		{"unknown category", Category("crypto"), TransactionTypeExpense, false},
		{"unknown type", CategoryFood, TransactionType("transfer"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidCategoryForType(tt.category, tt.txnType); got != tt.want {
				t.Errorf("IsValidCategoryForType(%s, %s) = %v, want %v", tt.category, tt.txnType, got, tt.want)
			}
		})
	}
}

func TestCategoryLabel(t *testing.T) {
	if got := CategoryFood.Label(); got != "Food & Dining" {
		t.Errorf("expected Food & Dining, got %s", got)
	}
	if got := Category("mystery").Label(); got != "mystery" {
		t.Errorf("expected raw fallback, got %s", got)
	}
}

func TestTransactionLabel(t *testing.T) {
	txn := NewTransaction(
		TransactionTypeExpense,
		decimal.NewFromInt(50),
		CategoryFood,
		time.Now(),
		"Groceries",
		PaymentMethodCard,
	)
	if got := txn.Label(); got != "Groceries" {
		t.Errorf("expected notes label, got %s", got)
	}

	txn.Notes = ""
	if got := txn.Label(); got != "food" {
		t.Errorf("expected category fallback, got %s", got)
	}
}

func TestIsValidPaymentMethod(t *testing.T) {
	for _, method := range []PaymentMethod{PaymentMethodCash, PaymentMethodUPI, PaymentMethodCard, PaymentMethodBank} {
		if !IsValidPaymentMethod(method) {
			t.Errorf("expected %s to be valid", method)
		}
	}
	if IsValidPaymentMethod(PaymentMethod("cheque")) {
		t.Error("expected cheque to be invalid")
	}
}

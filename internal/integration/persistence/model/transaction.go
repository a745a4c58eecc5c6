// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Type          string          `gorm:"type:varchar(10);not null;index"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Category      string          `gorm:"type:varchar(32);not null;index"`
	Date          time.Time       `gorm:"type:date;not null;index"`
	Notes         string          `gorm:"type:text"`
	PaymentMethod string          `gorm:"type:varchar(10);not null"`
	CreatedAt     time.Time       `gorm:"not null;index"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:            m.ID,
		Type:          entity.TransactionType(m.Type),
		Amount:        m.Amount,
		Category:      entity.Category(m.Category),
		Date:          m.Date,
		Notes:         m.Notes,
		PaymentMethod: entity.PaymentMethod(m.PaymentMethod),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// TransactionFromEntity converts a domain Transaction entity to a TransactionModel.
func TransactionFromEntity(t *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:            t.ID,
		Type:          string(t.Type),
		Amount:        t.Amount,
		Category:      string(t.Category),
		Date:          t.Date,
		Notes:         t.Notes,
		PaymentMethod: string(t.PaymentMethod),
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

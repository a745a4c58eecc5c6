package model

import (
	"time"

	"github.com/smartspend/backend/internal/domain/entity"
)

// SettingsModel represents the settings table in the database.
// The table holds at most one row.
type SettingsModel struct {
	ID          int    `gorm:"primaryKey"`
	Currency    string `gorm:"type:varchar(4);not null"`
	Theme       string `gorm:"type:varchar(10);not null"`
	DataCleared bool   `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the SettingsModel.
func (SettingsModel) TableName() string {
	return "settings"
}

// ToEntity converts a SettingsModel to a domain Settings entity.
func (m *SettingsModel) ToEntity() *entity.Settings {
	return &entity.Settings{
		Currency:    m.Currency,
		Theme:       entity.Theme(m.Theme),
		DataCleared: m.DataCleared,
	}
}

// SettingsFromEntity converts a domain Settings entity to a SettingsModel.
func SettingsFromEntity(s *entity.Settings) *SettingsModel {
	return &SettingsModel{
		ID:          singletonRowID,
		Currency:    s.Currency,
		Theme:       string(s.Theme),
		DataCleared: s.DataCleared,
	}
}

package model

import (
	"time"

	"github.com/smartspend/backend/internal/domain/entity"
)

// singletonRowID keys the one-row tables (profile, settings).
const singletonRowID = 1

// UserProfileModel represents the user_profiles table in the database.
// The table holds at most one row.
type UserProfileModel struct {
	ID             int     `gorm:"primaryKey"`
	Name           string  `gorm:"type:varchar(100);not null"`
	Age            *int    `gorm:"type:integer"`
	Gender         *string `gorm:"type:varchar(20)"`
	ProfilePicture string  `gorm:"type:text"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// TableName returns the table name for the UserProfileModel.
func (UserProfileModel) TableName() string {
	return "user_profiles"
}

// ToEntity converts a UserProfileModel to a domain UserProfile entity.
func (m *UserProfileModel) ToEntity() *entity.UserProfile {
	var gender *entity.Gender
	if m.Gender != nil {
		g := entity.Gender(*m.Gender)
		gender = &g
	}

	return &entity.UserProfile{
		Name:           m.Name,
		Age:            m.Age,
		Gender:         gender,
		ProfilePicture: m.ProfilePicture,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// UserProfileFromEntity converts a domain UserProfile entity to a UserProfileModel.
func UserProfileFromEntity(p *entity.UserProfile) *UserProfileModel {
	var gender *string
	if p.Gender != nil {
		g := string(*p.Gender)
		gender = &g
	}

	return &UserProfileModel{
		ID:             singletonRowID,
		Name:           p.Name,
		Age:            p.Age,
		Gender:         gender,
		ProfilePicture: p.ProfilePicture,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// Gender represents the optional gender field of the user profile.
type Gender string

const (
	GenderMale           Gender = "male"
	GenderFemale         Gender = "female"
	GenderOther          Gender = "other"
	GenderPreferNotToSay Gender = "prefer-not-to-say"
)

// DefaultProfileName is used when no name has been set.
const DefaultProfileName = "SmartSpend User"

// IsValidGender reports whether the gender is one of the known values.
func IsValidGender(gender Gender) bool {
	switch gender {
	case GenderMale, GenderFemale, GenderOther, GenderPreferNotToSay:
		return true
	}
	return false
}

// UserProfile is the singleton local user profile.
type UserProfile struct {
	Name           string
	Age            *int
	Gender         *Gender
	ProfilePicture string // Base64 encoded image, empty when unset
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DefaultProfile returns a fresh profile with default values.
func DefaultProfile() *UserProfile {
	now := time.Now().UTC()
	return &UserProfile{
		Name:      DefaultProfileName,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

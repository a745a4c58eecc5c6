package dto

import (
	"time"

	"github.com/smartspend/backend/internal/domain/entity"
)

// UpdateProfileRequest represents the request body for profile updates.
type UpdateProfileRequest struct {
	Name           string  `json:"name" binding:"omitempty,max=100"`
	Age            *int    `json:"age,omitempty"`
	Gender         *string `json:"gender,omitempty" binding:"omitempty,oneof=male female other prefer-not-to-say"`
	ProfilePicture string  `json:"profile_picture,omitempty"`
}

// ProfileResponse represents the user profile in API responses.
type ProfileResponse struct {
	Name           string    `json:"name"`
	Age            *int      `json:"age,omitempty"`
	Gender         *string   `json:"gender,omitempty"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ToProfileResponse converts a domain UserProfile to a ProfileResponse DTO.
func ToProfileResponse(p *entity.UserProfile) ProfileResponse {
	var gender *string
	if p.Gender != nil {
		g := string(*p.Gender)
		gender = &g
	}
	return ProfileResponse{
		Name:           p.Name,
		Age:            p.Age,
		Gender:         gender,
		ProfilePicture: p.ProfilePicture,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

package dto

import (
	"github.com/smartspend/backend/internal/domain/entity"
)

// UpdateSettingsRequest represents the request body for settings updates.
type UpdateSettingsRequest struct {
	Currency *string `json:"currency,omitempty"`
	Theme    *string `json:"theme,omitempty" binding:"omitempty,oneof=light dark system"`
}

// SettingsResponse represents the installation settings in API responses.
type SettingsResponse struct {
	Currency    string `json:"currency"`
	Theme       string `json:"theme"`
	DataCleared bool   `json:"data_cleared"`
}

// ToSettingsResponse converts a domain Settings to a SettingsResponse DTO.
func ToSettingsResponse(s *entity.Settings) SettingsResponse {
	return SettingsResponse{
		Currency:    s.Currency,
		Theme:       string(s.Theme),
		DataCleared: s.DataCleared,
	}
}

// Package profile contains user-profile use cases.
package profile

import (
	"context"
	"fmt"

	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/domain/entity"
)

// GetProfileOutput represents the singleton user profile.
type GetProfileOutput struct {
	Profile *entity.UserProfile
}

// GetProfileUseCase retrieves the profile, falling back to defaults when
// none has been saved yet.
type GetProfileUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewGetProfileUseCase creates a new GetProfileUseCase instance.
func NewGetProfileUseCase(profileRepo adapter.ProfileRepository) *GetProfileUseCase {
	return &GetProfileUseCase{
		profileRepo: profileRepo,
	}
}

// Execute retrieves the profile.
func (uc *GetProfileUseCase) Execute(ctx context.Context) (*GetProfileOutput, error) {
	profile, err := uc.profileRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if profile == nil {
		profile = entity.DefaultProfile()
	}
	return &GetProfileOutput{Profile: profile}, nil
}

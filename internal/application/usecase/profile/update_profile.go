// Package profile contains user-profile use cases.
package profile

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/domain/entity"
	domainerror "github.com/smartspend/backend/internal/domain/error"
)

// MaxProfileAge is the largest accepted age value.
const MaxProfileAge = 150

// UpdateProfileInput represents the input for updating the profile.
// Name falls back to the default when blank; nil optional fields clear
// their stored values.
type UpdateProfileInput struct {
	Name           string
	Age            *int
	Gender         *entity.Gender
	ProfilePicture string
}

// UpdateProfileOutput represents the updated profile.
type UpdateProfileOutput struct {
	Profile *entity.UserProfile
}

// UpdateProfileUseCase creates or replaces the singleton profile.
type UpdateProfileUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(profileRepo adapter.ProfileRepository) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		profileRepo: profileRepo,
	}
}

// Execute updates the profile.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = entity.DefaultProfileName
	}

	if input.Age != nil && (*input.Age < 0 || *input.Age > MaxProfileAge) {
		return nil, domainerror.NewProfileError(
			domainerror.ErrCodeInvalidProfileAge,
			fmt.Sprintf("age must be between 0 and %d", MaxProfileAge),
			domainerror.ErrInvalidProfileAge,
		)
	}

	if input.Gender != nil && !entity.IsValidGender(*input.Gender) {
		return nil, domainerror.NewProfileError(
			domainerror.ErrCodeInvalidGender,
			"gender must be 'male', 'female', 'other' or 'prefer-not-to-say'",
			domainerror.ErrInvalidGender,
		)
	}

	existing, err := uc.profileRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	now := time.Now().UTC()
	profile := &entity.UserProfile{
		Name:           name,
		Age:            input.Age,
		Gender:         input.Gender,
		ProfilePicture: input.ProfilePicture,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if existing != nil {
		profile.CreatedAt = existing.CreatedAt
	}

	if err := uc.profileRepo.Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	return &UpdateProfileOutput{Profile: profile}, nil
}

// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/smartspend/backend/internal/domain/entity"
)

// ProfileRepository defines the interface for the singleton user profile.
type ProfileRepository interface {
	// Get retrieves the profile, or nil when none has been saved.
	Get(ctx context.Context) (*entity.UserProfile, error)

	// Save creates or replaces the profile.
	Save(ctx context.Context, profile *entity.UserProfile) error

	// Delete removes the profile. A missing profile is a no-op.
	Delete(ctx context.Context) error
}

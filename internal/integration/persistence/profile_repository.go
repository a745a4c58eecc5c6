package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/domain/entity"
	"github.com/smartspend/backend/internal/integration/persistence/model"
)

// profileRepository implements the adapter.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository instance.
func NewProfileRepository(db *gorm.DB) adapter.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// Get retrieves the profile, or nil when none has been saved.
func (r *profileRepository) Get(ctx context.Context) (*entity.UserProfile, error) {
	var profileModel model.UserProfileModel
	result := r.db.WithContext(ctx).First(&profileModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return profileModel.ToEntity(), nil
}

// Save creates or replaces the profile row.
func (r *profileRepository) Save(ctx context.Context, profile *entity.UserProfile) error {
	profileModel := model.UserProfileFromEntity(profile)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(profileModel)
	return result.Error
}

// Delete removes the profile. A missing profile is a no-op.
func (r *profileRepository) Delete(ctx context.Context) error {
	result := r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&model.UserProfileModel{})
	return result.Error
}

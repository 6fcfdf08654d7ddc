package postgres

import (
	"context"
	"time"

	"affiliate/internal/domain/entity"
	"affiliate/internal/domain/repository"
	"affiliate/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// Get retrieves the operator profile.
func (repo *profileRepository) Get(ctx context.Context) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", entity.ProfileID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to get profile")
	}

	return toProfileDomain(&profileM), nil
}

// Update overwrites the operator profile.
func (repo *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", entity.ProfileID).
		Updates(map[string]any{
			"name":       profile.Name,
			"email":      profile.Email,
			"avatar":     profile.Avatar,
			"updated_at": profile.UpdatedAt,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return errors.Wrap(repository.ErrDuplicateEmail, result.Error.Error())
		}

		return errors.Wrap(result.Error, "failed to update profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// Upsert creates or replaces the operator profile.
func (repo *profileRepository) Upsert(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "email", "avatar", "updated_at"}),
		}).
		Create(profileM).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(repository.ErrDuplicateEmail, err.Error())
		}

		return errors.Wrap(err, "failed to upsert profile")
	}

	return nil
}

// DeleteAll removes every profile record.
func (repo *profileRepository) DeleteAll(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&model.ProfileModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete profiles")
	}

	return nil
}

// --- Mapper Functions ---

func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Avatar:    data.Avatar,
		CreatedAt: data.CreatedAt.UTC(),
		UpdatedAt: data.UpdatedAt.UTC(),
	}
}

// fromProfileDomain pins the record to entity.ProfileID whatever ID the caller set.
func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	now := time.Now().UTC()
	profileM := &model.ProfileModel{
		ID:        entity.ProfileID,
		Name:      data.Name,
		Email:     data.Email,
		Avatar:    data.Avatar,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if profileM.CreatedAt.IsZero() {
		profileM.CreatedAt = now
	}
	if profileM.UpdatedAt.IsZero() {
		profileM.UpdatedAt = now
	}
	data.ID = entity.ProfileID

	return profileM
}

package postgres

import (
	"context"
	"time"

	"affiliate/internal/domain/entity"
	"affiliate/internal/domain/repository"
	"affiliate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// clickRepository implements the repository.ClickRepository interface.
type clickRepository struct {
	db *gorm.DB
}

// NewClickRepository is the constructor for clickRepository.
func NewClickRepository(db *gorm.DB) repository.ClickRepository {
	return &clickRepository{
		db: db,
	}
}

// Create appends a click record.
func (repo *clickRepository) Create(ctx context.Context, click *entity.Click) error {
	if click.ID == uuid.Nil {
		click.ID = uuid.New()
	}
	if click.CreatedAt.IsZero() {
		click.CreatedAt = time.Now().UTC()
	}

	clickM := &model.ClickModel{
		ID:        click.ID,
		ProductID: click.ProductID,
		IPAddress: click.IPAddress,
		CreatedAt: click.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(clickM).Error; err != nil {
		return errors.Wrap(err, "failed to create click")
	}

	return nil
}

// Count returns the number of click records.
func (repo *clickRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ClickModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count clicks")
	}

	return count, nil
}

// DeleteAll removes every click record.
func (repo *clickRepository) DeleteAll(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&model.ClickModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete clicks")
	}

	return nil
}

package impl

import (
	"context"
	"log/slog"
	"time"

	"affiliate/internal/domain/entity"
	"affiliate/internal/domain/repository"
	"affiliate/internal/domain/service"
	"affiliate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// seedService implements the SeedUsecase interface.
type seedService struct {
	txManager repository.TransactionManager
	codeGen   service.ReferralCodeGenerator
	logger    *slog.Logger
	now       func() time.Time
}

// NewSeedService is the constructor for seedService.
func NewSeedService(
	txManager repository.TransactionManager,
	codeGen service.ReferralCodeGenerator,
	logger *slog.Logger,
) usecase.SeedUsecase {
	return &seedService{
		txManager: txManager,
		codeGen:   codeGen,
		logger:    logger,
		now:       time.Now,
	}
}

// Import wipes products and profiles, then writes the operator profile and the catalog.
// Products without an ID or referral code get fresh ones; clicks start at zero.
func (srv *seedService) Import(ctx context.Context, profile *entity.Profile, products []*entity.Product) error {
	now := srv.now().UTC()

	for _, product := range products {
		if product.ID == uuid.Nil {
			product.ID = uuid.New()
		}
		if product.ReferralCode == "" {
			code, err := srv.codeGen.Generate()
			if err != nil {
				return errors.Wrap(err, "failed to generate referral code")
			}
			product.ReferralCode = code
		}
		product.Clicks = 0
		product.CreatedAt = now
		product.UpdatedAt = now
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()
		profileRepo := repoFactory.ProfileRepo()

		if err := productRepo.DeleteAll(ctx); err != nil {
			return errors.Wrap(err, "failed to delete products")
		}
		if err := profileRepo.DeleteAll(ctx); err != nil {
			return errors.Wrap(err, "failed to delete profiles")
		}

		if profile != nil {
			profile.ID = entity.ProfileID
			profile.CreatedAt = now
			profile.UpdatedAt = now
			if err := profileRepo.Upsert(ctx, profile); err != nil {
				return errors.Wrap(err, "failed to write profile")
			}
		}

		for _, product := range products {
			if err := productRepo.Create(ctx, product); err != nil {
				return errors.Wrapf(err, "failed to insert product %q", product.Title)
			}
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to import seed data")
	}

	srv.logger.Info("Data imported", slog.Int("products", len(products)))

	return nil
}

// Destroy removes every product and click record.
func (srv *seedService) Destroy(ctx context.Context) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ProductRepo().DeleteAll(ctx); err != nil {
			return errors.Wrap(err, "failed to delete products")
		}
		if err := repoFactory.ClickRepo().DeleteAll(ctx); err != nil {
			return errors.Wrap(err, "failed to delete clicks")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to destroy data")
	}

	srv.logger.Info("Data destroyed")

	return nil
}

package usecase

import (
	"context"

	"affiliate/internal/domain/entity"
)

// SeedUsecase loads or wipes demo data.
type SeedUsecase interface {
	// Import replaces the catalog and the operator profile with the given data.
	Import(ctx context.Context, profile *entity.Profile, products []*entity.Product) error
	// Destroy removes every product and click record.
	Destroy(ctx context.Context) error
}

package repository

import (
	"context"

	"affiliate/internal/domain/entity"
)

// ClickRepository defines the interface for the append-only click log.
type ClickRepository interface {
	// Create appends a click record.
	Create(ctx context.Context, click *entity.Click) error

	// Count returns the number of click records.
	Count(ctx context.Context) (int64, error)

	// DeleteAll removes every click record.
	DeleteAll(ctx context.Context) error
}

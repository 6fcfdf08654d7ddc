package usecase

import (
	"context"

	"affiliate/internal/domain/entity"
)

// StatsUsecase computes the dashboard summary.
type StatsUsecase interface {
	GetStats(ctx context.Context) (*entity.Stats, error)
}

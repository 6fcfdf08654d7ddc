package impl

import (
	"context"
	"log/slog"

	deliverycontext "affiliate/internal/delivery/context"
	"affiliate/internal/domain/entity"
	domainerrors "affiliate/internal/domain/errors"
	"affiliate/internal/domain/repository"
	"affiliate/internal/usecase"
	"affiliate/internal/util"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// topProductsLimit caps the most-clicked list of the dashboard.
const topProductsLimit = 5

// statsService implements the StatsUsecase interface.
type statsService struct {
	productRepo repository.ProductRepository
	clickRepo   repository.ClickRepository
	logger      *slog.Logger
}

// NewStatsService is the constructor for statsService.
func NewStatsService(
	productRepo repository.ProductRepository,
	clickRepo repository.ClickRepository,
	logger *slog.Logger,
) usecase.StatsUsecase {
	return &statsService{
		productRepo: productRepo,
		clickRepo:   clickRepo,
		logger:      logger,
	}
}

func (srv *statsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetStats runs the aggregate queries concurrently; the first failure cancels the rest.
func (srv *statsService) GetStats(ctx context.Context) (*entity.Stats, error) {
	var (
		totalProducts   int64
		totalClicks     int64
		potentialIncome float64
		categoryStats   []entity.CategoryCount
		topProducts     []entity.ProductClicks
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := srv.productRepo.Count(gctx)
		if err != nil {
			return errors.Wrap(err, "failed to count products")
		}
		totalProducts = count

		return nil
	})

	g.Go(func() error {
		count, err := srv.clickRepo.Count(gctx)
		if err != nil {
			return errors.Wrap(err, "failed to count clicks")
		}
		totalClicks = count

		return nil
	})

	g.Go(func() error {
		sum, err := srv.productRepo.SumPotentialIncome(gctx)
		if err != nil {
			return errors.Wrap(err, "failed to sum potential income")
		}
		potentialIncome = sum

		return nil
	})

	g.Go(func() error {
		counts, err := srv.productRepo.CountByCategory(gctx)
		if err != nil {
			return errors.Wrap(err, "failed to count products by category")
		}
		categoryStats = counts

		return nil
	})

	g.Go(func() error {
		top, err := srv.productRepo.TopByClicks(gctx, topProductsLimit)
		if err != nil {
			return errors.Wrap(err, "failed to load top products")
		}
		topProducts = top

		return nil
	})

	if err := g.Wait(); err != nil {
		srv.log(ctx).Error("Failed to compute stats", slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to compute stats")
	}

	if categoryStats == nil {
		categoryStats = []entity.CategoryCount{}
	}
	if topProducts == nil {
		topProducts = []entity.ProductClicks{}
	}
	if len(topProducts) > topProductsLimit {
		topProducts = topProducts[:topProductsLimit]
	}

	return &entity.Stats{
		TotalProducts:       totalProducts,
		TotalClicks:         totalClicks,
		PotentialIncome:     util.RoundTo(potentialIncome, 2),
		CategoryStats:       categoryStats,
		TopProductsByClicks: topProducts,
	}, nil
}

package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "affiliate/internal/delivery/context"
	"affiliate/internal/domain/entity"
	domainerrors "affiliate/internal/domain/errors"
	"affiliate/internal/domain/repository"
	"affiliate/internal/infra/metrics"
	"affiliate/internal/usecase"
	"affiliate/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// referralService implements the ReferralUsecase interface.
type referralService struct {
	txManager repository.TransactionManager
	metrics   *metrics.Metrics
	logger    *slog.Logger
	now       func() time.Time
}

// NewReferralService is the constructor for referralService.
func NewReferralService(
	txManager repository.TransactionManager,
	m *metrics.Metrics,
	logger *slog.Logger,
) usecase.ReferralUsecase {
	return &referralService{
		txManager: txManager,
		metrics:   m,
		logger:    logger,
		now:       time.Now,
	}
}

func (srv *referralService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// TrackClick increments the product counter and appends a click record in one transaction.
// Unknown codes write nothing.
func (srv *referralService) TrackClick(ctx context.Context, referralCode, ipAddress string) (*entity.Product, error) {
	referralCode = strings.TrimSpace(referralCode)
	if referralCode == "" {
		srv.metrics.ObserveRedirect(metrics.RedirectNotFound)

		return nil, errors.Wrap(domainerrors.ErrReferralCodeNotFound, "empty referral code")
	}

	var product *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		updated, err := repoFactory.ProductRepo().IncrementClicks(ctx, referralCode)
		if err != nil {
			return errors.Wrap(err, "failed to increment clicks")
		}

		click := &entity.Click{
			ID:        uuid.New(),
			ProductID: updated.ID,
			IPAddress: ipAddress,
			CreatedAt: srv.now().UTC(),
		}
		if err := repoFactory.ClickRepo().Create(ctx, click); err != nil {
			return errors.Wrap(err, "failed to record click")
		}

		product = updated

		return nil
	})

	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			srv.metrics.ObserveRedirect(metrics.RedirectNotFound)
			srv.log(ctx).Debug("Unknown referral code", slog.String("referralCode", referralCode))

			return nil, errors.Wrap(domainerrors.ErrReferralCodeNotFound, "referral code not found")
		}

		srv.metrics.ObserveRedirect(metrics.RedirectError)
		srv.log(ctx).Error("Failed to track referral click", slog.String("referralCode", referralCode), slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to track referral click")
	}

	srv.metrics.ObserveRedirect(metrics.RedirectOK)
	srv.log(ctx).Debug("Referral click tracked",
		slog.String("referralCode", referralCode),
		slog.Any("productID", product.ID),
		slog.Int64("clicks", product.Clicks),
		slog.Float64("potentialIncome", util.RoundTo(product.PotentialIncome(), 2)),
	)

	return product, nil
}

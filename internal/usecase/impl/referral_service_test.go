package impl

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"affiliate/internal/domain/entity"
	domainerrors "affiliate/internal/domain/errors"
	"affiliate/internal/domain/repository"
	"affiliate/internal/infra/metrics"
	mockRepo "affiliate/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type referralServiceFixtures struct {
	service   *referralService
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	products  *mockRepo.MockProductRepository
	clicks    *mockRepo.MockClickRepository
}

func createTestReferralService(t *testing.T) referralServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	products := mockRepo.NewMockProductRepository(t)
	clicks := mockRepo.NewMockClickRepository(t)

	m := metrics.New(prometheus.NewRegistry(), "affiliate", "test")
	svc := NewReferralService(txManager, m, newDiscardLogger()).(*referralService)
	svc.now = func() time.Time { return fixedNow }

	return referralServiceFixtures{
		service:   svc,
		txManager: txManager,
		factory:   factory,
		products:  products,
		clicks:    clicks,
	}
}

// runInTx makes the transaction manager invoke the callback with the fixture factory.
func (fx referralServiceFixtures) runInTx(ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
}

func TestReferralService_TrackClick_Success(t *testing.T) {
	fx := createTestReferralService(t)
	ctx := context.Background()

	product := newFakeProduct()
	product.Clicks = 4
	product.OriginalURL = "https://shop.example.com/item"

	fx.runInTx(ctx)
	fx.factory.EXPECT().ProductRepo().Return(fx.products)
	fx.factory.EXPECT().ClickRepo().Return(fx.clicks)
	fx.products.EXPECT().IncrementClicks(ctx, product.ReferralCode).Return(product, nil)
	fx.clicks.EXPECT().
		Create(ctx, mock.MatchedBy(func(c *entity.Click) bool {
			return c.ProductID == product.ID && c.IPAddress == "203.0.113.7" && c.CreatedAt.Equal(fixedNow)
		})).
		Return(nil)

	got, err := fx.service.TrackClick(ctx, product.ReferralCode, "203.0.113.7")

	require.NoError(t, err)
	assert.Equal(t, "https://shop.example.com/item", got.OriginalURL)
	assert.Equal(t, int64(4), got.Clicks)
}

func TestReferralService_TrackClick_LogsPotentialIncome(t *testing.T) {
	fx := createTestReferralService(t)
	ctx := context.Background()

	var buf bytes.Buffer
	fx.service.logger = slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	product := newFakeProduct()
	product.Price, product.CommissionPercent, product.Clicks = 1000, 10, 5

	fx.runInTx(ctx)
	fx.factory.EXPECT().ProductRepo().Return(fx.products)
	fx.factory.EXPECT().ClickRepo().Return(fx.clicks)
	fx.products.EXPECT().IncrementClicks(ctx, product.ReferralCode).Return(product, nil)
	fx.clicks.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Click")).Return(nil)

	_, err := fx.service.TrackClick(ctx, product.ReferralCode, "203.0.113.7")

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"msg":"Referral click tracked"`)
	assert.Contains(t, buf.String(), `"potentialIncome":500`)
}

func TestReferralService_TrackClick_UnknownCode(t *testing.T) {
	fx := createTestReferralService(t)
	ctx := context.Background()

	fx.runInTx(ctx)
	fx.factory.EXPECT().ProductRepo().Return(fx.products)
	fx.products.EXPECT().IncrementClicks(ctx, "missing1").Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.TrackClick(ctx, "missing1", "203.0.113.7")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrReferralCodeNotFound))
	appErr := requireAppError(t, err)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "Referral link is invalid", appErr.Message())
	fx.clicks.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestReferralService_TrackClick_EmptyCode(t *testing.T) {
	fx := createTestReferralService(t)

	_, err := fx.service.TrackClick(context.Background(), "  ", "203.0.113.7")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrReferralCodeNotFound))
}

func TestReferralService_TrackClick_ClickInsertFails(t *testing.T) {
	fx := createTestReferralService(t)
	ctx := context.Background()

	product := newFakeProduct()

	fx.runInTx(ctx)
	fx.factory.EXPECT().ProductRepo().Return(fx.products)
	fx.factory.EXPECT().ClickRepo().Return(fx.clicks)
	fx.products.EXPECT().IncrementClicks(ctx, product.ReferralCode).Return(product, nil)
	fx.clicks.EXPECT().Create(ctx, mock.Anything).Return(errors.New("write conflict"))

	_, err := fx.service.TrackClick(ctx, product.ReferralCode, "198.51.100.1")

	require.Error(t, err)
	appErr := requireAppError(t, err)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
	assert.Equal(t, "Server Error", appErr.Message())
}

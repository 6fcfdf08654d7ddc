package impl

import (
	"context"
	"testing"
	"time"

	"affiliate/internal/domain/entity"
	"affiliate/internal/domain/repository"
	mockRepo "affiliate/internal/mocks/repository"
	mockSvc "affiliate/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type seedServiceFixtures struct {
	service   *seedService
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	products  *mockRepo.MockProductRepository
	clicks    *mockRepo.MockClickRepository
	profiles  *mockRepo.MockProfileRepository
	codeGen   *mockSvc.MockReferralCodeGenerator
}

func createTestSeedService(t *testing.T) seedServiceFixtures {
	fx := seedServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		products:  mockRepo.NewMockProductRepository(t),
		clicks:    mockRepo.NewMockClickRepository(t),
		profiles:  mockRepo.NewMockProfileRepository(t),
		codeGen:   mockSvc.NewMockReferralCodeGenerator(t),
	}

	svc := NewSeedService(fx.txManager, fx.codeGen, newDiscardLogger()).(*seedService)
	svc.now = func() time.Time { return fixedNow }
	fx.service = svc

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		}).
		Maybe()

	return fx
}

func TestSeedService_Import(t *testing.T) {
	fx := createTestSeedService(t)
	ctx := context.Background()

	products := []*entity.Product{
		{Title: "Whey Protein 2kg", Category: entity.CategorySportNutrition, Price: 2500, CommissionPercent: 15, Clicks: 9},
		{Title: "Ab roller", Category: entity.CategoryEquipment, Price: 890, CommissionPercent: 18, ReferralCode: "keepcode"},
	}
	profile := &entity.Profile{Name: "Fitness Blogger", Email: "pro_blogger@fit.com"}

	fx.factory.EXPECT().ProductRepo().Return(fx.products)
	fx.factory.EXPECT().ProfileRepo().Return(fx.profiles)
	fx.codeGen.EXPECT().Generate().Return("newcode1", nil).Once()
	fx.products.EXPECT().DeleteAll(ctx).Return(nil)
	fx.profiles.EXPECT().DeleteAll(ctx).Return(nil)
	fx.profiles.EXPECT().Upsert(ctx, profile).Return(nil)
	fx.products.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).Return(nil).Times(2)

	require.NoError(t, fx.service.Import(ctx, profile, products))

	assert.Equal(t, entity.ProfileID, profile.ID)
	assert.Equal(t, "newcode1", products[0].ReferralCode)
	assert.Equal(t, "keepcode", products[1].ReferralCode)
	for _, p := range products {
		assert.NotEqual(t, uuid.Nil, p.ID)
		assert.Zero(t, p.Clicks)
		assert.Equal(t, fixedNow, p.CreatedAt)
	}
}

func TestSeedService_Import_StoreError(t *testing.T) {
	fx := createTestSeedService(t)
	ctx := context.Background()

	fx.factory.EXPECT().ProductRepo().Return(fx.products)
	fx.factory.EXPECT().ProfileRepo().Return(fx.profiles)
	fx.products.EXPECT().DeleteAll(ctx).Return(errors.New("not primary"))

	err := fx.service.Import(ctx, nil, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not primary")
}

func TestSeedService_Destroy(t *testing.T) {
	fx := createTestSeedService(t)
	ctx := context.Background()

	fx.factory.EXPECT().ProductRepo().Return(fx.products)
	fx.factory.EXPECT().ClickRepo().Return(fx.clicks)
	fx.products.EXPECT().DeleteAll(ctx).Return(nil)
	fx.clicks.EXPECT().DeleteAll(ctx).Return(nil)

	require.NoError(t, fx.service.Destroy(ctx))
}

package postgres

import (
	"context"
	"testing"

	"affiliate/internal/domain/entity"
	"affiliate/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_Commit(t *testing.T) {
	db := newTestDB(t)
	txManager := NewTransactionManager(db)
	ctx := context.Background()

	product := newTestProduct("Committed", entity.CategoryGadgets)
	seedProducts(t, NewProductRepository(db), product)

	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		updated, err := factory.ProductRepo().IncrementClicks(ctx, product.ReferralCode)
		if err != nil {
			return err
		}

		return factory.ClickRepo().Create(ctx, &entity.Click{ProductID: updated.ID, IPAddress: "192.0.2.1"})
	})
	require.NoError(t, err)

	got, err := NewProductRepository(db).FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Clicks)

	clicks, err := NewClickRepository(db).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), clicks)
}

func TestTransactionManager_RollbackOnError(t *testing.T) {
	db := newTestDB(t)
	txManager := NewTransactionManager(db)
	ctx := context.Background()

	product := newTestProduct("Rolled back", entity.CategoryGadgets)
	seedProducts(t, NewProductRepository(db), product)

	boom := errors.New("click log unavailable")
	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if _, err := factory.ProductRepo().IncrementClicks(ctx, product.ReferralCode); err != nil {
			return err
		}

		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := NewProductRepository(db).FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Zero(t, got.Clicks)
}

func TestTransactionManager_RollbackOnPanic(t *testing.T) {
	db := newTestDB(t)
	txManager := NewTransactionManager(db)
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
			require.NoError(t, factory.ProfileRepo().Upsert(ctx, &entity.Profile{Name: "Ghost", Email: "ghost@example.com"}))
			panic("unexpected")
		})
	})

	_, err := NewProfileRepository(db).Get(ctx)
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)
}

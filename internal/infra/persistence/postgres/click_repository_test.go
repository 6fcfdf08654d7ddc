package postgres

import (
	"context"
	"testing"

	"affiliate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClickRepository(t *testing.T) {
	repo := NewClickRepository(newTestDB(t))
	ctx := context.Background()

	productA, productB := uuid.New(), uuid.New()
	for _, productID := range []uuid.UUID{productA, productA, productB} {
		click := &entity.Click{ProductID: productID, IPAddress: "198.51.100.4"}
		require.NoError(t, repo.Create(ctx, click))
		assert.NotEqual(t, uuid.Nil, click.ID)
		assert.False(t, click.CreatedAt.IsZero())
	}

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	require.NoError(t, repo.DeleteAll(ctx))
	total, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)
}

package postgres

import (
	"context"
	"testing"
	"time"

	"affiliate/internal/domain/entity"
	"affiliate/internal/domain/repository"
	"affiliate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRepository_GetMissing(t *testing.T) {
	repo := NewProfileRepository(newTestDB(t))

	_, err := repo.Get(context.Background())
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)
}

func TestProfileRepository_UpsertAndUpdate(t *testing.T) {
	repo := NewProfileRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &entity.Profile{
		ID:    uuid.New(),
		Name:  "Alex",
		Email: "alex@example.com",
	}))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.ProfileID, got.ID)
	assert.Equal(t, "Alex", got.Name)

	require.NoError(t, repo.Upsert(ctx, &entity.Profile{Name: "Sam", Email: "sam@example.com"}))

	got.Avatar = "https://cdn.example.com/a.png"
	got.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Update(ctx, got))

	got, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Alex", got.Name)
	assert.Equal(t, "https://cdn.example.com/a.png", got.Avatar)
}

func TestProfileRepository_UpdateMissing(t *testing.T) {
	repo := NewProfileRepository(newTestDB(t))

	err := repo.Update(context.Background(), &entity.Profile{Name: "Nobody", Email: "n@example.com"})
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)
}

func TestProfileRepository_UpdateDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &entity.Profile{Name: "Alex", Email: "alex@example.com"}))

	// A stray record left behind by an older deployment.
	require.NoError(t, db.Create(&model.ProfileModel{
		ID:        uuid.New(),
		Name:      "Legacy",
		Email:     "legacy@example.com",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}).Error)

	err := repo.Update(ctx, &entity.Profile{Name: "Alex", Email: "legacy@example.com", UpdatedAt: time.Now().UTC()})
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)

	require.NoError(t, repo.DeleteAll(ctx))
	_, err = repo.Get(ctx)
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)
}

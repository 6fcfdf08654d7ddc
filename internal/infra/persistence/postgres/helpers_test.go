package postgres

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"affiliate/internal/domain/entity"
	"affiliate/internal/infra/persistence/model"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a file-backed SQLite database so every connection in the pool sees the same schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		TranslateError: true,
		Logger:         newGormSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)), nil),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.All()...))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func newTestProduct(title string, category entity.Category) *entity.Product {
	now := time.Now().UTC().Truncate(time.Millisecond)

	return &entity.Product{
		ID:                uuid.New(),
		Title:             title,
		Description:       gofakeit.ProductDescription(),
		Category:          category,
		Price:             1000,
		CommissionPercent: 10,
		ReferralCode:      gofakeit.LetterN(8),
		OriginalURL:       gofakeit.URL(),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

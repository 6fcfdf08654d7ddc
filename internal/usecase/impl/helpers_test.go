package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"affiliate/internal/domain/entity"
	domainerrors "affiliate/internal/domain/errors"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr[T any](v T) *T {
	return &v
}

func newFakeProduct() *entity.Product {
	categories := entity.Categories()

	return &entity.Product{
		ID:                uuid.New(),
		Title:             gofakeit.ProductName(),
		Description:       gofakeit.ProductDescription(),
		Category:          categories[gofakeit.IntRange(0, len(categories)-1)],
		Price:             gofakeit.Price(100, 5000),
		CommissionPercent: float64(gofakeit.IntRange(1, 30)),
		ReferralCode:      gofakeit.Password(true, true, true, false, false, 8),
		OriginalURL:       gofakeit.URL(),
		Clicks:            int64(gofakeit.IntRange(0, 50)),
		CreatedAt:         fixedNow.Add(-time.Hour),
		UpdatedAt:         fixedNow.Add(-time.Hour),
	}
}

func requireAppError(t *testing.T, err error) domainerrors.AppError {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)

	return appErr
}

func requireProblems(t *testing.T, err error) []string {
	t.Helper()

	appErr := requireAppError(t, err)
	problems, ok := appErr.Details().([]string)
	require.True(t, ok, "details should list the violated rules")

	return problems
}

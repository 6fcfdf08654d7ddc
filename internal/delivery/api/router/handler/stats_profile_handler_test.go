package handler

import (
	"net/http"
	"testing"

	"affiliate/internal/domain/entity"
	domainerrors "affiliate/internal/domain/errors"
	mockUsecase "affiliate/internal/mocks/usecase"
	"affiliate/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStatsHandler_GetStats(t *testing.T) {
	statsUC := mockUsecase.NewMockStatsUsecase(t)
	e := newTestEcho()
	e.GET("/api/stats", NewStatsHandler(statsUC).GetStats)

	statsUC.EXPECT().GetStats(mock.Anything).Return(&entity.Stats{
		TotalProducts:       2,
		TotalClicks:         5,
		PotentialIncome:     12.5,
		CategoryStats:       []entity.CategoryCount{{Category: entity.CategoryApparel, Count: 2}},
		TopProductsByClicks: []entity.ProductClicks{},
	}, nil)

	rec := serve(e, http.MethodGet, "/api/stats", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"totalProducts": 2,
		"totalClicks": 5,
		"potentialIncome": 12.5,
		"categoryStats": [{"category": "apparel", "count": 2}],
		"topProductsByClicks": []
	}`, rec.Body.String())
}

func TestProfileHandler(t *testing.T) {
	profileUC := mockUsecase.NewMockProfileUsecase(t)
	h := NewProfileHandler(profileUC)
	e := newTestEcho()
	e.GET("/api/users/profile", h.GetProfile)
	e.PUT("/api/users/profile", h.UpdateProfile)

	profileUC.EXPECT().GetProfile(mock.Anything).Return(nil, domainerrors.ErrProfileNotFound).Once()
	rec := serve(e, http.MethodGet, "/api/users/profile", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", decodeError(t, rec).Message)

	profileUC.EXPECT().
		UpdateProfile(mock.Anything, mock.MatchedBy(func(in *usecase.UpdateProfileInput) bool {
			return in.Avatar != nil && *in.Avatar == "" && in.Name == nil
		})).
		Return(&entity.Profile{ID: entity.ProfileID, Name: "Alex", Email: "alex@example.com"}, nil)
	rec = serve(e, http.MethodPut, "/api/users/profile", `{"avatar":""}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"alex@example.com"`)
}

func TestHealthAndRoot(t *testing.T) {
	e := newTestEcho()
	e.GET("/health", HealthCheck)
	e.GET("/api", APIRoot)

	rec := serve(e, http.MethodGet, "/health", "")
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = serve(e, http.MethodGet, "/api", "")
	assert.Equal(t, "API is running!", rec.Body.String())
}

package handler

import (
	"net/http"
	"strings"
	"testing"

	"affiliate/internal/domain/entity"
	domainerrors "affiliate/internal/domain/errors"
	mockUsecase "affiliate/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newReferralTestServer(t *testing.T) (*echo.Echo, *mockUsecase.MockReferralUsecase) {
	referralUC := mockUsecase.NewMockReferralUsecase(t)
	h := NewReferralHandler(ReferralHandlerParams{ReferralUC: referralUC})

	e := newTestEcho()
	e.GET("/ref/:referralCode", h.Redirect)

	return e, referralUC
}

func TestReferralHandler_Redirect(t *testing.T) {
	e, referralUC := newReferralTestServer(t)

	referralUC.EXPECT().
		TrackClick(mock.Anything, "Ab3dE6gH", "192.0.2.1").
		Return(&entity.Product{OriginalURL: "https://shop.example.com/p/1", Clicks: 7}, nil)

	rec := serve(e, http.MethodGet, "/ref/Ab3dE6gH", "")

	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "https://shop.example.com/p/1", rec.Header().Get(echo.HeaderLocation))
	assert.Equal(t, "no-store", rec.Header().Get(echo.HeaderCacheControl))
}

func TestReferralHandler_UnknownCode(t *testing.T) {
	e, referralUC := newReferralTestServer(t)

	referralUC.EXPECT().TrackClick(mock.Anything, "nope", mock.Anything).Return(nil, domainerrors.ErrReferralCodeNotFound)

	rec := serve(e, http.MethodGet, "/ref/nope", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Header().Get(echo.HeaderLocation))
	assert.Equal(t, "Referral link is invalid", decodeError(t, rec).Message)
}

func TestReferralHandler_ImpossibleCodeSkipsStore(t *testing.T) {
	e, _ := newReferralTestServer(t)

	rec := serve(e, http.MethodGet, "/ref/"+strings.Repeat("x", 65), "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "REFERRAL_CODE_NOT_FOUND", decodeError(t, rec).Code)
}

func TestReferralHandler_StoreFailure(t *testing.T) {
	e, referralUC := newReferralTestServer(t)

	referralUC.EXPECT().
		TrackClick(mock.Anything, "Ab3dE6gH", mock.Anything).
		Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("timeout"), "failed to track referral click"))

	rec := serve(e, http.MethodGet, "/ref/Ab3dE6gH", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Header().Get(echo.HeaderLocation))
}

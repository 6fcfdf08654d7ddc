package handler

import (
	"net/http"

	"affiliate/internal/delivery/api/response"
	domainerrors "affiliate/internal/domain/errors"
	"affiliate/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReferralHandlerParams holds dependencies for ReferralHandler, injected by Fx.
type ReferralHandlerParams struct {
	fx.In

	ReferralUC usecase.ReferralUsecase
}

// ReferralHandler serves the public short links
type ReferralHandler struct {
	referralUC usecase.ReferralUsecase
}

// NewReferralHandler is the constructor for ReferralHandler
func NewReferralHandler(params ReferralHandlerParams) *ReferralHandler {
	return &ReferralHandler{
		referralUC: params.ReferralUC,
	}
}

type referralParams struct {
	ReferralCode string `param:"referralCode" validate:"required,max=64,printascii"`
}

// Redirect handles GET /ref/:referralCode. Every visit is counted, so the redirect must not be cached.
func (h *ReferralHandler) Redirect(c echo.Context) error {
	var params referralParams
	if err := (&echo.DefaultBinder{}).BindPathParams(c, &params); err != nil {
		return response.AppError(c, domainerrors.ErrReferralCodeNotFound)
	}
	// A code that cannot have been issued is simply unknown.
	if err := c.Validate(&params); err != nil {
		return response.AppError(c, domainerrors.ErrReferralCodeNotFound)
	}

	product, err := h.referralUC.TrackClick(c.Request().Context(), params.ReferralCode, c.RealIP())
	if err != nil {
		return response.AppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return c.Redirect(http.StatusMovedPermanently, product.OriginalURL)
}

package handler

import (
	"net/http"

	"affiliate/internal/delivery/api/response"
	"affiliate/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ProfileHandler serves the operator profile
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(profileUC usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{profileUC: profileUC}
}

// GetProfile handles GET /api/users/profile
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	profile, err := h.profileUC.GetProfile(c.Request().Context())
	if err != nil {
		return response.AppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// UpdateProfile handles PUT /api/users/profile
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	var input usecase.UpdateProfileInput
	if err := bindBody(c, &input); err != nil {
		return response.AppError(c, err)
	}

	profile, err := h.profileUC.UpdateProfile(c.Request().Context(), &input)
	if err != nil {
		return response.AppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

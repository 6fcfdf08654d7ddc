package handler

import (
	"net/http"

	"affiliate/internal/delivery/api/response"
	"affiliate/internal/usecase"

	"github.com/labstack/echo/v4"
)

// StatsHandler serves the dashboard summary
type StatsHandler struct {
	statsUC usecase.StatsUsecase
}

// NewStatsHandler is the constructor for StatsHandler
func NewStatsHandler(statsUC usecase.StatsUsecase) *StatsHandler {
	return &StatsHandler{statsUC: statsUC}
}

// GetStats handles GET /api/stats
func (h *StatsHandler) GetStats(c echo.Context) error {
	stats, err := h.statsUC.GetStats(c.Request().Context())
	if err != nil {
		return response.AppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

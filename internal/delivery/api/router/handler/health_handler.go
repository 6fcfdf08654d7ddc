package handler

import (
	"net/http"

	"affiliate/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness for probes.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// APIRoot answers GET /api.
func APIRoot(c echo.Context) error {
	return c.String(http.StatusOK, "API is running!")
}

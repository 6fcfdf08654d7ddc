// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"affiliate/config"
	"affiliate/internal/delivery/api/router/handler"
	"affiliate/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProductHandler  *handler.ProductHandler
	ReferralHandler *handler.ReferralHandler
	StatsHandler    *handler.StatsHandler
	ProfileHandler  *handler.ProfileHandler
	Metrics         *metrics.Metrics
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	productHandler  *handler.ProductHandler
	referralHandler *handler.ReferralHandler
	statsHandler    *handler.StatsHandler
	profileHandler  *handler.ProfileHandler
	metrics         *metrics.Metrics
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		productHandler:  params.ProductHandler,
		referralHandler: params.ReferralHandler,
		statsHandler:    params.StatsHandler,
		profileHandler:  params.ProfileHandler,
		metrics:         params.Metrics,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Public short links
	e.GET("/ref/:referralCode", r.referralHandler.Redirect)

	api := e.Group("/api")
	api.GET("", handler.APIRoot)

	productsGroup := api.Group("/products")
	{
		productsGroup.GET("", r.productHandler.ListProducts)
		productsGroup.POST("", r.productHandler.CreateProduct)
		productsGroup.GET("/:id", r.productHandler.GetProduct)
		productsGroup.PUT("/:id", r.productHandler.UpdateProduct)
		productsGroup.DELETE("/:id", r.productHandler.DeleteProduct)
		productsGroup.GET("/:id/qr", r.productHandler.ProductQRCode)
	}

	api.GET("/stats", r.statsHandler.GetStats)

	usersGroup := api.Group("/users")
	{
		usersGroup.GET("/profile", r.profileHandler.GetProfile)
		usersGroup.PUT("/profile", r.profileHandler.UpdateProfile)
	}
}

// RegisterMetricsRoute exposes the Prometheus registry when enabled.
func (r *router) RegisterMetricsRoute(e *echo.Echo) {
	if r.config.Metrics == nil || !r.config.Metrics.Enabled || r.metrics == nil {
		return
	}

	e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
}

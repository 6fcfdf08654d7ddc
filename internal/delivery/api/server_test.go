package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"affiliate/config"
	"affiliate/internal/delivery/api/router"
	"affiliate/internal/delivery/api/router/handler"
	"affiliate/internal/domain/entity"
	"affiliate/internal/infra/metrics"
	mockUsecase "affiliate/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/fx/fxtest"
)

type serverFixtures struct {
	echo       *echo.Echo
	productUC  *mockUsecase.MockProductUsecase
	referralUC *mockUsecase.MockReferralUsecase
}

func newTestServer(t *testing.T, trustProxy bool) serverFixtures {
	cfg := &config.Config{
		Metrics: &config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	cfg.HTTP.TrustProxy = trustProxy

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.New(prometheus.NewRegistry(), "affiliate", "test")

	productUC := mockUsecase.NewMockProductUsecase(t)
	referralUC := mockUsecase.NewMockReferralUsecase(t)

	params := ServerParams{
		Lc:      fxtest.NewLifecycle(t),
		Cfg:     cfg,
		Logger:  logger,
		Metrics: m,
		RouterParams: router.RouterParams{
			ProductHandler:  handler.NewProductHandler(handler.ProductHandlerParams{ProductUC: productUC}),
			ReferralHandler: handler.NewReferralHandler(handler.ReferralHandlerParams{ReferralUC: referralUC}),
			StatsHandler:    handler.NewStatsHandler(mockUsecase.NewMockStatsUsecase(t)),
			ProfileHandler:  handler.NewProfileHandler(mockUsecase.NewMockProfileUsecase(t)),
			Metrics:         m,
			Config:          cfg,
		},
	}

	return serverFixtures{echo: newEcho(params), productUC: productUC, referralUC: referralUC}
}

func (f serverFixtures) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func TestServer_Probes(t *testing.T) {
	srv := newTestServer(t, false)

	rec := srv.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	rec = srv.do(httptest.NewRequest(http.MethodGet, "/api", nil))
	assert.Equal(t, "API is running!", rec.Body.String())

	rec = srv.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "affiliate_http_requests_total")
}

func TestServer_UnknownRouteUsesEnvelope(t *testing.T) {
	srv := newTestServer(t, false)

	req := httptest.NewRequest(http.MethodGet, "/api/nothing", nil)
	req.Header.Set(echo.HeaderXRequestID, "trace-1")
	rec := srv.do(req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":{"code":"NOT_FOUND","message":"Not Found"},"meta":{"request_id":"trace-1"}}`, rec.Body.String())
}

func TestServer_BodyLimit(t *testing.T) {
	srv := newTestServer(t, false)

	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(`{"title":"`+strings.Repeat("a", 2048)+`"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := srv.do(req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestServer_ClientIP(t *testing.T) {
	tests := []struct {
		name       string
		trustProxy bool
		wantIP     string
	}{
		{name: "direct peer", trustProxy: false, wantIP: "10.0.0.5"},
		{name: "forwarded visitor", trustProxy: true, wantIP: "203.0.113.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, tt.trustProxy)
			srv.referralUC.EXPECT().
				TrackClick(mock.Anything, "Ab3dE6gH", tt.wantIP).
				Return(&entity.Product{OriginalURL: "https://shop.example.com"}, nil)

			req := httptest.NewRequest(http.MethodGet, "/ref/Ab3dE6gH", nil)
			req.RemoteAddr = "10.0.0.5:41234"
			req.Header.Set(echo.HeaderXForwardedFor, "203.0.113.50")
			rec := srv.do(req)

			assert.Equal(t, http.StatusMovedPermanently, rec.Code)
		})
	}
}

// Package metrics exposes the Prometheus instruments of the service.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"affiliate/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Redirect outcomes recorded by ObserveRedirect.
const (
	RedirectOK       = "redirected"
	RedirectNotFound = "not_found"
	RedirectError    = "error"
)

const defaultServiceName = "affiliate"

// Metrics holds the service instruments and the registry they are exposed from.
type Metrics struct {
	registry     *prometheus.Registry
	redirects    *prometheus.CounterVec
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// Provide builds the metrics registry with process and Go runtime collectors.
func Provide(cfg *config.Config) *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return New(registry, cfg.Env.ServiceName, cfg.Env.Env)
}

// New registers the instruments on registry.
func New(registry *prometheus.Registry, serviceName, environment string) *Metrics {
	serviceName = strings.TrimSpace(serviceName)
	if serviceName == "" {
		serviceName = defaultServiceName
	}
	environment = strings.TrimSpace(environment)
	if environment == "" {
		environment = "unknown"
	}
	constLabels := prometheus.Labels{
		"service": serviceName,
		"env":     environment,
	}

	redirects := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:        "affiliate_referral_redirects_total",
		Help:        "Referral link visits by outcome.",
		ConstLabels: constLabels,
	}, []string{"result"})
	httpRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:        "affiliate_http_requests_total",
		Help:        "HTTP requests by method, route and status.",
		ConstLabels: constLabels,
	}, []string{"method", "route", "status"})
	httpDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:        "affiliate_http_request_duration_seconds",
		Help:        "HTTP request latency by method and route.",
		Buckets:     []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		ConstLabels: constLabels,
	}, []string{"method", "route"})

	registry.MustRegister(redirects, httpRequests, httpDuration)

	return &Metrics{
		registry:     registry,
		redirects:    redirects,
		httpRequests: httpRequests,
		httpDuration: httpDuration,
	}
}

// ObserveRedirect counts one referral visit with the given outcome.
func (m *Metrics) ObserveRedirect(result string) {
	if m == nil {
		return
	}
	m.redirects.WithLabelValues(result).Inc()
}

// ObserveHTTPRequest records a served request. route is the registered path template.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

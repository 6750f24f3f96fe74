// Package observability exposes the Prometheus metrics recorded by the
// HTTP helper layer.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// TLS enforcement metrics
	TLSRedirectsTotal prometheus.Counter

	// Verification metrics
	NoncesIssuedTotal prometheus.Counter

	registry *prometheus.Registry
}

// NewMetrics creates and registers all Prometheus metrics
func NewMetrics(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hkpkit_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "hkpkit_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		TLSRedirectsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "hkpkit_tls_redirects_total",
				Help: "Total number of plaintext clients redirected to HTTPS",
			},
		),
		NoncesIssuedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "hkpkit_nonces_issued_total",
				Help: "Total number of verification nonces issued",
			},
		),
		registry: registry,
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.TLSRedirectsTotal,
		m.NoncesIssuedTotal,
	)

	return m
}

// Handler returns an HTTP handler for the /metrics endpoint
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ABOUTME: Prometheus implementation of the fetch metrics interface
// ABOUTME: Counts content requests by collection and outcome and records their latency

package prometheus

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics implements interfaces.Metrics on a private registry
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// New creates the collectors and registers them, together with the Go
// runtime collector, on a fresh registry.
func New(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "content_requests_total",
			Help:      "Content API requests by collection and outcome.",
		}, []string{"collection", "outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "content_request_duration_seconds",
			Help:      "Content API request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"collection"}),
	}

	m.registry.MustRegister(m.requests, m.latency, prometheus.NewGoCollector())
	return m
}

// ObserveFetch records one logical content request
func (m *Metrics) ObserveFetch(collection, outcome string, elapsed time.Duration) {
	m.requests.WithLabelValues(collection, outcome).Inc()
	m.latency.WithLabelValues(collection).Observe(elapsed.Seconds())
}

// Handler exposes the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

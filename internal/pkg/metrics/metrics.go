// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Auth failure reasons
const (
	ReasonMissing   = "missing"
	ReasonExpired   = "expired"
	ReasonInvalid   = "invalid"
	ReasonForbidden = "forbidden"
	ReasonRateLimit = "rate_limited"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Auth metrics
	AuthFailuresTotal *prometheus.CounterVec

	// Business metrics
	MappingReplacementsTotal prometheus.Counter
	SkillsCreatedTotal       prometheus.Counter
}

// NewMetrics creates and registers all metrics on a dedicated registry
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	m := &Metrics{
		registry: registry,
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skillmap_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "skillmap_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		AuthFailuresTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skillmap_auth_failures_total",
				Help: "Total number of rejected requests by reason",
			},
			[]string{"reason"},
		),
		MappingReplacementsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "skillmap_mapping_replacements_total",
				Help: "Total number of course mapping replacements",
			},
		),
		SkillsCreatedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "skillmap_skills_created_total",
				Help: "Total number of skills created",
			},
		),
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.AuthFailuresTotal,
		m.MappingReplacementsTotal,
		m.SkillsCreatedTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// RecordHTTPRequest records a completed request. path must be the route template.
func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordAuthFailure counts a rejected request
func (m *Metrics) RecordAuthFailure(reason string) {
	if m == nil {
		return
	}
	m.AuthFailuresTotal.WithLabelValues(reason).Inc()
}

// RecordMappingReplacement counts a successful mapping replacement
func (m *Metrics) RecordMappingReplacement() {
	if m == nil {
		return
	}
	m.MappingReplacementsTotal.Inc()
}

// RecordSkillCreated counts a newly inserted skill
func (m *Metrics) RecordSkillCreated() {
	if m == nil {
		return
	}
	m.SkillsCreatedTotal.Inc()
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns the exposition handler for the registry
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

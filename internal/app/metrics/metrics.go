// Package metrics exposes Prometheus instrumentation for the recommender,
// the catalog client, the importer and the HTTP API. Metrics are served at
// /metrics by the API server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Recommendations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recsys_recommendations_total",
			Help: "Total number of recommendation requests by outcome",
		},
		[]string{"outcome"}, // "ok", "empty", "not_found", "error"
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recsys_recommendation_duration_seconds",
			Help:    "Time spent computing a recommendation list, including catalog reads",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5},
		},
	)

	CandidateSetSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recsys_candidate_set_size",
			Help:    "Number of candidate tracks ranked per recommendation",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		},
	)

	CatalogRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recsys_catalog_requests_total",
			Help: "Total number of catalog service requests",
		},
		[]string{"endpoint", "status"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "recsys_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
		},
		[]string{"name"},
	)

	ImportedTracks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recsys_imported_tracks_total",
			Help: "Tracks processed by the catalog importer",
		},
		[]string{"result"}, // "created", "existing", "failed"
	)

	CacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recsys_cache_requests_total",
			Help: "Recommendation cache lookups",
		},
		[]string{"result"}, // "hit", "miss", "error"
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recsys_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recsys_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5, 10},
		},
		[]string{"method", "route"},
	)
)

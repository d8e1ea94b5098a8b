// internals/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label outcome untuk RecommendationOutcomes.
const (
	OutcomeAI           = "ai"
	OutcomeFallback     = "fallback"
	OutcomeUnavailable  = "unavailable"
	OutcomeFormatError  = "format_error"
	OutcomeServiceError = "service_error"
	OutcomeInvalidInput = "invalid_input"
)

var (
	RecommendationOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_requests_total",
			Help: "Total recommendation requests by outcome",
		},
		[]string{"outcome"},
	)

	GenerativeCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "generative_call_duration_seconds",
			Help:    "Duration of the outbound generative model call in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
		},
		[]string{"model"},
	)

	CatalogLoadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_load_errors_total",
			Help: "Catalog file read or decode failures",
		},
		[]string{"file"},
	)
)

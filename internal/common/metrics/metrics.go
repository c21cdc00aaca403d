// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests by route and status",
		},
		[]string{"route", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "api_request_duration_seconds",
			Help: "Duration of API request processing in seconds",
		},
		[]string{"route"},
	)

	ProviderCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "provider_calls_total",
			Help: "Total number of external provider calls by provider and outcome",
		},
		[]string{"provider", "outcome"},
	)

	ProviderCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "provider_call_duration_seconds",
			Help: "Duration of external provider calls in seconds",
		},
		[]string{"provider"},
	)

	ListingsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "listings_dropped_total",
			Help: "Raw results dropped during assembly by reason",
		},
		[]string{"reason"},
	)

	ExtractionFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "extraction_fallbacks_total",
			Help: "Extractions that fell back to a sentinel value by field",
		},
		[]string{"field"},
	)
)

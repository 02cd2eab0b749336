// Package metrics defines the Prometheus instrumentation for the compare
// service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics.
type Metrics struct {
	// Selection metrics
	SelectionsTotal *prometheus.CounterVec

	// Fee calculation metrics
	FeeCalculationsTotal *prometheus.CounterVec

	// Offer export metrics
	OffersExportedTotal *prometheus.CounterVec

	// Catalog drift metrics
	UnrecognizedDegreesTotal prometheus.Counter

	// HTTP metrics
	HTTPDurationSeconds *prometheus.HistogramVec
	HTTPRequestsTotal   *prometheus.CounterVec
}

// New creates a Metrics instance with all metrics registered.
func New(registry *prometheus.Registry) *Metrics {
	return &Metrics{
		SelectionsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "unifee_selections_total",
				Help: "Total number of program selections by overall match quality",
			},
			[]string{"quality"}, // quality: perfect, good, approximate, no-match
		),

		FeeCalculationsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "unifee_fee_calculations_total",
				Help: "Total number of fee calculations by university and outcome",
			},
			[]string{"university", "outcome"}, // outcome: scholarship, no_scholarship
		),

		OffersExportedTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "unifee_offers_exported_total",
				Help: "Total number of offer messages rendered by university",
			},
			[]string{"university"},
		),

		UnrecognizedDegreesTotal: promauto.With(registry).NewCounter(
			prometheus.CounterOpts{
				Name: "unifee_unrecognized_degrees_total",
				Help: "Total number of degree labels the normalizer could not canonicalize",
			},
		),

		HTTPDurationSeconds: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "unifee_http_duration_seconds",
				Help:    "HTTP request duration in seconds by route",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
			},
			[]string{"route"},
		),

		HTTPRequestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "unifee_http_requests_total",
				Help: "Total HTTP requests by route and status",
			},
			[]string{"route", "status"},
		),
	}
}

// SelectionMatched counts one program selection by match quality.
func (m *Metrics) SelectionMatched(quality string) {
	m.SelectionsTotal.WithLabelValues(quality).Inc()
}

// FeeCalculated counts one fee calculation by university and outcome.
func (m *Metrics) FeeCalculated(universityID, outcome string) {
	m.FeeCalculationsTotal.WithLabelValues(universityID, outcome).Inc()
}

// OfferExported counts one rendered offer message.
func (m *Metrics) OfferExported(universityID string) {
	m.OffersExportedTotal.WithLabelValues(universityID).Inc()
}

// UnrecognizedDegree counts one degree label that failed normalization.
func (m *Metrics) UnrecognizedDegree() {
	m.UnrecognizedDegreesTotal.Inc()
}

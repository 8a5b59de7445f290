package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the validation API. Methods are
// nil-safe so code paths without metrics wired (tests, CLI) need no guards.
type Metrics struct {
	// Validation outcomes by operation and result code.
	Validations *prometheus.CounterVec

	// BIC resolution outcomes by result.
	BICResolutions *prometheus.CounterVec

	// Per-request latency by route.
	RequestDuration *prometheus.HistogramVec

	// Bank directory lookup latency by backend.
	DirectoryLatency *prometheus.HistogramVec
}

// New creates a Metrics instance with all collectors registered on the
// default registry.
func New() *Metrics {
	return &Metrics{
		Validations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "fincode_validations_total",
			Help: "Total validation outcomes by operation and result code",
		}, []string{"operation", "result"}), // operation: "iban_parse", "iban_generate", "bic_parse"

		BICResolutions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "fincode_bic_resolutions_total",
			Help: "Total bank code to BIC resolutions by result",
		}, []string{"result"}), // result: "ok", "not_found", "error"

		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fincode_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"route", "method", "status"}),

		DirectoryLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fincode_bank_directory_duration_seconds",
			Help:    "Duration of bank directory lookups by backend",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}, []string{"backend"}), // backend: "memory", "postgres", "redis"
	}
}

// IncrementValidation records one validation outcome.
func (m *Metrics) IncrementValidation(operation, result string) {
	if m != nil {
		m.Validations.WithLabelValues(operation, result).Inc()
	}
}

// IncrementBICResolution records one BIC resolution outcome.
func (m *Metrics) IncrementBICResolution(result string) {
	if m != nil {
		m.BICResolutions.WithLabelValues(result).Inc()
	}
}

// ObserveRequestDuration records the latency of one HTTP request.
func (m *Metrics) ObserveRequestDuration(route, method, status string, d time.Duration) {
	if m != nil {
		m.RequestDuration.WithLabelValues(route, method, status).Observe(d.Seconds())
	}
}

// ObserveDirectoryLatency records the latency of one bank directory lookup.
func (m *Metrics) ObserveDirectoryLatency(backend string, d time.Duration) {
	if m != nil {
		m.DirectoryLatency.WithLabelValues(backend).Observe(d.Seconds())
	}
}

package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "resume_builder"

// Generation outcomes recorded by Metrics.GenerationDone
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeSkipped = "skipped"
)

// Metrics holds the store, rendering and export collectors.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	mutationsTotal      *prometheus.CounterVec
	persistFailures     *prometheus.CounterVec
	generationsTotal    *prometheus.CounterVec
	generationsInFlight prometheus.Gauge
	generationDuration  prometheus.Histogram
	rendersTotal        *prometheus.CounterVec
	exportsTotal        *prometheus.CounterVec
}

// NewMetrics registers every collector on a fresh registry
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		mutationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "store",
				Name:      "mutations_total",
				Help:      "Document mutations applied, by operation.",
			},
			[]string{"op"},
		),
		persistFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "store",
				Name:      "persist_failures_total",
				Help:      "Failed writes to the persisted store, by key.",
			},
			[]string{"key"},
		),
		generationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "generation",
				Name:      "requests_total",
				Help:      "Content generation requests, by outcome.",
			},
			[]string{"outcome"},
		),
		generationsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Subsystem: "generation",
				Name:      "in_flight",
				Help:      "Content generation requests currently pending.",
			},
		),
		generationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: "generation",
				Name:      "duration_seconds",
				Help:      "Gateway round-trip latency.",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 1.5, 2, 5, 10},
			},
		),
		rendersTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "rendering",
				Name:      "renders_total",
				Help:      "Documents rendered, by template.",
			},
			[]string{"template"},
		),
		exportsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "export",
				Name:      "exports_total",
				Help:      "Export calls, by format and outcome.",
			},
			[]string{"format", "outcome"},
		),
	}
}

// Registry exposes the underlying registry, mainly for tests
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Mutation counts one applied store operation
func (m *Metrics) Mutation(op string) {
	if m == nil {
		return
	}
	m.mutationsTotal.WithLabelValues(op).Inc()
}

// PersistFailed counts one failed write to the persisted store
func (m *Metrics) PersistFailed(key string) {
	if m == nil {
		return
	}
	m.persistFailures.WithLabelValues(key).Inc()
}

// GenerationStarted marks a request in flight
func (m *Metrics) GenerationStarted() {
	if m == nil {
		return
	}
	m.generationsInFlight.Inc()
}

// GenerationDone records the outcome of a request started with GenerationStarted
func (m *Metrics) GenerationDone(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.generationsInFlight.Dec()
	m.generationsTotal.WithLabelValues(outcome).Inc()
	m.generationDuration.Observe(elapsed.Seconds())
}

// GenerationSkipped records a request rejected before reaching the gateway
func (m *Metrics) GenerationSkipped() {
	if m == nil {
		return
	}
	m.generationsTotal.WithLabelValues(OutcomeSkipped).Inc()
}

// Rendered counts one rendered document
func (m *Metrics) Rendered(templateID string) {
	if m == nil {
		return
	}
	m.rendersTotal.WithLabelValues(templateID).Inc()
}

// Exported counts one export call
func (m *Metrics) Exported(format string, err error) {
	if m == nil {
		return
	}
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	m.exportsTotal.WithLabelValues(format, outcome).Inc()
}

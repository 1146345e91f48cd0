package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "vmkube"

// Metrics holds the reconcile counters. It is registered on an explicit
// registry so every test can use its own.
type Metrics struct {
	reconciliations *prometheus.CounterVec
	duration        *prometheus.HistogramVec
	failures        *prometheus.CounterVec
	componentUp     *prometheus.GaugeVec
	pingDuration    *prometheus.HistogramVec
}

// NewRegistry returns a registry with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return registry
}

// New registers the reconcile metrics on registerer.
func New(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)

	return &Metrics{
		reconciliations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reconciliations_total",
				Help:      "Total number of reconciliations.",
			},
			[]string{"kind"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "reconcile_duration_seconds",
				Help:      "Duration of reconciliations.",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"kind"},
		),
		failures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reconcile_failures_total",
				Help:      "Total number of failed reconciliations by object.",
			},
			[]string{"kind", "namespace", "name"},
		),
		componentUp: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "component_up",
				Help:      "Whether the last ping of a component succeeded.",
			},
			[]string{"component"},
		),
		pingDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "ping_duration_seconds",
				Help:      "Latency of component pings.",
				Buckets:   prometheus.ExponentialBuckets(0.001, 4, 6),
			},
			[]string{"component"},
		),
	}
}

// ObserveReconcile counts one reconciliation and records its duration.
func (m *Metrics) ObserveReconcile(kind string, duration time.Duration) {
	m.reconciliations.WithLabelValues(kind).Inc()
	m.duration.WithLabelValues(kind).Observe(duration.Seconds())
}

// ReconcileFailure increments the failure counter of one object.
func (m *Metrics) ReconcileFailure(kind, namespace, name string) {
	m.failures.WithLabelValues(kind, namespace, name).Inc()
}

// ObservePing records the outcome of a component health ping.
func (m *Metrics) ObservePing(component string, latency time.Duration, err error) {
	m.pingDuration.WithLabelValues(component).Observe(latency.Seconds())

	if err != nil {
		m.componentUp.WithLabelValues(component).Set(0)

		return
	}

	m.componentUp.WithLabelValues(component).Set(1)
}

package host

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Call outcomes recorded in wgraph_host_operations_total.
const (
	outcomeOK    = "ok"
	outcomeNoop  = "noop"
	outcomeError = "error"
)

// Metrics groups the registry's Prometheus collectors.
type Metrics struct {
	// Operations counts calls by operation and outcome (ok, noop, error).
	Operations *prometheus.CounterVec

	// LiveHandles tracks graphs created and not yet destroyed.
	LiveHandles prometheus.Gauge

	// AlgorithmSeconds measures traversal and path algorithm runtimes.
	AlgorithmSeconds *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg yields working, unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		Operations: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wgraph_host_operations_total",
				Help: "Total number of host API calls",
			},
			[]string{"op", "outcome"},
		),
		LiveHandles: f.NewGauge(
			prometheus.GaugeOpts{
				Name: "wgraph_host_live_handles",
				Help: "Number of graphs currently registered",
			},
		),
		AlgorithmSeconds: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "wgraph_host_algorithm_duration_seconds",
				Help:    "Duration of graph algorithm calls in seconds",
				Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
			},
			[]string{"algo"},
		),
	}
}

func (m *Metrics) observe(op, outcome string) {
	m.Operations.WithLabelValues(op, outcome).Inc()
}

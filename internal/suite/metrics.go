package suite

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records run results in a private Prometheus registry.
type Metrics struct {
	registry *prometheus.Registry

	runSeconds *prometheus.GaugeVec
	cpuSeconds *prometheus.GaugeVec
	tickCalls  *prometheus.CounterVec
	runs       *prometheus.CounterVec
}

// NewMetrics creates and registers the dispatch_* collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		runSeconds: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "dispatch_run_seconds",
				Help: "Wall time of the most recent run of a case",
			},
			[]string{"case"},
		),
		cpuSeconds: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "dispatch_run_cpu_seconds",
				Help: "Process CPU time of the most recent run of a case",
			},
			[]string{"case"},
		),
		tickCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dispatch_tick_calls_total",
				Help: "Total Tick calls made by a case",
			},
			[]string{"case"},
		),
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dispatch_runs_total",
				Help: "Number of completed runs of a case",
			},
			[]string{"case"},
		),
	}

	m.registry.MustRegister(m.runSeconds)
	m.registry.MustRegister(m.cpuSeconds)
	m.registry.MustRegister(m.tickCalls)
	m.registry.MustRegister(m.runs)
	return m
}

// Observe records one result.
func (m *Metrics) Observe(r Result) {
	m.runSeconds.WithLabelValues(r.Name).Set(r.Elapsed.Seconds())
	m.cpuSeconds.WithLabelValues(r.Name).Set(r.CPU.Seconds())
	m.tickCalls.WithLabelValues(r.Name).Add(float64(r.Calls))
	m.runs.WithLabelValues(r.Name).Inc()
}

// Gatherer exposes the registry.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteTextfile writes the registry in text exposition format, for the
// node_exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

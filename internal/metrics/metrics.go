// Package metrics holds the Prometheus instrumentation of report rendering.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the counters and histograms for rendered reports.
type Metrics struct {
	ReportsRendered prometheus.Counter
	RenderFailures  *prometheus.CounterVec // labels: kind={invalid_field,bad_request,io,internal}
	RenderDuration  prometheus.Histogram
	ReportBytes     prometheus.Histogram
}

func newMetrics() *Metrics {
	return &Metrics{
		ReportsRendered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "rainreport",
			Name:      "reports_rendered_total",
			Help:      "Total reports rendered successfully.",
		}),
		RenderFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rainreport",
			Name:      "render_failures_total",
			Help:      "Report requests that failed, by kind.",
		}, []string{"kind"}),
		RenderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "rainreport",
			Name:      "render_duration_seconds",
			Help:      "Time spent building and serializing one report.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		ReportBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "rainreport",
			Name:      "report_bytes",
			Help:      "Size of the rendered XLSX documents.",
			Buckets:   prometheus.ExponentialBuckets(4096, 2, 8),
		}),
	}
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.ReportsRendered,
		m.RenderFailures,
		m.RenderDuration,
		m.ReportBytes,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

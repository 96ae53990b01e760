package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "weather_report"

// Metrics holds the Prometheus counters, histograms, and gauges for report generation.
type Metrics struct {
	RunsStarted    prometheus.Counter
	RunErrors      *prometheus.CounterVec // labels: stage={extract,transform,load}
	RowsLoaded     prometheus.Counter
	RunDuration    prometheus.Histogram
	LastReportDays prometheus.Gauge

	// Sink metrics.
	ReportsPublished prometheus.Counter
}

func newMetrics() *Metrics {
	return &Metrics{
		RunsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Total pipeline runs started.",
		}),
		RunErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "run_errors_total",
			Help:      "Pipeline runs aborted, by failing stage.",
		}, []string{"stage"}),
		RowsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_loaded_total",
			Help:      "Total CSV data rows parsed into datasets.",
		}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Duration of a successful extract-transform-load run.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
		LastReportDays: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_report_days",
			Help:      "Number of days covered by the most recent report.",
		}),
		ReportsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_published_total",
			Help:      "Total reports written to the Kafka topic.",
		}),
	}
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.RunsStarted,
		m.RunErrors,
		m.RowsLoaded,
		m.RunDuration,
		m.LastReportDays,
		m.ReportsPublished,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

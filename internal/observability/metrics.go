package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the FARS toolkit.
type Metrics struct {
	FilesLoaded  prometheus.Counter
	LoadFailures prometheus.Counter
	RowsLoaded   prometheus.Counter

	SummariesBuilt prometheus.Counter
	PlotsRendered  prometheus.Counter

	LoadDuration prometheus.Histogram
}

// NewMetrics creates and registers all toolkit metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		FilesLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fars",
			Name:      "files_loaded_total",
			Help:      "Total accident data files successfully loaded.",
		}),
		LoadFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fars",
			Name:      "load_failures_total",
			Help:      "Total per-year load failures downgraded to warnings.",
		}),
		RowsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fars",
			Name:      "rows_loaded_total",
			Help:      "Total accident rows read across all loaded files.",
		}),
		SummariesBuilt: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fars",
			Name:      "summaries_built_total",
			Help:      "Total month-by-year summaries produced.",
		}),
		PlotsRendered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fars",
			Name:      "plots_rendered_total",
			Help:      "Total state accident maps written to disk.",
		}),
		LoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "fars",
			Name:      "load_duration_seconds",
			Help:      "Duration of a single file decompress-and-parse cycle.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
	}

	prometheus.MustRegister(
		m.FilesLoaded,
		m.LoadFailures,
		m.RowsLoaded,
		m.SummariesBuilt,
		m.PlotsRendered,
		m.LoadDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		FilesLoaded:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fars", Name: "files_loaded_total"}),
		LoadFailures:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fars", Name: "load_failures_total"}),
		RowsLoaded:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fars", Name: "rows_loaded_total"}),
		SummariesBuilt: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fars", Name: "summaries_built_total"}),
		PlotsRendered:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fars", Name: "plots_rendered_total"}),
		LoadDuration:   prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "fars", Name: "load_duration_seconds"}),
	}
}

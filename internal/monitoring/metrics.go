package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Data metrics
	barsLoaded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "swing_scanner_bars_loaded_total",
			Help: "Total bars loaded from data files",
		},
		[]string{"source"},
	)

	rowsSkipped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "swing_scanner_rows_skipped_total",
			Help: "Total input rows dropped during load",
		},
		[]string{"reason"},
	)

	// Scan metrics
	setupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "swing_scanner_setups_total",
			Help: "Total setups classified",
		},
		[]string{"setup", "side"},
	)

	rowsWritten = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "swing_scanner_rows_written_total",
			Help: "Total result rows written per artifact",
		},
		[]string{"artifact"},
	)

	runDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "swing_scanner_run_duration_seconds",
			Help:    "Distribution of run durations",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"command"},
	)

	// Error metrics
	errorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "swing_scanner_errors_total",
			Help: "Total number of errors",
		},
		[]string{"type"},
	)
)

func init() {
	// Register metrics
	prometheus.MustRegister(barsLoaded)
	prometheus.MustRegister(rowsSkipped)
	prometheus.MustRegister(setupsTotal)
	prometheus.MustRegister(rowsWritten)
	prometheus.MustRegister(runDuration)
	prometheus.MustRegister(errorsTotal)
}

// MetricsHandler handles Prometheus metrics endpoint
type MetricsHandler struct{}

// NewMetricsHandler creates a new metrics handler
func NewMetricsHandler() *MetricsHandler {
	return &MetricsHandler{}
}

// ServeHTTP serves the Prometheus metrics endpoint
func (m *MetricsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// RecordBarsLoaded records bars loaded from a source file
func RecordBarsLoaded(source string, n int) {
	barsLoaded.WithLabelValues(source).Add(float64(n))
}

// RecordRowSkipped records one dropped input row
func RecordRowSkipped(reason string) {
	rowsSkipped.WithLabelValues(reason).Inc()
}

// RecordSetup records a classified setup
func RecordSetup(setup, side string) {
	setupsTotal.WithLabelValues(setup, side).Inc()
}

// RecordRowsWritten records result rows written to an artifact
func RecordRowsWritten(artifact string, n int) {
	rowsWritten.WithLabelValues(artifact).Add(float64(n))
}

// ObserveRunDuration records how long a command run took
func ObserveRunDuration(command string, d time.Duration) {
	runDuration.WithLabelValues(command).Observe(d.Seconds())
}

// RecordError records an error metric
func RecordError(errorType string) {
	errorsTotal.WithLabelValues(errorType).Inc()
}

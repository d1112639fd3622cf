// Package metrics records quote counters with the Prometheus client and
// exports them in the text exposition format for node_exporter's textfile
// collector. A one-shot CLI has no scrape endpoint, so the registry is
// flushed to disk at exit instead.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/go-fortune/internal/domain"
)

const namespace = "fortune"

// Recorder implements ports.MetricsRecorder on a private registry.
type Recorder struct {
	registry *prometheus.Registry

	served   *prometheus.CounterVec
	appended prometheus.Counter
	failures *prometheus.CounterVec
	records  prometheus.Gauge
}

// NewRecorder creates a recorder with its own registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		served: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quotes_served_total",
			Help:      "Quotes printed, by requested size filter.",
		}, []string{"size"}),
		appended: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quotes_appended_total",
			Help:      "Quotes appended to the database.",
		}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "failures_total",
			Help:      "Failed invocations, by error kind.",
		}, []string{"kind"}),
		records: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "database_records",
			Help:      "Records in the quote database at last load.",
		}),
	}

	r.registry.MustRegister(r.served, r.appended, r.failures, r.records)

	return r
}

// QuoteServed counts a printed quote.
func (r *Recorder) QuoteServed(filter domain.SizeFilter) {
	r.served.WithLabelValues(filter.String()).Inc()
}

// QuoteAppended counts an appended quote.
func (r *Recorder) QuoteAppended() {
	r.appended.Inc()
}

// DatabaseRecords sets the record gauge.
func (r *Recorder) DatabaseRecords(n int) {
	r.records.Set(float64(n))
}

// Failure counts a failure of the given kind.
func (r *Recorder) Failure(kind string) {
	r.failures.WithLabelValues(kind).Inc()
}

// Gatherer exposes the registry, mainly for tests.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes the registry to path atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}

	return nil
}

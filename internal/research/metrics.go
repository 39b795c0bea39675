package research

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "digicarbon"

// Metrics counts processed responses in a private registry. Write exports
// them in the Prometheus text format for a node_exporter textfile collector.
type Metrics struct {
	registry  *prometheus.Registry
	responses *prometheus.CounterVec
	adjusted  prometheus.Counter
	daily     prometheus.Histogram
	category  *prometheus.CounterVec
}

// NewMetrics registers a fresh set of collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		responses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "responses_total",
			Help:      "Survey responses processed, by status.",
		}, []string{"status"}),
		adjusted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "responses_adjusted_total",
			Help:      "Responses with at least one clamped value.",
		}),
		daily: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "daily_footprint_kg",
			Help:      "Estimated daily footprint per response in kg CO2.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 4, 8},
		}),
		category: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "category_kg_total",
			Help:      "Sum of estimated daily kg CO2, by category.",
		}, []string{"category"}),
	}
	m.registry.MustRegister(m.responses, m.adjusted, m.daily, m.category)
	return m
}

// Registry exposes the underlying registry for gathering.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Write writes every metric to path in the text exposition format.
func (m *Metrics) Write(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("writing metrics to %s: %w", path, err)
	}
	return nil
}

func (m *Metrics) observe(e Estimate) {
	r := e.Record.Result
	m.responses.WithLabelValues("estimated").Inc()
	if len(e.Warnings) > 0 {
		m.adjusted.Inc()
	}
	m.daily.Observe(r.Total)
	m.category.WithLabelValues(CategoryDevices).Add(r.Devices)
	m.category.WithLabelValues(CategoryStreaming).Add(r.Streaming)
	m.category.WithLabelValues(CategoryAI).Add(r.AI)
	m.category.WithLabelValues(CategoryCharging).Add(r.Charging)
}

func (m *Metrics) observeSkipped() {
	m.responses.WithLabelValues("skipped").Inc()
}

package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewCounterVec creates a CounterVec with standard options and registers it
// with this Metrics instance's registry.
func (m *Metrics) NewCounterVec(name, help string, labels []string) *prometheus.CounterVec {
	counter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: name,
			Help: help,
		},
		labels,
	)
	m.Registry.MustRegister(counter)
	return counter
}

// NewHistogramVec creates a HistogramVec with configurable buckets and
// registers it with this Metrics instance's registry. Pass nil buckets to use
// the Prometheus defaults.
func (m *Metrics) NewHistogramVec(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	if buckets == nil {
		buckets = prometheus.DefBuckets
	}
	histogram := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    name,
			Help:    help,
			Buckets: buckets,
		},
		labels,
	)
	m.Registry.MustRegister(histogram)
	return histogram
}

// NewGaugeVec creates a GaugeVec for resource monitoring and registers it
// with this Metrics instance's registry.
func (m *Metrics) NewGaugeVec(name, help string, labels []string) *prometheus.GaugeVec {
	gauge := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: name,
			Help: help,
		},
		labels,
	)
	m.Registry.MustRegister(gauge)
	return gauge
}

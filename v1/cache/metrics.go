package cache

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// metricsCollector holds the Prometheus instruments for the facade. A nil
// collector is valid and turns every record method into a no-op.
type metricsCollector struct {
	hits        prometheus.Counter
	misses      prometheus.Counter
	storeErrors prometheus.Counter
	selfHeals   prometheus.Counter
	opDuration  *prometheus.HistogramVec
}

func newMetricsCollector(reg prometheus.Registerer) *metricsCollector {
	m := &metricsCollector{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sharedredis",
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Number of cache reads that returned a stored envelope.",
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sharedredis",
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Number of cache reads that found no usable entry.",
		}),
		storeErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sharedredis",
			Subsystem: "cache",
			Name:      "store_errors_total",
			Help:      "Number of store-level failures converted or propagated by the facade.",
		}),
		selfHeals: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sharedredis",
			Subsystem: "cache",
			Name:      "self_heals_total",
			Help:      "Number of corrupt entries deleted on read.",
		}),
		opDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "sharedredis",
			Subsystem: "cache",
			Name:      "operation_duration_seconds",
			Help:      "Latency of cache facade operations.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}

	reg.MustRegister(m.hits, m.misses, m.storeErrors, m.selfHeals, m.opDuration)
	return m
}

func (m *metricsCollector) hit() {
	if m != nil {
		m.hits.Inc()
	}
}

func (m *metricsCollector) miss() {
	if m != nil {
		m.misses.Inc()
	}
}

func (m *metricsCollector) storeError() {
	if m != nil {
		m.storeErrors.Inc()
	}
}

func (m *metricsCollector) selfHeal() {
	if m != nil {
		m.selfHeals.Inc()
	}
}

func (m *metricsCollector) observeDuration(operation string, d time.Duration) {
	if m != nil {
		m.opDuration.WithLabelValues(operation).Observe(d.Seconds())
	}
}

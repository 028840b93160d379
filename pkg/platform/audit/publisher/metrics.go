package publisher

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts what happens to emitted audit events, by category.
type Metrics struct {
	Tracked         *prometheus.CounterVec
	Sampled         *prometheus.CounterVec
	BufferDropped   *prometheus.CounterVec
	PersistFailures *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	return NewMetricsWith(prometheus.DefaultRegisterer)
}

func NewMetricsWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Tracked: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "phonebookd_audit_tracked_total",
			Help: "Audit events accepted for persistence",
		}, []string{"category"}),
		Sampled: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "phonebookd_audit_sampled_total",
			Help: "Audit events dropped by sampling",
		}, []string{"category"}),
		BufferDropped: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "phonebookd_audit_buffer_dropped_total",
			Help: "Audit events dropped because the async queue was full",
		}, []string{"category"}),
		PersistFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "phonebookd_audit_persist_failures_total",
			Help: "Audit events the store failed to persist",
		}, []string{"category"}),
	}
}

func (m *Metrics) incTracked(c string) {
	if m != nil {
		m.Tracked.WithLabelValues(c).Inc()
	}
}

func (m *Metrics) incSampled(c string) {
	if m != nil {
		m.Sampled.WithLabelValues(c).Inc()
	}
}

func (m *Metrics) incBufferDropped(c string) {
	if m != nil {
		m.BufferDropped.WithLabelValues(c).Inc()
	}
}

func (m *Metrics) incPersistFailures(c string) {
	if m != nil {
		m.PersistFailures.WithLabelValues(c).Inc()
	}
}

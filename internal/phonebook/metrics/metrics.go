package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Exports           *prometheus.CounterVec
	ExportedEntries   prometheus.Counter
	MergedPersons     prometheus.Counter
	BackendFailures   *prometheus.CounterVec
	GateRejections    *prometheus.CounterVec
	FdnOperations     *prometheus.CounterVec
	DriverCallLatency *prometheus.HistogramVec
	Instances         prometheus.Gauge
}

// New registers the phonebook metrics with the default registry.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers the phonebook metrics with reg. Tests pass a fresh
// prometheus.NewRegistry().
func NewWith(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Exports: f.NewCounterVec(prometheus.CounterOpts{
			Name: "phonebookd_exports_total",
			Help: "Export requests by outcome (enumerated, cached, failed)",
		}, []string{"result"}),
		ExportedEntries: f.NewCounter(prometheus.CounterOpts{
			Name: "phonebookd_export_entries_total",
			Help: "Raw entries received from drivers during export",
		}),
		MergedPersons: f.NewCounter(prometheus.CounterOpts{
			Name: "phonebookd_merged_persons_total",
			Help: "Persons assembled from marker-suffixed entries",
		}),
		BackendFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "phonebookd_backend_failures_total",
			Help: "Storage enumerations that failed and were skipped",
		}, []string{"storage"}),
		GateRejections: f.NewCounterVec(prometheus.CounterOpts{
			Name: "phonebookd_gate_rejections_total",
			Help: "Requests rejected because another operation was pending",
		}, []string{"kind"}),
		FdnOperations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "phonebookd_fdn_operations_total",
			Help: "FDN operations by kind and outcome",
		}, []string{"op", "result"}),
		DriverCallLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "phonebookd_driver_call_duration_seconds",
			Help:    "Latency of blocking driver calls",
			Buckets: prometheus.DefBuckets,
		}, []string{"op"}),
		Instances: f.NewGauge(prometheus.GaugeOpts{
			Name: "phonebookd_instances",
			Help: "Phonebook instances currently registered",
		}),
	}
}

func (m *Metrics) IncrementExports(result string) {
	m.Exports.WithLabelValues(result).Inc()
}

func (m *Metrics) AddExportedEntries(n int) {
	m.ExportedEntries.Add(float64(n))
}

func (m *Metrics) AddMergedPersons(n int) {
	m.MergedPersons.Add(float64(n))
}

func (m *Metrics) IncrementBackendFailures(storage string) {
	m.BackendFailures.WithLabelValues(storage).Inc()
}

func (m *Metrics) IncrementGateRejections(kind string) {
	m.GateRejections.WithLabelValues(kind).Inc()
}

func (m *Metrics) IncrementFdnOperations(op, result string) {
	m.FdnOperations.WithLabelValues(op, result).Inc()
}

func (m *Metrics) ObserveDriverCall(op string, start time.Time) {
	m.DriverCallLatency.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func (m *Metrics) SetInstances(n int) {
	m.Instances.Set(float64(n))
}

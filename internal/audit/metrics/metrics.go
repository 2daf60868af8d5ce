package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the audit pipeline. All methods are
// nil-safe so callers can run without metrics wired.
type Metrics struct {
	// Truth-source fetch latencies by source
	SourceLatency *prometheus.HistogramVec

	// Pipeline runs by resulting risk level
	RunsByLevel *prometheus.CounterVec

	// Runs that failed and were swallowed
	RunFailures prometheus.Counter

	// Jobs dropped because the queue was full
	QueueDrops prometheus.Counter

	// Audit cases created
	CasesCreated prometheus.Counter
}

// New creates a Metrics instance with all audit pipeline metrics registered.
func New() *Metrics {
	return &Metrics{
		SourceLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hesabu_audit_source_duration_seconds",
			Help:    "Duration of truth-data fetches by source",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"source"}),

		RunsByLevel: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "hesabu_audit_runs_total",
			Help: "Total completed risk analysis runs by risk level",
		}, []string{"level"}),

		RunFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hesabu_audit_run_failures_total",
			Help: "Total risk analysis runs that failed and were swallowed",
		}),

		QueueDrops: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hesabu_audit_queue_drops_total",
			Help: "Total audit jobs dropped because the queue was full",
		}),

		CasesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hesabu_audit_cases_created_total",
			Help: "Total audit cases created",
		}),
	}
}

// ObserveSourceLatency records the duration of one truth-data fetch.
func (m *Metrics) ObserveSourceLatency(source string, d time.Duration) {
	if m != nil {
		m.SourceLatency.WithLabelValues(source).Observe(d.Seconds())
	}
}

// IncrementRun records a completed run by level.
func (m *Metrics) IncrementRun(level string) {
	if m != nil {
		m.RunsByLevel.WithLabelValues(level).Inc()
	}
}

// IncrementRunFailure records a swallowed pipeline failure.
func (m *Metrics) IncrementRunFailure() {
	if m != nil {
		m.RunFailures.Inc()
	}
}

// IncrementQueueDrop records a job dropped at enqueue time.
func (m *Metrics) IncrementQueueDrop() {
	if m != nil {
		m.QueueDrops.Inc()
	}
}

// IncrementCaseCreated records a persisted audit case.
func (m *Metrics) IncrementCaseCreated() {
	if m != nil {
		m.CasesCreated.Inc()
	}
}

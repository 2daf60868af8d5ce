// Package metrics provides Prometheus instrumentation for the filing
// workflow.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the filing workflow metric collectors. A nil *Metrics is
// valid and records nothing, so tests and callers that do not care about
// instrumentation can pass nil.
type Metrics struct {
	SessionsStarted  *prometheus.CounterVec
	AnswersAccepted  prometheus.Counter
	AnswersRejected  prometheus.Counter
	FilingsCompleted *prometheus.CounterVec
}

// New creates a Metrics instance with all filing workflow metrics registered.
func New() *Metrics {
	return &Metrics{
		SessionsStarted: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "hesabu_filing_sessions_started_total",
			Help: "Filing sessions started by filing type",
		}, []string{"filing_type"}),

		AnswersAccepted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hesabu_filing_answers_accepted_total",
			Help: "Answers that passed validation and were recorded",
		}),

		AnswersRejected: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hesabu_filing_answers_rejected_total",
			Help: "Answers rejected by validation",
		}),

		FilingsCompleted: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "hesabu_filing_completed_total",
			Help: "Filings that reached final computation by filing type",
		}, []string{"filing_type"}),
	}
}

func (m *Metrics) IncrementSessionStarted(filingType string) {
	if m == nil {
		return
	}
	m.SessionsStarted.WithLabelValues(filingType).Inc()
}

func (m *Metrics) IncrementAnswerAccepted() {
	if m == nil {
		return
	}
	m.AnswersAccepted.Inc()
}

func (m *Metrics) IncrementAnswerRejected() {
	if m == nil {
		return
	}
	m.AnswersRejected.Inc()
}

func (m *Metrics) IncrementFilingCompleted(filingType string) {
	if m == nil {
		return
	}
	m.FilingsCompleted.WithLabelValues(filingType).Inc()
}

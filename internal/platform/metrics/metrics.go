package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments for the deletion workflow.
type Metrics struct {
	DeletionRequested     prometheus.Counter
	DeletionCompleted     prometheus.Counter
	DeletionBlocked       prometheus.Counter
	DeletionCancelled     prometheus.Counter
	AnonymizationDuration prometheus.Histogram
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		DeletionRequested: promauto.NewCounter(prometheus.CounterOpts{
			Name: "markethub_deletion_requests_total",
			Help: "Total number of account deletion requests accepted",
		}),
		DeletionCompleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "markethub_deletion_completed_total",
			Help: "Total number of account deletions completed (user anonymized)",
		}),
		DeletionBlocked: promauto.NewCounter(prometheus.CounterOpts{
			Name: "markethub_deletion_blocked_total",
			Help: "Total number of deletion confirmations blocked by re-validation",
		}),
		DeletionCancelled: promauto.NewCounter(prometheus.CounterOpts{
			Name: "markethub_deletion_cancelled_total",
			Help: "Total number of deletion requests cancelled by their owner",
		}),
		AnonymizationDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "markethub_anonymization_duration_seconds",
			Help:    "Time spent scrubbing a user and its dependent aggregates",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// IncRequested increments the accepted-request counter by 1.
func (m *Metrics) IncRequested() {
	if m != nil {
		m.DeletionRequested.Inc()
	}
}

// IncCompleted increments the completed-deletion counter by 1.
func (m *Metrics) IncCompleted() {
	if m != nil {
		m.DeletionCompleted.Inc()
	}
}

// IncBlocked increments the blocked-confirmation counter by 1.
func (m *Metrics) IncBlocked() {
	if m != nil {
		m.DeletionBlocked.Inc()
	}
}

// IncCancelled increments the cancelled-request counter by 1.
func (m *Metrics) IncCancelled() {
	if m != nil {
		m.DeletionCancelled.Inc()
	}
}

// ObserveAnonymization records the duration of one anonymization pass.
func (m *Metrics) ObserveAnonymization(seconds float64) {
	if m != nil {
		m.AnonymizationDuration.Observe(seconds)
	}
}

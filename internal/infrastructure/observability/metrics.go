// Package observability exposes Prometheus metrics for the job lifecycle
// engine. Counters are registered on the default registry and served by the
// /metrics route.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "job_status_transitions_total",
		Help: "Committed job status transitions by from/to state.",
	}, []string{"from", "to"})

	handshakeVerifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "handshake_verifications_total",
		Help: "Handshake code verification attempts by side and outcome.",
	}, []string{"side", "outcome"})

	billingsFinalized = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "billings_finalized_total",
		Help: "Billing records computed at job completion, by billing mode.",
	}, []string{"mode"})

	payoutsHeld = promauto.NewCounter(prometheus.CounterOpts{
		Name: "payouts_held_total",
		Help: "Billing records finalized with the payout held by a dispute.",
	})
)

// RecordTransition counts a committed status transition.
func RecordTransition(from, to string) {
	transitionsTotal.WithLabelValues(from, to).Inc()
}

// RecordVerification counts a handshake verification attempt.
// side is "start" or "end"; outcome is "ok", "invalid", "expired",
// "consumed", "missing" or "conflict".
func RecordVerification(side, outcome string) {
	handshakeVerifications.WithLabelValues(side, outcome).Inc()
}

// RecordBillingFinalized counts a newly computed billing record.
func RecordBillingFinalized(mode string, held bool) {
	billingsFinalized.WithLabelValues(mode).Inc()
	if held {
		payoutsHeld.Inc()
	}
}

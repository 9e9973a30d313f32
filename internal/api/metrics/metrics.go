// Package metrics defines the custom Prometheus metrics of the hotel API.
// HTTP request metrics come from the echoprometheus middleware; this package
// only holds the domain counters. All metrics register with the default
// registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hotel"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "rejected"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Entity metrics ────────────────────────────────────────────────────────────

// EntityOpsTotal counts successful mutations of stored entities.
// Labels:
//   - entity: "rooms" or "customers"
//   - op: "create", "update" or "delete"
var EntityOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entity_operations_total",
		Help:      "Total number of successful entity mutations, by entity and operation.",
	},
	[]string{"entity", "op"},
)

// Recorder feeds the service counters above.
type Recorder struct{}

func NewRecorder() Recorder { return Recorder{} }

func (Recorder) LoginAttempt(result string) {
	LoginsTotal.WithLabelValues(result).Inc()
}

func (Recorder) EntityOp(entity, op string) {
	EntityOpsTotal.WithLabelValues(entity, op).Inc()
}

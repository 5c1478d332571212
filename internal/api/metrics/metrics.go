// Package metrics defines the gateway's custom Prometheus metrics. It is
// the single source of truth for metric names, labels, and help strings.
// Metrics register themselves with the default registry via promauto;
// the /metrics endpoint is wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "admingw"

// ── Backend client metrics ────────────────────────────────────────────────────

// BackendRequestsTotal counts calls made to the platform backend.
// Labels:
//   - op: the typed client operation (e.g. "list_pending_listings")
//   - outcome: "ok", "server", "auth", "validation" or "connection"
var BackendRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_requests_total",
		Help:      "Total number of requests issued to the platform backend.",
	},
	[]string{"op", "outcome"},
)

// BackendRequestDuration measures the round-trip time of backend calls.
var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Duration of platform backend round trips.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"op"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// AuthFailuresTotal counts backend responses that invalidated a session.
var AuthFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of backend authentication failures that cleared a session.",
	},
)

// LoginsTotal counts staff login attempts by result.
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of staff login attempts.",
	},
	[]string{"result"},
)

// ── Moderation metrics ────────────────────────────────────────────────────────

// ModerationActionsTotal counts moderation actions taken through the gateway.
// Labels:
//   - entity: "user" or "listing"
//   - action: "approve", "reject", "delete", "toggle_admin", "toggle_approval"
//   - outcome: "ok" or "error"
var ModerationActionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "moderation_actions_total",
		Help:      "Total number of moderation actions, by entity, action and outcome.",
	},
	[]string{"entity", "action", "outcome"},
)

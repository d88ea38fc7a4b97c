// Package metrics defines and registers all custom Prometheus metrics for
// the manufacturing operations API. It is the single source of truth for
// metric names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "manufacturing"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", or "inactive_account"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthRejectionsTotal counts requests rejected at the auth gate.
// Label:
//   - reason: "missing_token", "invalid_token", "unknown_user", "inactive_account", "insufficient_role"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected before reaching a handler.",
	},
	[]string{"reason"},
)

// ── Production metrics ────────────────────────────────────────────────────────

// EntriesCreatedTotal counts newly recorded production entries.
// Label:
//   - shift: the reported shift, or "unspecified"
var EntriesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entries_created_total",
		Help:      "Total number of production entries recorded, by shift.",
	},
	[]string{"shift"},
)

// ExportsTotal counts CSV exports served.
var ExportsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exports_total",
		Help:      "Total number of CSV exports served.",
	},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationQueueDepth tracks the number of notifications waiting in each
// dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var NotificationQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notification_queue_depth",
		Help:      "Current number of notifications pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

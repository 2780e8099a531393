// Package metrics defines and registers all custom Prometheus metrics for
// the jobtrack API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default registry via promauto at package
// load; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "jobtrack"

// LoginsTotal counts login attempts that reached a verdict.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// LoginsThrottledTotal counts logins rejected by the failed-attempt throttle.
var LoginsThrottledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_throttled_total",
		Help:      "Total number of login attempts rejected by the throttle.",
	},
)

// JobsCreatedTotal counts newly created job cards.
var JobsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_created_total",
		Help:      "Total number of jobs created.",
	},
)

// JobStatusUpdatesTotal counts job updates that changed the status field.
// Label:
//   - status: the status written ("In Process" or "Done")
var JobStatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "job_status_updates_total",
		Help:      "Total number of job status updates, by resulting status.",
	},
	[]string{"status"},
)

// AuditEventsProcessedTotal counts audit events persisted successfully.
// Labels:
//   - entity: "job" or "user"
//   - action: "create", "update", or "delete"
var AuditEventsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_processed_total",
		Help:      "Total number of audit events written to the trail.",
	},
	[]string{"entity", "action"},
)

// AuditEventsErrorsTotal counts audit events that failed to persist.
var AuditEventsErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_errors_total",
		Help:      "Total number of audit events that failed to persist.",
	},
)

// AuditQueueDepth tracks the current number of audit events waiting in each
// dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

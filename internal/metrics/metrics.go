// Package metrics defines and registers all custom Prometheus metrics for
// the drinkwise client. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// package init via promauto; embedding programs decide whether to expose
// them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "drinkwise"

// RequestsTotal counts logical API calls by final outcome.
// Labels:
//   - method: HTTP method of the call (e.g. "GET")
//   - outcome: "success", "unauthenticated", "session_expired",
//     "request_failed" or "network_error"
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Total number of logical API calls, by method and outcome.",
	},
	[]string{"method", "outcome"},
)

// RequestDuration measures one logical call end-to-end, including a refresh
// round trip and retry when one happened.
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "request_duration_seconds",
		Help:      "Duration of logical API calls from dispatch to resolution.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method"},
)

// TokenRefreshTotal counts refresh exchanges actually issued (single-flight
// waiters share one exchange and one increment).
// Label:
//   - result: "success" or "failure"
var TokenRefreshTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_refresh_total",
		Help:      "Total number of refresh-token exchanges, by result.",
	},
	[]string{"result"},
)

// RetriesTotal counts calls that were re-issued after a successful refresh.
var RetriesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "retries_total",
		Help:      "Total number of calls retried after a token refresh.",
	},
)

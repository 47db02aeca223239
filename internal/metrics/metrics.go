// Package metrics defines the Prometheus instrumentation for the console
// suite. It is the single source of truth for metric names, labels, and help
// strings; metrics register themselves with the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "console"

// Dispatcher outcome label values.
const (
	OutcomeOK          = "ok"
	OutcomeRejected    = "rejected"
	OutcomeNetworkErr  = "network_error"
	OutcomeAuthExpired = "auth_expired"
)

// RequestsTotal counts dispatched HTTP calls.
// Labels:
//   - feature: the console issuing the call ("auth", "currency", "catalog")
//   - outcome: "ok", "rejected", "network_error" or "auth_expired"
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Total number of HTTP calls issued by the request dispatcher.",
	},
	[]string{"feature", "outcome"},
)

// RequestDuration measures the wall time of a dispatched call, from issuing
// the request to reading the full response body.
// Label:
//   - feature: the console issuing the call
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "request_duration_seconds",
		Help:      "Duration of dispatched HTTP calls.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"feature"},
)

// ValidationsTotal counts inputs rejected before any network call.
// Label:
//   - feature: the console that rejected the input
var ValidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validations_rejected_total",
		Help:      "Total number of user inputs rejected by pre-flight validation.",
	},
	[]string{"feature"},
)

// Package metrics defines and registers the Prometheus metrics for the
// jobboard API client. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry on package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "jobboard_client"

// Request outcomes.
const (
	OutcomeSuccess    = "success"
	OutcomeEmpty      = "empty"
	OutcomeBackend    = "backend_error"
	OutcomeNoResponse = "no_response"
	OutcomeDispatch   = "dispatch_error"
)

// RequestsTotal counts Gateway requests.
// Labels:
//   - method: HTTP method
//   - outcome: one of the Outcome* constants
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Total number of backend requests issued by the client, by outcome.",
	},
	[]string{"method", "outcome"},
)

// RequestDuration measures round trips that produced a response.
// Label:
//   - method: HTTP method
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "request_duration_seconds",
		Help:      "Duration of backend round trips that produced a response.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method"},
)

// TokenClearsTotal counts 401 responses that cleared the persisted token.
var TokenClearsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_clears_total",
		Help:      "Total number of times a 401 response cleared the persisted token.",
	},
)

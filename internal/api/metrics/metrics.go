// Package metrics defines and registers all custom Prometheus metrics for
// the career assistant. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "assistant"

// TurnsTotal counts processed conversation turns.
// Label:
//   - outcome: "ok", "fallback" (LLM reply failed), or "error"
var TurnsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "turns_total",
		Help:      "Total number of conversation turns processed, by outcome.",
	},
	[]string{"outcome"},
)

// LLMRequestsTotal counts chat-completion calls.
// Labels:
//   - kind: "reply", "greeting", "intent", or "sufficiency"
//   - outcome: "ok" or "error"
var LLMRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "llm_requests_total",
		Help:      "Total number of chat-completion requests, by kind and outcome.",
	},
	[]string{"kind", "outcome"},
)

// LLMRequestDuration measures chat-completion latency.
// Label:
//   - kind: "reply", "greeting", "intent", or "sufficiency"
var LLMRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "llm_request_duration_seconds",
		Help:      "Duration of chat-completion requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"kind"},
)

// ClassifierDecisionsTotal counts the gating classifier outcomes.
// Labels:
//   - classifier: "intent" or "sufficiency"
//   - decision: "positive", "negative", or "error" (fail-closed as negative)
var ClassifierDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "classifier_decisions_total",
		Help:      "Total number of handoff classifier decisions.",
	},
	[]string{"classifier", "decision"},
)

// HandoffsTotal counts recommendation-pipeline dispatches.
// Label:
//   - result: "ok", "error", or "suppressed" (duplicate within guard window)
var HandoffsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "handoffs_total",
		Help:      "Total number of recommendation pipeline dispatches, by result.",
	},
	[]string{"result"},
)

// VectorIndexErrorsTotal counts swallowed vector-store failures. The
// conversation turn still succeeds when this increments.
var VectorIndexErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "vector_index_errors_total",
		Help:      "Total number of vector index failures that were logged and ignored.",
	},
)

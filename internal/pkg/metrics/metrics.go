// Package metrics exposes the Prometheus collectors of the pricing service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dynamic_pricing"

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "path"},
	)
)

var (
	RuleEvaluationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rule_evaluations_total",
			Help:      "Rule evaluations by rule type and outcome.",
		},
		[]string{"rule_type", "outcome"},
	)

	PriceChangesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "price_changes_total",
			Help:      "Recorded price changes by source.",
		},
		[]string{"source"},
	)

	OutboxPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outbox_published_total",
			Help:      "Outbox events relayed, by topic and result.",
		},
		[]string{"topic", "result"},
	)

	RuleCacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rule_cache_lookups_total",
			Help:      "Active rule cache lookups by result (hit, miss, error).",
		},
		[]string{"result"},
	)

	RulesExpiredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rules_expired_total",
			Help:      "Rules moved to expired by the expiry worker.",
		},
	)
)

func RecordHTTPRequest(method, path, status string, seconds float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(seconds)
}

func RecordEvaluation(ruleType, outcome string) {
	RuleEvaluationsTotal.WithLabelValues(ruleType, outcome).Inc()
}

func RecordPriceChange(source string) {
	PriceChangesTotal.WithLabelValues(source).Inc()
}

func RecordOutboxPublish(topic string, ok bool) {
	result := "ok"
	if !ok {
		result = "error"
	}
	OutboxPublishedTotal.WithLabelValues(topic, result).Inc()
}

func RecordCacheLookup(result string) {
	RuleCacheLookupsTotal.WithLabelValues(result).Inc()
}

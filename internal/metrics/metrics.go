package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels shared by the guard and the account service
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Metrics holds the collectors exposed on /metrics
type Metrics struct {
	Requests       *prometheus.CounterVec
	RequestLatency *prometheus.HistogramVec
	GuardDecisions *prometheus.CounterVec
	AccountEvents  *prometheus.CounterVec
}

// New registers all collectors on reg. Pass a fresh prometheus.NewRegistry()
// per router so independent routers (and tests) never collide.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests served, by method, route and status code.",
		}, []string{"method", "route", "status"}),

		RequestLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency, by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),

		GuardDecisions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "identity_guard_decisions_total",
			Help: "Identity guard decisions, by outcome (missing, invalid, valid).",
		}, []string{"outcome"}),

		AccountEvents: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "account_events_total",
			Help: "Registration and login attempts, by operation and outcome.",
		}, []string{"operation", "outcome"}),
	}
}

// Noop returns collectors registered on a throwaway registry
func Noop() *Metrics {
	return New(prometheus.NewRegistry())
}

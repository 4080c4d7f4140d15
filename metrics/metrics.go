package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "tagnpark"

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	SubscriptionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "waitlist_subscriptions_total",
			Help:      "Waitlist signups forwarded to the contacts provider, by outcome.",
		},
		[]string{"provider", "result"},
	)

	SignupEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "waitlist_signup_events_total",
			Help:      "Signup events published, by outcome.",
		},
		[]string{"result"},
	)
)

const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

var registerOnce sync.Once

// MustRegister registers all collectors with the default registry.
// Calling it more than once is a no-op.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			HTTPRequestsTotal,
			HTTPRequestDurationSeconds,
			SubscriptionsTotal,
			SignupEventsTotal,
		)
	})
}

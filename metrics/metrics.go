package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "amusicbible",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "amusicbible",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
	checkoutSessions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "amusicbible",
			Subsystem: "checkout",
			Name:      "sessions_total",
			Help:      "Checkout session requests by outcome.",
		},
		[]string{"outcome"},
	)
	webhookEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "amusicbible",
			Subsystem: "webhook",
			Name:      "events_total",
			Help:      "Payment webhook events by type and outcome.",
		},
		[]string{"type", "outcome"},
	)
	membershipTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "amusicbible",
			Subsystem: "membership",
			Name:      "transitions_total",
			Help:      "Membership applications accepted or rejected.",
		},
		[]string{"transition"},
	)
)

func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, checkoutSessions, webhookEvents, membershipTransitions)
	})
}

func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	Register()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(method, path, statusLabel).Observe(duration.Seconds())
}

func RecordCheckoutSession(outcome string) {
	Register()
	checkoutSessions.WithLabelValues(outcome).Inc()
}

func RecordWebhookEvent(eventType, outcome string) {
	Register()
	webhookEvents.WithLabelValues(eventType, outcome).Inc()
}

func RecordMembershipTransition(transition string) {
	Register()
	membershipTransitions.WithLabelValues(transition).Inc()
}

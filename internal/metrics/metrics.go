package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "messageboard"

// Outcome labels.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

var (
	StoreRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "store",
		Name:      "requests_total",
		Help:      "Calls to the remote message API by operation and outcome.",
	}, []string{"op", "outcome"})

	StoreDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "store",
		Name:      "request_duration_seconds",
		Help:      "Latency of calls to the remote message API.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"op"})

	ReactionAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "board",
		Name:      "reaction_attempts_total",
		Help:      "Optimistic reactions by final status.",
	}, []string{"status"})

	Submissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "board",
		Name:      "submissions_total",
		Help:      "Message submissions by final phase.",
	}, []string{"phase"})
)

// ObserveStore records one remote call.
func ObserveStore(op string, started time.Time, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	StoreRequests.WithLabelValues(op, outcome).Inc()
	StoreDuration.WithLabelValues(op).Observe(time.Since(started).Seconds())
}

// Handler returns an http.Handler for Prometheus scraping.
func Handler() http.Handler {
	return promhttp.Handler()
}

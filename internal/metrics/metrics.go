// Package metrics registers the Prometheus collectors for vote widgets.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// VotesTotal counts vote intents by widget role, intent and outcome
	VotesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "paperhub_votes_total",
		Help: "Vote intents by role, intent and outcome",
	}, []string{"role", "intent", "outcome"})

	// VoteMutationDuration tracks how long the remote vote call takes
	VoteMutationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "paperhub_vote_mutation_duration_seconds",
		Help:    "Remote vote mutation latency in seconds",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 10), // 10ms to ~5s
	}, []string{"role"})

	// ResyncsTotal counts forced overwrites from authoritative props
	ResyncsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "paperhub_vote_resyncs_total",
		Help: "Forced resyncs after the authoritative vote type changed",
	}, []string{"role"})

	// ViewStateErrors counts view-state cache failures that were degraded
	// to a fresh mount
	ViewStateErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "paperhub_viewstate_errors_total",
		Help: "View state load/save failures",
	}, []string{"op"})
)

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Package metrics holds the Prometheus collectors for dispatch and scheduling.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is the custom prometheus registry served on /metrics.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

var SuggestionsGenerated = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "dispatch",
	Name:      "suggestions_generated_total",
	Help:      "Dispatch suggestions persisted",
})

// SuggestionOutcomes counts suggestions by final status (accepted, rejected,
// auto_assigned, expired).
var SuggestionOutcomes = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "dispatch",
	Name:      "suggestion_outcomes_total",
	Help:      "Dispatch suggestion outcomes by status",
}, []string{"status"})

// ScheduleAssignments counts assign calls by result: created, conflict,
// overridden, contended.
var ScheduleAssignments = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "schedule",
	Name:      "assignments_total",
	Help:      "Schedule assignment attempts by result",
}, []string{"result"})

var ScheduleAssignRetries = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "schedule",
	Name:      "assign_retries_total",
	Help:      "Optimistic retries caused by a concurrent write to the same technician day",
})

var RouteMinutesSaved = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "route",
	Name:      "minutes_saved",
	Help:      "Drive minutes saved by route optimization per technician day",
	Buckets:   []float64{0, 1, 5, 10, 15, 30, 45, 60, 90, 120},
})

// RoutingRequests counts routing provider calls by outcome: ok, error,
// timeout, fallback.
var RoutingRequests = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "routing",
	Name:      "requests_total",
	Help:      "Routing provider calls by outcome",
}, []string{"outcome"})

var HTTPRequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "http",
	Name:      "request_duration_seconds",
	Help:      "HTTP request latency by route and status",
	Buckets:   prometheus.DefBuckets,
}, []string{"method", "route", "status"})

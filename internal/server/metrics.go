package server

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const subsystem = "bigfive"

// Submission outcomes recorded in results_submitted_total.
const (
	OutcomeCreated = "created"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// Registry holds every metric the results service exposes on /metrics.
var Registry = prometheus.NewRegistry()

var (
	resultsSubmitted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Subsystem: subsystem,
			Name:      "results_submitted_total",
			Help:      "Count of result submissions by outcome.",
		},
		[]string{"outcome"},
	)
	resultsFetched = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Subsystem: subsystem,
			Name:      "results_fetched_total",
			Help:      "Count of result lookups by whether the result was found.",
		},
		[]string{"found"},
	)
	submissionTimeElapsed = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Subsystem: subsystem,
			Name:      "submission_time_elapsed_seconds",
			Help:      "Time respondents spent answering, as reported with each accepted submission.",
			// 1 minute to roughly 2 hours.
			Buckets: prometheus.ExponentialBuckets(60, 2, 8),
		},
	)
)

var registerMetrics sync.Once

// RegisterMetrics registers all metrics with Registry.
func RegisterMetrics() {
	registerMetrics.Do(func() {
		Registry.MustRegister(resultsSubmitted)
		Registry.MustRegister(resultsFetched)
		Registry.MustRegister(submissionTimeElapsed)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

// RecordSubmission counts a submission with the given outcome.
func RecordSubmission(outcome string) {
	resultsSubmitted.WithLabelValues(outcome).Inc()
}

// RecordTimeElapsed observes the answering time of an accepted submission.
func RecordTimeElapsed(seconds int) {
	submissionTimeElapsed.Observe(float64(seconds))
}

// RecordFetch counts a result lookup.
func RecordFetch(found bool) {
	label := "false"
	if found {
		label = "true"
	}
	resultsFetched.WithLabelValues(label).Inc()
}

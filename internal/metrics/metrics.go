// Package metrics defines the Prometheus collectors for the feedback engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Classification Metrics
var (
	// ClassificationsTotal tracks classified comments by resulting sentiment label
	ClassificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedback_classifications_total",
			Help: "Total comments classified by resulting sentiment label",
		},
		[]string{"sentiment"},
	)

	// ClassificationDuration tracks classification latency in seconds
	ClassificationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "feedback_classification_duration_seconds",
			Help:    "Sentiment classification duration in seconds",
			Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
		},
	)

	// UrgentClassificationsTotal tracks classifications that triaged as high urgency
	UrgentClassificationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "feedback_urgent_classifications_total",
			Help: "Total classifications with high urgency",
		},
	)
)

// Submission & Workflow Metrics
var (
	// SubmissionsTotal tracks accepted submissions by category
	SubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedback_submissions_total",
			Help: "Total accepted feedback submissions by category",
		},
		[]string{"category"},
	)

	// SubmissionsRejectedTotal tracks submissions rejected during validation
	SubmissionsRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedback_submissions_rejected_total",
			Help: "Total submissions rejected during validation by reason",
		},
		[]string{"reason"},
	)

	// StatusTransitionsTotal tracks workflow status transitions
	StatusTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedback_status_transitions_total",
			Help: "Total workflow status transitions by target status",
		},
		[]string{"status"},
	)
)

// Repository Metrics
var (
	// StoreOpsTotal tracks repository operations by operation and status
	StoreOpsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedback_store_operations_total",
			Help: "Total repository operations by operation and status",
		},
		[]string{"operation", "status"},
	)

	// StoreOpDuration tracks repository operation latency in seconds
	StoreOpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "feedback_store_operation_duration_seconds",
			Help:    "Repository operation duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation"},
	)
)

// Summary Metrics
var (
	// SummariesComputedTotal tracks aggregate summary computations
	SummariesComputedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "feedback_summaries_computed_total",
			Help: "Total aggregate summaries computed from a record snapshot",
		},
	)

	// SummaryCacheHits tracks summaries served from the Redis cache
	SummaryCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "feedback_summary_cache_hits_total",
			Help: "Total summary lookups served from cache",
		},
	)

	// SummaryCacheMisses tracks summary lookups that fell through to recomputation
	SummaryCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "feedback_summary_cache_misses_total",
			Help: "Total summary lookups that required recomputation",
		},
	)
)

// Build Information Metrics
var (
	// BuildInfo is a gauge that always returns 1, with build metadata as labels
	BuildInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "build_info",
			Help: "Build information with version, commit, and go_version labels (value is always 1)",
		},
		[]string{"version", "commit", "go_version"},
	)
)

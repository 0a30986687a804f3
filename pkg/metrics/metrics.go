// Package metrics registers the prometheus collectors shared across the
// lending pipeline and review components.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that
// can be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	// PipelineRuns counts finished workflow runs by overall status
	// (approved, rejected, under_review, error).
	PipelineRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lending",
		Name:      "pipeline_runs_total",
		Help:      "Finished workflow runs by overall status.",
	}, []string{"status"})

	// StageDecisions counts stage evaluations by stage and decision.
	StageDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lending",
		Name:      "stage_decisions_total",
		Help:      "Stage evaluations by stage and decision.",
	}, []string{"stage", "decision"})

	// StageDuration observes per-stage evaluation latency.
	StageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "lending",
		Name:      "stage_duration_seconds",
		Help:      "Stage evaluation latency.",
		Buckets:   DefaultBuckets,
	}, []string{"stage"})

	// ReviewTasksEnqueued counts review tasks created or updated by priority.
	ReviewTasksEnqueued = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lending",
		Name:      "review_tasks_enqueued_total",
		Help:      "Review tasks enqueued by priority.",
	}, []string{"priority"})

	// VerificationFailures counts best-effort lookups that failed or timed
	// out, by source.
	VerificationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lending",
		Name:      "verification_failures_total",
		Help:      "Best-effort third-party lookups that failed, by source.",
	}, []string{"source"})
)

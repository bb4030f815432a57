// Package metrics provides Prometheus metrics for the search pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SearchTotal counts searches by result status.
	SearchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pharma_search",
			Name:      "search_total",
			Help:      "Total number of search requests",
		},
		[]string{"status"},
	)

	// StageDuration measures pipeline stage duration.
	StageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "pharma_search",
			Name:      "stage_duration_seconds",
			Help:      "Duration of search pipeline stages in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"stage"},
	)

	// StageOutcomes counts stage outcomes by status (ok, fallback, skipped).
	StageOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pharma_search",
			Name:      "stage_outcome_total",
			Help:      "Total number of stage outcomes",
		},
		[]string{"stage", "status"},
	)

	// CandidatesFound observes post-admission candidate counts.
	CandidatesFound = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "pharma_search",
			Name:      "candidates_found",
			Help:      "Distribution of admitted candidate counts",
			Buckets:   []float64{0, 1, 5, 10, 20, 50, 100},
		},
	)

	// ResultCacheTotal counts result cache lookups.
	ResultCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pharma_search",
			Name:      "result_cache_total",
			Help:      "Total number of result cache lookups",
		},
		[]string{"result"},
	)
)

// ObserveStage records a stage duration measured from start.
func ObserveStage(stage string, start time.Time) {
	StageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
}

// RecordOutcome records a stage outcome.
func RecordOutcome(stage, status string) {
	StageOutcomes.WithLabelValues(stage, status).Inc()
}

// RecordSearch records a finished search.
func RecordSearch(status string, candidates int) {
	SearchTotal.WithLabelValues(status).Inc()
	CandidatesFound.Observe(float64(candidates))
}

// RecordCache records a result cache hit or miss.
func RecordCache(hit bool) {
	if hit {
		ResultCacheTotal.WithLabelValues("hit").Inc()
		return
	}
	ResultCacheTotal.WithLabelValues("miss").Inc()
}

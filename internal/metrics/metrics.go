package metrics

import (
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultHit   = "hit"
	ResultMiss  = "miss"
	ResultError = "error"
)

var (
	// List cache
	ListCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "list_cache_lookups_total",
			Help: "List cache lookups by list and result (hit, miss, error)",
		},
		[]string{"list", "result"},
	)

	ListBuildDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "list_build_duration_seconds",
			Help:    "Time spent building a list on a cache miss",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"list"},
	)

	ListBuildErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "list_build_errors_total",
			Help: "List builds that failed",
		},
		[]string{"list"},
	)

	ListBuildsShared = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "list_builds_shared_total",
			Help: "Concurrent misses served by an in-flight build of the same key",
		},
		[]string{"list"},
	)

	// Invalidation
	InvalidatedKeys = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_invalidated_keys_total",
			Help: "Cache keys deleted by the invalidation listener",
		},
		[]string{"topic"},
	)

	// Scoring jobs
	ScoreJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "score_job_duration_seconds",
			Help:    "Score job run time",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"job"},
	)

	ScoreJobRowsUpdated = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "score_job_rows_updated",
			Help: "Rows written by the last successful run",
		},
		[]string{"job"},
	)

	ScoreJobFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "score_job_failures_total",
			Help: "Score job runs rolled back",
		},
		[]string{"job"},
	)

	// API
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)
)

// ListName turns a cache key into a low-cardinality label, e.g.
// "user_recommendations:42" -> "user_recommendations".
func ListName(key string) string {
	name, _, _ := strings.Cut(key, ":")
	return name
}

func RecordCacheLookup(key, result string) {
	ListCacheLookups.WithLabelValues(ListName(key), result).Inc()
}

func RecordListBuild(key string, duration time.Duration, err error) {
	list := ListName(key)
	ListBuildDuration.WithLabelValues(list).Observe(duration.Seconds())
	if err != nil {
		ListBuildErrors.WithLabelValues(list).Inc()
	}
}

func RecordSharedBuild(key string) {
	ListBuildsShared.WithLabelValues(ListName(key)).Inc()
}

func RecordInvalidation(topic string, keys int) {
	InvalidatedKeys.WithLabelValues(topic).Add(float64(keys))
}

func RecordScoreJob(job string, updated int64, duration time.Duration, err error) {
	ScoreJobDuration.WithLabelValues(job).Observe(duration.Seconds())
	if err != nil {
		ScoreJobFailures.WithLabelValues(job).Inc()
		return
	}
	ScoreJobRowsUpdated.WithLabelValues(job).Set(float64(updated))
}

func RecordAPIRequest(method, endpoint string, status int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

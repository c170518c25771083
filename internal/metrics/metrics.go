package metrics

import (
	"regexp"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RequestDuration tracks HTTP request duration in seconds by method, path, status.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// RequestTotal counts HTTP requests by method, path, status.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// AuthFailuresTotal counts rejected authentications. No cause label beyond
	// the factor group; failure reasons are deliberately not broken out further.
	AuthFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "auth_failures_total",
			Help: "Total number of rejected authentication attempts",
		},
	)

	// TasksCreatedTotal counts created tasks.
	TasksCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tasks_created_total",
			Help: "Total number of tasks created",
		},
	)

	// TasksPurgedTotal counts tasks removed by the retention sweep.
	TasksPurgedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tasks_purged_total",
			Help: "Total number of completed tasks removed by retention",
		},
	)
)

var (
	numericPathSegment = regexp.MustCompile(`/[0-9]+(/|$)`)
	initOnce           sync.Once
)

func init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestDuration, RequestTotal, AuthFailuresTotal, TasksCreatedTotal, TasksPurgedTotal)
	})
}

// NormalizePath reduces cardinality by replacing numeric path segments with {id}.
// E.g. /tasks/123 -> /tasks/{id}.
func NormalizePath(path string) string {
	return numericPathSegment.ReplaceAllString(path, "/{id}$1")
}

// RecordRequest records duration and count for an HTTP request. Call from middleware with method, path, statusCode, duration.
func RecordRequest(method, path string, statusCode int, durationSeconds float64) {
	path = NormalizePath(path)
	status := strconv.Itoa(statusCode)
	RequestDuration.WithLabelValues(method, path, status).Observe(durationSeconds)
	RequestTotal.WithLabelValues(method, path, status).Inc()
}

// IncAuthFailures increments the rejected-authentication counter.
func IncAuthFailures() {
	AuthFailuresTotal.Inc()
}

// IncTasksCreated increments the created-task counter.
func IncTasksCreated() {
	TasksCreatedTotal.Inc()
}

// AddTasksPurged adds n to the retention purge counter.
func AddTasksPurged(n int64) {
	TasksPurgedTotal.Add(float64(n))
}

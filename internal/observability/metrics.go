package observability

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "doorlist_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by SQL verb.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "doorlist_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	// GuestSubmissionsTotal counts guest submissions by outcome.
	GuestSubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "doorlist_guest_submissions_total",
		Help: "Total guest submissions by outcome (accepted, rejected)",
	}, []string{"outcome"})

	// GuestsSubmittedTotal counts individual guest names accepted into lists.
	GuestsSubmittedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "doorlist_guests_submitted_total",
		Help: "Total number of guest names accepted into lists",
	})

	// CheckinsTotal counts check-in state transitions by direction.
	CheckinsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "doorlist_checkins_total",
		Help: "Total check-in transitions by direction (in, out)",
	}, []string{"direction"})

	// CapacityRejectionsTotal counts submissions rejected by the list capacity guard.
	CapacityRejectionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "doorlist_capacity_rejections_total",
		Help: "Total submissions rejected because the target list was full",
	})
)

// ObserveQueryLatency records the latency of a database query, keyed by the
// leading SQL verb (select, insert, update, delete).
func ObserveQueryLatency(sql string, elapsed time.Duration) {
	op := "other"
	if i := strings.IndexByte(sql, ' '); i > 0 {
		op = strings.ToLower(sql[:i])
	}
	DatabaseQueryLatency.WithLabelValues(op).Observe(elapsed.Seconds())
}

// RecordSubmission increments the submission counter for the given outcome.
func RecordSubmission(outcome string, accepted int) {
	GuestSubmissionsTotal.WithLabelValues(outcome).Inc()
	if accepted > 0 {
		GuestsSubmittedTotal.Add(float64(accepted))
	}
}

// RecordCheckin increments the check-in counter for the given direction.
func RecordCheckin(direction string) {
	CheckinsTotal.WithLabelValues(direction).Inc()
}

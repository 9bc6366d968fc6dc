// Package metrics defines the custom Prometheus metrics of the marketplace
// API. HTTP-level request metrics come from echoprometheus; these cover the
// engagement lifecycle.
//
// All metrics register with the default registry through promauto.
package metrics

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/freelaconnect/marketplace-api/internal/core/domain"
)

const namespace = "marketplace"

// ── Request metrics ───────────────────────────────────────────────────────────

// RequestsCreatedTotal counts engagement requests sent by clients.
// Label:
//   - replay: "true" when an idempotency key matched an earlier request
var RequestsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_created_total",
		Help:      "Total number of engagement requests created.",
	},
	[]string{"replay"},
)

// RequestDecisionsTotal counts freelancer decisions on pending requests.
// Label:
//   - decision: "accepted" or "declined"
var RequestDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "request_decisions_total",
		Help:      "Total number of requests accepted or declined.",
	},
	[]string{"decision"},
)

// ── Project metrics ───────────────────────────────────────────────────────────

// ProjectsCreatedTotal counts new projects.
// Label:
//   - origin: "request" (accepted request) or "direct" (direct hire)
var ProjectsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "projects_created_total",
		Help:      "Total number of projects created, by origin.",
	},
	[]string{"origin"},
)

var ProjectsCompletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "projects_completed_total",
		Help:      "Total number of successful project completion calls.",
	},
)

// ReviewsSubmittedTotal counts stored reviews.
// Label:
//   - rating: "1" … "5"
var ReviewsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reviews_submitted_total",
		Help:      "Total number of reviews submitted, by rating.",
	},
	[]string{"rating"},
)

// ── Operation metrics ─────────────────────────────────────────────────────────

// LifecycleConflictsTotal counts operations rejected because the entity was
// not in the required state or a review already existed.
var LifecycleConflictsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lifecycle_conflicts_total",
		Help:      "Total number of lifecycle operations rejected with a conflict.",
	},
	[]string{"operation"},
)

// OperationDuration measures lifecycle operations end to end.
// Labels:
//   - operation: e.g. "accept_request"
//   - outcome: "ok", or the lower-cased error kind ("conflict", "forbidden", …), or "error"
var OperationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "operation_duration_seconds",
		Help:      "Duration of engagement lifecycle operations.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation", "outcome"},
)

// ObserveOperation records the duration and outcome of op.
func ObserveOperation(op string, start time.Time, err error) {
	OperationDuration.WithLabelValues(op, Outcome(err)).Observe(time.Since(start).Seconds())
	if errors.Is(err, domain.ErrConflict) {
		LifecycleConflictsTotal.WithLabelValues(op).Inc()
	}
}

// Outcome maps err to the outcome label value.
func Outcome(err error) string {
	if err == nil {
		return "ok"
	}
	if kind := domain.KindOf(err); kind != "" {
		return strings.ToLower(string(kind))
	}
	return "error"
}

// ReviewSubmitted increments the review counter for rating.
func ReviewSubmitted(rating int) {
	ReviewsSubmittedTotal.WithLabelValues(strconv.Itoa(rating)).Inc()
}

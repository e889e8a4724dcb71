// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	APIRequestsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_completed_total",
			Help: "Total number of API requests completed per resource",
		},
		[]string{"resource"},
	)

	APIRequestsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_failed_total",
			Help: "Total number of API requests failed per resource",
		},
		[]string{"resource", "error_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "api_request_duration_seconds",
			Help: "Duration of API requests in seconds",
		},
		[]string{"resource"},
	)

	SelectorFetchesDiscarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "selector_fetches_discarded_total",
			Help: "Dependent-selector responses discarded because the selection changed mid-flight",
		},
		[]string{"level"},
	)
)

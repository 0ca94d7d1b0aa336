// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_api_requests_total",
			Help: "Total number of requests issued to the marketplace backend",
		},
		[]string{"operation"},
	)

	APIRequestsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_api_requests_failed_total",
			Help: "Total number of failed backend requests",
		},
		[]string{"operation", "error_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "jobboard_api_request_duration_seconds",
			Help: "Duration of backend requests in seconds",
		},
		[]string{"operation"},
	)

	SearchesDiscarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "jobboard_searches_discarded_total",
			Help: "Search responses dropped because a newer search superseded them",
		},
	)
)

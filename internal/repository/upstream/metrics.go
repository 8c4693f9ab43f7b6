package upstream

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parking_upstream_requests_total",
			Help: "Requests sent to upstream services by outcome (ok, error, unreachable, too_large)",
		},
		[]string{"service", "outcome"},
	)

	requestSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "parking_upstream_request_duration_seconds",
			Help:    "Time until upstream response headers arrived",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service"},
	)
)

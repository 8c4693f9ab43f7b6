package pubsub

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	publishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parking_pubsub_published_total",
			Help: "Events published per topic",
		},
		[]string{"topic"},
	)

	droppedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parking_pubsub_dropped_total",
			Help: "Events dropped for subscribers whose buffer was full",
		},
		[]string{"topic"},
	)

	subscribersGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "parking_pubsub_subscribers",
			Help: "Current subscribers per topic",
		},
		[]string{"topic"},
	)
)

package v1

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	connectionsGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "parking_ws_connections",
			Help: "Open websocket connections",
		},
	)

	framesSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parking_ws_frames_sent_total",
			Help: "Frames written to websocket clients, by event",
		},
		[]string{"event"},
	)
)

package monitor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	upstreamUp = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "parking_upstream_up",
			Help: "Whether the last health probe of an upstream service succeeded",
		},
		[]string{"service"},
	)

	slotChangesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "parking_slot_changes_total",
			Help: "Slot occupancy changes seen by the slot poller",
		},
	)
)

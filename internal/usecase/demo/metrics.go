package demo

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	runKindEntry = "entry"
	runKindExit  = "exit"

	outcomeCompleted = "completed"
	outcomeAborted   = "aborted"
	outcomeReset     = "reset"
)

var demoRunsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "parking_demo_runs_total",
		Help: "Demo entry/exit runs by kind and how they ended",
	},
	[]string{"kind", "outcome"},
)

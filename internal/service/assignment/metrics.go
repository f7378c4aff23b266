package assignment

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var TransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "assignment_transitions_total",
		Help: "Assignment status transitions",
	},
	[]string{"from", "to"},
)

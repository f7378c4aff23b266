package matcher

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var MatchAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "matcher_attempts_total",
		Help: "Assignment matching attempts by result",
	},
	[]string{"result"},
)

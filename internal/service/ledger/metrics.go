package ledger

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PointsCreditedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_points_credited_total",
			Help: "Total number of points credited to holders",
		},
		[]string{"holder_type"},
	)

	RewardsDebitedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_rewards_debited_total",
			Help: "Total amount of rewards converted into vouchers",
		},
		[]string{"holder_type"},
	)

	LedgerDriftTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_drift_repaired_total",
			Help: "Number of balances repaired by reconciliation",
		},
		[]string{"holder_type"},
	)
)

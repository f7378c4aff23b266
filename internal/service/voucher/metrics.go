package voucher

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	VouchersIssuedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vouchers_issued_total",
			Help: "Total number of issued vouchers",
		},
		[]string{"holder_type"},
	)

	VouchersUsedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vouchers_used_total",
			Help: "Total number of vouchers redeemed at branches",
		},
		[]string{"holder_type"},
	)
)

package storecache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var CacheRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "store_cache_requests_total",
		Help: "Total number of store catalog cache lookups",
	},
	[]string{"result"}, // hit, miss
)

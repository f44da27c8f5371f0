package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	readsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dashcache",
			Subsystem: "cache",
			Name:      "reads_total",
			Help:      "Cache reads by namespace and outcome",
		},
		[]string{"namespace", "outcome"},
	)

	writesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dashcache",
			Subsystem: "cache",
			Name:      "writes_total",
			Help:      "Cache writes by namespace",
		},
		[]string{"namespace"},
	)
)

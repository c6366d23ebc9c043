package ratelimit

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	admissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "voyago_ratelimit_admissions_total",
			Help: "Total number of calls admitted by the rate limiter",
		},
		[]string{"scope"},
	)

	rejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "voyago_ratelimit_rejections_total",
			Help: "Total number of calls rejected by the rate limiter",
		},
		[]string{"scope"},
	)
)

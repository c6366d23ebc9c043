package itinerary

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// cacheHits counts lookups that returned a stored entry.
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "voyago_cache_hits_total",
		Help: "Total number of itinerary cache hits",
	})

	// cacheMisses counts lookups that found nothing.
	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "voyago_cache_misses_total",
		Help: "Total number of itinerary cache misses",
	})

	// cacheEvictions counts entries displaced by the capacity policy.
	cacheEvictions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "voyago_cache_evictions_total",
		Help: "Total number of itinerary cache entries evicted at capacity",
	})

	// cacheEntries tracks the current number of cached itineraries.
	cacheEntries = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "voyago_cache_entries",
		Help: "Current number of itinerary cache entries",
	})

	generations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "voyago_generations_total",
		Help: "Total number of successful external generation calls",
	})

	generationErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "voyago_generation_errors_total",
		Help: "Total number of failed external generation calls",
	})

	generationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "voyago_generation_duration_seconds",
		Help:    "Duration of external generation calls",
		Buckets: prometheus.DefBuckets,
	})
)

package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the instrumentation for one handler. Each handler owns its
// registry so that tests can create handlers freely without duplicate
// registration panics.
type metrics struct {
	registry  *prometheus.Registry
	solves    *prometheus.CounterVec
	cacheHits prometheus.Counter
	duration  prometheus.Histogram
}

func newMetrics() *metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &metrics{
		registry: registry,
		solves: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "splice_solve_requests_total",
			Help: "Solve requests by outcome.",
		}, []string{"outcome"}),
		cacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "splice_solve_cache_hits_total",
			Help: "Solve requests answered from the result cache.",
		}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "splice_solve_duration_seconds",
			Help:    "Time spent solving a trace, cache hits included.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

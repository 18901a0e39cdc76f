package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by method, path, and status code.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "slidecoach_requests_total",
		Help: "Total HTTP requests processed.",
	}, []string{"method", "path", "status"})

	// GenerateAttempts counts outbound model attempts by model and outcome.
	GenerateAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "slidecoach_generate_attempts_total",
		Help: "Outbound generation attempts per model and outcome.",
	}, []string{"model", "outcome"})

	// GenerateDuration tracks outbound call latency per model.
	GenerateDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "slidecoach_generate_duration_seconds",
		Help:    "Time spent on one outbound generation call.",
		Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30},
	}, []string{"model"})

	// CacheHits counts summary cache lookups by result.
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "slidecoach_summary_cache_total",
		Help: "Summary cache lookups by result (hit, miss).",
	}, []string{"result"})
)

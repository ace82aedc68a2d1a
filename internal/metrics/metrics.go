package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by method, path, and status code.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "alfabetizacion_requests_total",
		Help: "Total HTTP requests processed.",
	}, []string{"method", "path", "status"})

	// GenerationDuration tracks provider latency per operation.
	GenerationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "alfabetizacion_generation_duration_seconds",
		Help:    "Time spent waiting on the generation provider.",
		Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120},
	}, []string{"operation"})

	// TokensUsed accumulates provider-reported input+output tokens.
	TokensUsed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "alfabetizacion_tokens_used_total",
		Help: "Input plus output tokens reported by the provider.",
	}, []string{"operation"})

	// InputChars tracks the distribution of user input lengths.
	InputChars = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "alfabetizacion_input_chars",
		Help:    "Number of characters in the user-supplied field.",
		Buckets: []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000, 100000, 1000000},
	}, []string{"operation"})

	// GenerationErrors counts failed provider calls.
	GenerationErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "alfabetizacion_generation_errors_total",
		Help: "Generation calls that returned an error.",
	}, []string{"operation"})

	// GeneratorAvailable tracks whether the configured generator is usable.
	GeneratorAvailable = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "alfabetizacion_generator_available",
		Help: "Whether the generation backend is available (1) or not (0).",
	})
)

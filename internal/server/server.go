package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/StephanyArroyo/AlfabetizacionAsist/internal/handler"
	"github.com/StephanyArroyo/AlfabetizacionAsist/internal/middleware"
	"github.com/StephanyArroyo/AlfabetizacionAsist/internal/simplify"
)

// Options carries everything SetupMux needs. RateLimit is requests per
// minute per client; 0 disables limiting.
type Options struct {
	Service        *simplify.Service
	APIKey         string
	RateLimit      int
	MaxBodyBytes   int64
	RequestTimeout time.Duration
	StaticDir      string
}

// SetupMux wires handlers with the full middleware chain.
func SetupMux(opts Options) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", handler.Index(opts.StaticDir))
	mux.HandleFunc("/status", handler.Status())
	mux.HandleFunc("/health", handler.Health(opts.Service.Generator()))
	mux.HandleFunc("/simplificar-texto", handler.SimplifyText(opts.Service))
	mux.HandleFunc("/simplificar-imagen", handler.SimplifyImage(opts.Service))
	mux.HandleFunc("/explicar-termino", handler.ExplainTerm(opts.Service))
	mux.Handle("/metrics", promhttp.Handler())

	var rl *middleware.RateLimiter
	if opts.RateLimit > 0 {
		rl = middleware.NewRateLimiter(opts.RateLimit, time.Minute)
	}
	return middleware.Chain(mux, middleware.Options{
		RateLimiter:  rl,
		APIKey:       opts.APIKey,
		MaxBodyBytes: opts.MaxBodyBytes,
		Timeout:      opts.RequestTimeout,
	})
}

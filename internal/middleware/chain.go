package middleware

import (
	"net/http"
	"time"
)

// Options configures the middleware stack. Zero values disable the
// corresponding layer, except MaxBodyBytes which must be positive.
type Options struct {
	RateLimiter  *RateLimiter
	APIKey       string
	MaxBodyBytes int64
	Timeout      time.Duration
}

// Chain wraps the handler with the full middleware stack.
// Order: CORS → RequestID → Logging → Metrics → RateLimit → APIKey → MaxBytes → Timeout → mux
func Chain(handler http.Handler, opts Options) http.Handler {
	h := handler
	if opts.Timeout > 0 {
		h = http.TimeoutHandler(h, opts.Timeout, `{"error":"tiempo de espera agotado"}`)
	}
	h = MaxBytes(opts.MaxBodyBytes)(h)
	h = APIKey(opts.APIKey)(h)
	if opts.RateLimiter != nil {
		h = RateLimit(opts.RateLimiter)(h)
	}
	h = Metrics(h)
	h = Logging(h)
	h = RequestID(h)
	h = CORS(h)
	return h
}

package middleware

import (
	"net/http"
	"strconv"

	"github.com/StephanyArroyo/AlfabetizacionAsist/internal/metrics"
)

// Routed paths keep their own label; anything else is counted as "other"
// so scanners cannot blow up label cardinality.
var routedPaths = map[string]bool{
	"/":                   true,
	"/status":             true,
	"/health":             true,
	"/metrics":            true,
	"/simplificar-texto":  true,
	"/simplificar-imagen": true,
	"/explicar-termino":   true,
}

// Metrics records request count by method, path, and status code.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		path := r.URL.Path
		if !routedPaths[path] {
			path = "other"
		}
		metrics.RequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(sw.status)).Inc()
	})
}

package handler

import (
	"net/http"
	"path/filepath"

	"github.com/StephanyArroyo/AlfabetizacionAsist/internal/web"
)

// Index serves the front-end page at exactly "/". With staticDir set the
// page is read from staticDir/index.html on each request; otherwise the
// embedded copy is used.
func Index(staticDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			writeError(w, http.StatusNotFound, "no encontrado")
			return
		}
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			writeError(w, http.StatusMethodNotAllowed, "método no permitido")
			return
		}

		if staticDir != "" {
			http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(web.IndexHTML)
	}
}

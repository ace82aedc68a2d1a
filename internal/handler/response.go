package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/StephanyArroyo/AlfabetizacionAsist/internal/simplify"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON encodes v without HTML escaping so generated text is relayed as-is.
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errorResponse{Error: msg})
}

// respondError maps a failure to its status: validation → 400, anything else → 500.
func respondError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	if simplify.KindOf(err) == simplify.KindValidation {
		code = http.StatusBadRequest
	}
	msg := err.Error()
	if msg == "" {
		msg = http.StatusText(code)
	}
	writeError(w, code, msg)
}

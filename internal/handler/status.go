package handler

import "net/http"

const statusMessage = "API de Asistente de Alfabetización Universal"

type statusResponse struct {
	Endpoints map[string]string `json:"endpoints"`
	Mensaje   string            `json:"mensaje"`
}

// Status serves GET /status.
func Status() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			writeError(w, http.StatusMethodNotAllowed, "método no permitido")
			return
		}
		writeJSON(w, http.StatusOK, statusResponse{
			Endpoints: map[string]string{
				"/simplificar-imagen": "POST...",
				"/simplificar-texto":  "POST...",
			},
			Mensaje: statusMessage,
		})
	}
}

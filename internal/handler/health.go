package handler

import (
	"net/http"

	"github.com/StephanyArroyo/AlfabetizacionAsist/internal/adapter"
	"github.com/StephanyArroyo/AlfabetizacionAsist/internal/metrics"
)

type generatorStatus struct {
	Name      string `json:"name"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

type healthResponse struct {
	Status    string          `json:"status"`
	Generator generatorStatus `json:"generator"`
}

func Health(gen adapter.Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := generatorStatus{Name: gen.Name(), Available: gen.Available()}
		if s.Available {
			metrics.GeneratorAvailable.Set(1)
		} else {
			metrics.GeneratorAvailable.Set(0)
			s.Reason = unavailableReason(gen)
		}

		writeJSON(w, http.StatusOK, healthResponse{
			Status:    "ok",
			Generator: s,
		})
	}
}

func unavailableReason(g adapter.Generator) string {
	switch g.(type) {
	case *adapter.ClaudeAdapter:
		return "no API key"
	case *adapter.OpenAIAdapter:
		return "no API key or base URL"
	default:
		return "unavailable"
	}
}

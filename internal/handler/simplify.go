package handler

import (
	"net/http"

	"github.com/StephanyArroyo/AlfabetizacionAsist/internal/simplify"
)

type textResponse struct {
	TextoOriginal     string `json:"texto_original"`
	TextoSimplificado string `json:"texto_simplificado"`
	TokensUsados      int    `json:"tokens_usados"`
}

type imageResponse struct {
	RespuestaCompleta string `json:"respuesta_completa"`
	TokensUsados      int    `json:"tokens_usados"`
}

type termResponse struct {
	Termino     string `json:"termino"`
	Explicacion string `json:"explicacion"`
}

// SimplifyText serves POST /simplificar-texto.
func SimplifyText(svc *simplify.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req textRequest
		if !decodeRequest(w, r, &req, simplify.MsgMissingText) {
			return
		}

		res, err := svc.SimplifyText(r.Context(), *req.Texto)
		if err != nil {
			respondError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, textResponse{
			TextoOriginal:     res.Original,
			TextoSimplificado: res.Simplified,
			TokensUsados:      res.TokensUsed,
		})
	}
}

// SimplifyImage serves POST /simplificar-imagen.
func SimplifyImage(svc *simplify.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req imageRequest
		if !decodeRequest(w, r, &req, simplify.MsgMissingImage) {
			return
		}

		res, err := svc.SimplifyImage(r.Context(), *req.Imagen)
		if err != nil {
			respondError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, imageResponse{
			RespuestaCompleta: res.Response,
			TokensUsados:      res.TokensUsed,
		})
	}
}

// ExplainTerm serves POST /explicar-termino.
func ExplainTerm(svc *simplify.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req termRequest
		if !decodeRequest(w, r, &req, simplify.MsgMissingTerm) {
			return
		}

		res, err := svc.ExplainTerm(r.Context(), *req.Termino)
		if err != nil {
			respondError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, termResponse{
			Termino:     res.Term,
			Explicacion: res.Explanation,
		})
	}
}

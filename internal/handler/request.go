package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/StephanyArroyo/AlfabetizacionAsist/internal/simplify"
)

// Pointers distinguish an absent key from an empty string; only absence
// (or null) is rejected.
type textRequest struct {
	Texto *string `json:"texto" validate:"required"`
}

type imageRequest struct {
	Imagen *string `json:"imagen" validate:"required"`
}

type termRequest struct {
	Termino *string `json:"termino" validate:"required"`
}

var validate = validator.New()

// decodeRequest reads the JSON body into dst and checks its required field.
// On failure it writes the response and returns false.
func decodeRequest(w http.ResponseWriter, r *http.Request, dst any, missingMsg string) bool {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "método no permitido")
		return false
	}

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "cuerpo de la petición demasiado grande")
			return false
		}
		respondError(w, simplify.Validation(missingMsg))
		return false
	}

	if err := validate.Struct(dst); err != nil {
		respondError(w, simplify.Validation(missingMsg))
		return false
	}
	return true
}

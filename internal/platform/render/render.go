// Package render escribe respuestas JSON de la API.
// Antes cada módulo tenía su propio writeJSON; con siete recursos se extrajo acá.
package render

import (
	"encoding/json"
	"net/http"

	"vet-clinic/internal/platform/apperr"

	"github.com/rs/zerolog/hlog"
)

// ErrorResponse es el cuerpo de todo 4xx/5xx.
type ErrorResponse struct {
	Error  string              `json:"error"`
	Fields []apperr.FieldError `json:"fields,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, MessageResponse{Message: msg})
}

// Error traduce err según su apperr.Kind. Los errores desconocidos
// se loguean y al cliente solo le llega "internal error".
func Error(w http.ResponseWriter, r *http.Request, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		JSON(w, http.StatusBadRequest, ErrorResponse{Error: apperr.Message(err), Fields: apperr.Fields(err)})
	case apperr.KindNotFound:
		JSON(w, http.StatusNotFound, ErrorResponse{Error: apperr.Message(err)})
	default:
		hlog.FromRequest(r).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		JSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

// BadRequest es para fallas de decode antes de llegar al servicio.
func BadRequest(w http.ResponseWriter, msg string) {
	JSON(w, http.StatusBadRequest, ErrorResponse{Error: msg})
}

func NotFound(w http.ResponseWriter) {
	JSON(w, http.StatusNotFound, ErrorResponse{Error: "Not Found"})
}

package middleware

import (
	"net/http"
	"runtime/debug"

	"vet-clinic/internal/platform/render"

	"github.com/rs/zerolog/hlog"
)

// Recover convierte un panic en 500 JSON y lo loguea con el stack.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			hlog.FromRequest(r).Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			render.JSON(w, http.StatusInternalServerError, render.ErrorResponse{Error: "internal error"})
		}()

		next.ServeHTTP(w, r)
	})
}

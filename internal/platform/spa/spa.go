// Package spa sirve el frontend: archivos reales del directorio configurado
// y, para cualquier otra ruta, index.html (el router del cliente decide).
package spa

import (
	_ "embed"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"vet-clinic/internal/platform/render"
)

//go:embed index.html
var shell []byte

// Handler: /api/* sin ruta => 404 JSON. Sin dir (o sin index.html) se usa el shell embebido.
func Handler(dir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api" || strings.HasPrefix(r.URL.Path, "/api/") {
			render.NotFound(w)
			return
		}

		if dir != "" {
			name := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+r.URL.Path)))
			if fi, err := os.Stat(name); err == nil && !fi.IsDir() {
				http.ServeFile(w, r, name)
				return
			}

			index := filepath.Join(dir, "index.html")
			if _, err := os.Stat(index); err == nil {
				http.ServeFile(w, r, index)
				return
			}
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(shell)
	}
}

package spa

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(h http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandler_APIPathIsJSON404(t *testing.T) {
	rec := serve(Handler(""), "/api/nope")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not Found"}`, rec.Body.String())
}

func TestHandler_EmbeddedShell(t *testing.T) {
	rec := serve(Handler(""), "/owners/3")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<div id="root"></div>`)
}

func TestHandler_ServesDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<p>app</p>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o644))

	h := Handler(dir)

	rec := serve(h, "/app.js")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "console.log(1)", rec.Body.String())

	rec = serve(h, "/pets/9")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<p>app</p>", rec.Body.String())

	// no se sale del directorio
	rec = serve(h, "/../../etc/passwd")
	assert.Equal(t, "<p>app</p>", rec.Body.String())
}

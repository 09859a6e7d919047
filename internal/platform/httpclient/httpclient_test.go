package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_PostDecodes(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/owners", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 3, "name": "` + in["name"] + `"}`))
	}))
	defer ts.Close()

	c, err := New(ts.URL+"/", 0, zerolog.Nop())
	require.NoError(t, err)

	var out struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, c.Post(context.Background(), "api/owners", map[string]string{"name": "Ana"}, &out))
	assert.Equal(t, int64(3), out.ID)
	assert.Equal(t, "Ana", out.Name)
}

func TestClient_Non2xxIsHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"email is required"}`))
	}))
	defer ts.Close()

	c, err := New(ts.URL, 0, zerolog.Nop())
	require.NoError(t, err)

	err = c.Get(context.Background(), "/api/staff", nil)
	require.Error(t, err)

	var he *HTTPError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, http.StatusBadRequest, he.StatusCode)
	assert.Contains(t, he.Body, "email is required")
}

func TestNew_InvalidBaseURL(t *testing.T) {
	_, err := New("not a url", 0, zerolog.Nop())
	assert.Error(t, err)
}

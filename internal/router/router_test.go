package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func do(r http.Handler, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUnmatchedRoute(t *testing.T) {
	r := NewRouter(DefaultConfig())

	w := do(r, http.MethodGet, "/unknown")
	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid endpoint", resp.Error)
}

func TestMethodNotAllowed(t *testing.T) {
	r := NewRouter(DefaultConfig())

	w := do(r, http.MethodPatch, "/health")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Method not allowed", resp.Error)
}

func TestHealthCheck(t *testing.T) {
	r := NewRouter(DefaultConfig())

	w := do(r, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestMetricsEndpoint(t *testing.T) {
	r := NewRouter(DefaultConfig())

	// Generate at least one observation first.
	do(r, http.MethodGet, "/health")

	w := do(r, http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "hospital_records_requests_total")
}

func TestCORSHeaders(t *testing.T) {
	r := NewRouter(DefaultConfig())

	w := do(r, http.MethodGet, "/health")
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, PUT, DELETE", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", w.Header().Get("Access-Control-Allow-Headers"))
}

func TestPreflightRequest(t *testing.T) {
	r := NewRouter(DefaultConfig())

	w := do(r, http.MethodOptions, "/patients")
	assert.Equal(t, http.StatusNoContent, w.Code)
}

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lic521/wanderai/internal/middleware"
)

// planListHandler stands in for the history endpoint behind the middleware.
var planListHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`[]`))
})

// wanderOrigins mirrors a typical deployment: the Vite dev server plus a
// deployed frontend, both set via CORS_ORIGINS.
var wanderOrigins = []string{"http://localhost:5173", "https://wanderai.example.com"}

// TestCORSHandler_PlanHistoryFromConfiguredOrigin verifies that a browser
// fetch of the plan history from either configured origin gets the
// Access-Control-Allow-Origin header echoing that origin.
func TestCORSHandler_PlanHistoryFromConfiguredOrigin(t *testing.T) {
	h := middleware.NewCORSHandler(wanderOrigins)(planListHandler)

	for _, origin := range wanderOrigins {
		req := httptest.NewRequest(http.MethodGet, "/plans", nil)
		req.Header.Set("Origin", origin)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, origin, rec.Header().Get("Access-Control-Allow-Origin"))
	}
}

// TestCORSHandler_GenerationPreflight verifies the preflight the browser
// sends before POST /plans (a cross-origin JSON request) is answered with the
// CORS headers it needs. The Fetch specification requires browsers to send
// Access-Control-Request-Headers values in lowercase; rs/cors compares its
// allowed-headers list in lowercase too, so the test matches that convention.
func TestCORSHandler_GenerationPreflight(t *testing.T) {
	h := middleware.NewCORSHandler(wanderOrigins)(planListHandler)

	req := httptest.NewRequest(http.MethodOptions, "/plans", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "content-type")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	// rs/cors returns 204 for OPTIONS preflights.
	assert.True(t, rec.Code == http.StatusNoContent || rec.Code == http.StatusOK,
		"expected 2xx for OPTIONS preflight, got %d", rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
}

// TestCORSHandler_DeletePreflight verifies that DELETE, a non-simple method
// the plan history UI needs, is advertised in the preflight response.
func TestCORSHandler_DeletePreflight(t *testing.T) {
	h := middleware.NewCORSHandler(wanderOrigins)(planListHandler)

	req := httptest.NewRequest(http.MethodOptions, "/plans/abc", nil)
	req.Header.Set("Origin", "https://wanderai.example.com")
	req.Header.Set("Access-Control-Request-Method", "DELETE")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "DELETE")
}

// TestCORSHandler_UnknownOriginGetsNoHeader verifies that a request from an
// origin outside CORS_ORIGINS receives no Access-Control-Allow-Origin header.
// The response itself can still be 200; the browser blocks it client-side.
func TestCORSHandler_UnknownOriginGetsNoHeader(t *testing.T) {
	h := middleware.NewCORSHandler(wanderOrigins)(planListHandler)

	req := httptest.NewRequest(http.MethodGet, "/plans", nil)
	req.Header.Set("Origin", "https://evil.example.net")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

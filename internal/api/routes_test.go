package api_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourorg/products-api/internal/api"
	"github.com/yourorg/products-api/internal/service"
	"github.com/yourorg/products-api/internal/testutil"
)

func TestCORS(t *testing.T) {
	router := newRouter(testutil.NewMemoryProductRepository())

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		req.Header.Set("Origin", frontendURL)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, frontendURL, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("foreign origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		req.Header.Set("Origin", "http://evil.example")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.JSONEq(t, `{"error":"CORS ERROR"}`, w.Body.String())
	})

	t.Run("foreign preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/products/1", nil)
		req.Header.Set("Origin", "http://evil.example")
		req.Header.Set("Access-Control-Request-Method", http.MethodPut)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("no origin header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unset frontend rejects every origin", func(t *testing.T) {
		h := api.NewHandler(service.NewProductService(testutil.NewMemoryProductRepository()))
		router := h.RoutesWithConfig(api.RouteConfig{MaxBodyBytes: 1048576})

		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		req.Header.Set("Origin", frontendURL)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestRequestID(t *testing.T) {
	router := newRouter(testutil.NewMemoryProductRepository())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.True(t, strings.HasPrefix(w.Header().Get("X-Request-Id"), "req_"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", "client-supplied")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "client-supplied", w.Header().Get("X-Request-Id"))
}

func TestHealth(t *testing.T) {
	router := newRouter(testutil.NewMemoryProductRepository())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestDocs(t *testing.T) {
	router := newRouter(testutil.NewMemoryProductRepository())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/docs", nil))
	assert.Equal(t, http.StatusMovedPermanently, w.Code)
	assert.Equal(t, "/docs/index.html", w.Header().Get("Location"))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/docs/doc.json", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/products/{id}")
	assert.Contains(t, w.Body.String(), "Products API")
}

func TestParseAllowedOrigin(t *testing.T) {
	assert.Equal(t, "http://localhost:5173", api.ParseAllowedOrigin(" http://localhost:5173/ "))
	assert.Equal(t, "", api.ParseAllowedOrigin(""))
}

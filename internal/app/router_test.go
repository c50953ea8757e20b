package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"a11ysentinel.io/sentinel/internal/api/handlers"
	"a11ysentinel.io/sentinel/internal/api/middleware"
	"a11ysentinel.io/sentinel/internal/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	_ = logger.Init("error", "console")
}

func testRouter() *gin.Engine {
	return newRouter(handlers.NewServer(handlers.ServerDeps{}), middleware.JWTConfig{
		SigningKey: []byte("router-test-key-12345678901234567"),
		Issuer:     "sentinel",
		ExpiresIn:  time.Hour,
	}, nil)
}

func TestRouter_ProtectedRoutesRequireAuth(t *testing.T) {
	router := testRouter()

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/batches"},
		{http.MethodGet, "/api/v1/batches/batch-1"},
		{http.MethodPost, "/api/v1/batches/batch-1/cancel"},
		{http.MethodDelete, "/api/v1/batches/batch-1"},
		{http.MethodGet, "/api/v1/campaign"},
		{http.MethodPost, "/api/v1/campaign/pause"},
		{http.MethodGet, "/api/v1/ai-queue"},
		{http.MethodGet, "/api/v1/ai-queue/stats"},
		{http.MethodPost, "/api/v1/ai-queue/scan-1/retry"},
	}
	for _, route := range protected {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(route.method, route.path, nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
	}
}

func TestRouter_PermissionEnforced(t *testing.T) {
	router := testRouter()

	// A token holding only read permissions cannot delete.
	token, _, err := middleware.GenerateToken(middleware.JWTConfig{
		SigningKey: []byte("router-test-key-12345678901234567"),
		Issuer:     "sentinel",
		ExpiresIn:  time.Hour,
	}, "u-1", "viewer", []string{middleware.PermBatchesRead})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/batches/batch-1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRouter_UnknownRouteIs404(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

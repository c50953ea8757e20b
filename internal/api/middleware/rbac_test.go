package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func permissionRouter(granted []string, required string) *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if granted != nil {
			c.Set("permissions", granted)
		}
	})
	router.GET("/protected", RequirePermission(required), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func TestRequirePermission(t *testing.T) {
	tests := []struct {
		name     string
		granted  []string
		required string
		want     int
	}{
		{"exact match", []string{PermBatchesWrite}, PermBatchesWrite, http.StatusOK},
		{"admin implies all", []string{PermPlatformAdmin}, PermBatchesDelete, http.StatusOK},
		{"read does not grant write", []string{PermBatchesRead}, PermBatchesWrite, http.StatusForbidden},
		{"empty permission set", []string{}, PermCampaignRead, http.StatusForbidden},
		{"no permissions in context", nil, PermAiQueueRead, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			permissionRouter(tt.granted, tt.required).ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestAllPermissions_ExcludesAdmin(t *testing.T) {
	assert.NotContains(t, AllPermissions(), PermPlatformAdmin)
	assert.Len(t, AllPermissions(), 7)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"a11ysentinel.io/sentinel/internal/api/spec"
)

// GetHealth handles GET /healthz.
func (s *Server) GetHealth(c *gin.Context) {
	checks := make(map[string]string)
	status := "ok"
	httpStatus := http.StatusOK

	if err := s.pool.Ping(c.Request.Context()); err != nil {
		checks["database"] = "error"
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	} else {
		checks["database"] = "ok"
	}

	c.JSON(httpStatus, gin.H{
		"status": status,
		"checks": checks,
	})
}

// GetOpenAPISpec handles GET /openapi.yaml, serving the contract the
// API validates requests against.
func (s *Server) GetOpenAPISpec(c *gin.Context) {
	c.Data(http.StatusOK, "application/yaml", spec.Raw())
}

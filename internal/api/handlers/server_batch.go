package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"a11ysentinel.io/sentinel/internal/domain"
	"a11ysentinel.io/sentinel/internal/lifecycle"
	apperrors "a11ysentinel.io/sentinel/internal/pkg/errors"
	"a11ysentinel.io/sentinel/internal/report"
)

type createBatchRequest struct {
	HomepageURL string   `json:"homepage_url" binding:"required"`
	URLs        []string `json:"urls" binding:"required"`
	WcagLevel   string   `json:"wcag_level"`
	AiEnabled   bool     `json:"ai_enabled"`
}

// CreateBatch handles POST /batches.
func (s *Server) CreateBatch(c *gin.Context) {
	var req createBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequestField, err.Error()))
		return
	}

	level := domain.WCAGLevel(req.WcagLevel)
	if req.WcagLevel == "" {
		level = domain.WCAGLevelAA
	}

	result, err := s.orch.CreateBatch(c.Request.Context(), lifecycle.CreateInput{
		HomepageURL: req.HomepageURL,
		URLs:        req.URLs,
		WCAGLevel:   level,
		AiEnabled:   req.AiEnabled,
		CreatedBy:   actorFromCtx(c),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// ListBatches handles GET /batches.
func (s *Server) ListBatches(c *gin.Context) {
	f := lifecycle.ListFilter{
		Status:    c.Query("status"),
		CreatedBy: c.Query("created_by"),
		Limit:     intQuery(c, "limit", 20),
		Offset:    intQuery(c, "offset", 0),
	}

	batches, total, err := s.orch.ListBatches(c.Request.Context(), f)
	if err != nil {
		_ = c.Error(err)
		return
	}

	items := make([]batchResponse, len(batches))
	for i, b := range batches {
		items[i] = toBatchResponse(b)
	}
	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": total,
	})
}

// GetBatch handles GET /batches/:batchId.
func (s *Server) GetBatch(c *gin.Context) {
	b, scans, err := s.orch.GetBatchDetail(c.Request.Context(), c.Param("batchId"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	resp := gin.H{
		"batch": toBatchResponse(b),
		"scans": toScanResponses(scans),
	}
	c.JSON(http.StatusOK, resp)
}

// GetBatchMetrics handles GET /batches/:batchId/metrics.
func (s *Server) GetBatchMetrics(c *gin.Context) {
	metrics, err := s.orch.GetBatchMetrics(c.Request.Context(), c.Param("batchId"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// CancelBatch handles POST /batches/:batchId/cancel.
func (s *Server) CancelBatch(c *gin.Context) {
	result, err := s.orch.CancelBatch(c.Request.Context(), c.Param("batchId"), actorFromCtx(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// RetryFailedScans handles POST /batches/:batchId/retry.
func (s *Server) RetryFailedScans(c *gin.Context) {
	result, err := s.orch.RetryFailedScans(c.Request.Context(), c.Param("batchId"), actorFromCtx(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeleteBatch handles DELETE /batches/:batchId.
func (s *Server) DeleteBatch(c *gin.Context) {
	result, err := s.orch.DeleteBatch(c.Request.Context(), c.Param("batchId"), actorFromCtx(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ExportBatch handles GET /batches/:batchId/export.
func (s *Server) ExportBatch(c *gin.Context) {
	format := report.Format(c.DefaultQuery("format", "json"))
	export, err := s.orch.ExportBatch(c.Request.Context(), c.Param("batchId"), format, actorFromCtx(c))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+export.Filename+`"`)
	c.Data(http.StatusOK, export.ContentType, export.Data)
}

type createScanRequest struct {
	URL       string `json:"url" binding:"required"`
	AiEnabled bool   `json:"ai_enabled"`
}

// CreateScan handles POST /scans.
func (s *Server) CreateScan(c *gin.Context) {
	var req createScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequestField, err.Error()))
		return
	}

	result, err := s.orch.CreateScan(c.Request.Context(), lifecycle.ScanInput{
		URL:       req.URL,
		AiEnabled: req.AiEnabled,
		CreatedBy: actorFromCtx(c),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

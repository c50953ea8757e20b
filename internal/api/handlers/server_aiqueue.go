package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"a11ysentinel.io/sentinel/internal/aiqueue"
	apperrors "a11ysentinel.io/sentinel/internal/pkg/errors"
)

// ListAiQueue handles GET /ai-queue.
func (s *Server) ListAiQueue(c *gin.Context) {
	f := aiqueue.ListFilter{
		Status: c.Query("status"),
		Cursor: c.Query("cursor"),
		Limit:  intQuery(c, "limit", 50),
	}

	entries, err := s.orch.ListAiQueue(c.Request.Context(), f)
	if err != nil {
		_ = c.Error(err)
		return
	}

	items := make([]queueEntryResponse, len(entries))
	for i, e := range entries {
		items[i] = toQueueEntryResponse(e)
	}
	nextCursor := ""
	if len(entries) == f.Limit && len(entries) > 0 {
		nextCursor = entries[len(entries)-1].ID
	}
	c.JSON(http.StatusOK, gin.H{
		"items":       items,
		"next_cursor": nextCursor,
	})
}

// GetQueueStats handles GET /ai-queue/stats.
func (s *Server) GetQueueStats(c *gin.Context) {
	stats, err := s.orch.GetQueueStats(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ExportAiQueue handles GET /ai-queue/export. Claims up to limit
// PENDING entries and streams them as a CSV download.
func (s *Server) ExportAiQueue(c *gin.Context) {
	limit := intQuery(c, "limit", 0)
	rows, err := s.orch.ExportPendingAiScans(c.Request.Context(), limit, actorFromCtx(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	if len(rows) == 0 {
		_ = c.Error(apperrors.NotFound(apperrors.CodeNoPendingEntries, "no pending queue entries to export"))
		return
	}

	filename := "ai-queue-" + time.Now().UTC().Format("20060102-150405") + ".csv"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "text/csv")
	c.Status(http.StatusOK)
	if err := aiqueue.WriteExportCSV(c.Writer, rows); err != nil {
		_ = c.Error(err)
	}
}

// ImportAiQueue handles POST /ai-queue/import. Accepts a CSV upload of
// processed results; row-level failures are reported in the summary,
// not as a request failure.
func (s *Server) ImportAiQueue(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequestField, "multipart field 'file' is required"))
		return
	}
	defer func() { _ = file.Close() }()

	summary, err := s.orch.ImportAiResults(c.Request.Context(), file, actorFromCtx(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// RetryAiScan handles POST /ai-queue/:scanId/retry.
func (s *Server) RetryAiScan(c *gin.Context) {
	scanID := c.Param("scanId")
	if err := s.orch.RetryAiScan(c.Request.Context(), scanID, actorFromCtx(c)); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"scan_id": scanID, "ai_status": "PENDING"})
}

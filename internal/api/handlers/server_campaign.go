package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetCampaignStatus handles GET /campaign. Operator view with absolute
// token numbers.
func (s *Server) GetCampaignStatus(c *gin.Context) {
	status, err := s.orch.GetCampaignStatus(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// GetCampaignMetrics handles GET /campaign/metrics. Public view:
// percentages and urgency only, no absolute token numbers.
func (s *Server) GetCampaignMetrics(c *gin.Context) {
	metrics, err := s.orch.GetCampaignMetrics(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// PauseCampaign handles POST /campaign/pause.
func (s *Server) PauseCampaign(c *gin.Context) {
	if err := s.orch.PauseCampaign(c.Request.Context(), actorFromCtx(c)); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "PAUSED"})
}

// ResumeCampaign handles POST /campaign/resume.
func (s *Server) ResumeCampaign(c *gin.Context) {
	if err := s.orch.ResumeCampaign(c.Request.Context(), actorFromCtx(c)); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ACTIVE"})
}

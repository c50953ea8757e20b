package app

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"a11ysentinel.io/sentinel/internal/api/handlers"
	"a11ysentinel.io/sentinel/internal/api/middleware"
)

func newRouter(server *handlers.Server, jwtCfg middleware.JWTConfig, corsOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.ErrorHandler())
	if len(corsOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     corsOrigins,
			AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Authorization", "Content-Type", "X-Request-ID"},
			ExposeHeaders:    []string{"Content-Disposition"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	router.Use(middleware.MustOpenAPIValidator("/api/v1"))

	router.GET("/healthz", server.GetHealth)
	router.GET("/openapi.yaml", server.GetOpenAPISpec)

	v1 := router.Group("/api/v1")
	v1.POST("/auth/login", server.Login)
	// Public donation-page metrics: percentages and urgency only.
	v1.GET("/campaign/metrics", server.GetCampaignMetrics)

	authed := v1.Group("", middleware.JWTAuth(jwtCfg.SigningKey))

	batches := authed.Group("/batches")
	{
		batches.GET("", middleware.RequirePermission(middleware.PermBatchesRead), server.ListBatches)
		batches.POST("", middleware.RequirePermission(middleware.PermBatchesWrite), server.CreateBatch)
		batches.GET("/:batchId", middleware.RequirePermission(middleware.PermBatchesRead), server.GetBatch)
		batches.GET("/:batchId/metrics", middleware.RequirePermission(middleware.PermBatchesRead), server.GetBatchMetrics)
		batches.GET("/:batchId/export", middleware.RequirePermission(middleware.PermBatchesRead), server.ExportBatch)
		batches.POST("/:batchId/cancel", middleware.RequirePermission(middleware.PermBatchesWrite), server.CancelBatch)
		batches.POST("/:batchId/retry", middleware.RequirePermission(middleware.PermBatchesWrite), server.RetryFailedScans)
		batches.DELETE("/:batchId", middleware.RequirePermission(middleware.PermBatchesDelete), server.DeleteBatch)
	}

	authed.POST("/scans", middleware.RequirePermission(middleware.PermBatchesWrite), server.CreateScan)

	campaignGroup := authed.Group("/campaign")
	{
		campaignGroup.GET("", middleware.RequirePermission(middleware.PermCampaignRead), server.GetCampaignStatus)
		campaignGroup.POST("/pause", middleware.RequirePermission(middleware.PermCampaignWrite), server.PauseCampaign)
		campaignGroup.POST("/resume", middleware.RequirePermission(middleware.PermCampaignWrite), server.ResumeCampaign)
	}

	aiQueue := authed.Group("/ai-queue")
	{
		aiQueue.GET("", middleware.RequirePermission(middleware.PermAiQueueRead), server.ListAiQueue)
		aiQueue.GET("/stats", middleware.RequirePermission(middleware.PermAiQueueRead), server.GetQueueStats)
		aiQueue.GET("/export", middleware.RequirePermission(middleware.PermAiQueueWrite), server.ExportAiQueue)
		aiQueue.POST("/import", middleware.RequirePermission(middleware.PermAiQueueWrite), server.ImportAiQueue)
		aiQueue.POST("/:scanId/retry", middleware.RequirePermission(middleware.PermAiQueueWrite), server.RetryAiScan)
	}

	return router
}

package middleware

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
)

// Flat permission strings carried in the JWT. "platform:admin" implies
// every other permission.
const (
	PermPlatformAdmin = "platform:admin"
	PermBatchesRead   = "batches:read"
	PermBatchesWrite  = "batches:write"
	PermBatchesDelete = "batches:delete"
	PermCampaignRead  = "campaign:read"
	PermCampaignWrite = "campaign:write"
	PermAiQueueRead   = "ai_queue:read"
	PermAiQueueWrite  = "ai_queue:write"
)

// AllPermissions lists every grantable permission, for seeding admins.
func AllPermissions() []string {
	return []string{
		PermBatchesRead, PermBatchesWrite, PermBatchesDelete,
		PermCampaignRead, PermCampaignWrite,
		PermAiQueueRead, PermAiQueueWrite,
	}
}

// RequirePermission returns middleware that checks if the authenticated
// user holds a specific permission.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		perms, exists := c.Get("permissions")
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code": "FORBIDDEN", "message": "no permissions in context",
			})
			return
		}
		permList, ok := perms.([]string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code": "FORBIDDEN", "message": "invalid permissions type",
			})
			return
		}

		if slices.Contains(permList, PermPlatformAdmin) {
			c.Next()
			return
		}

		if slices.Contains(permList, permission) {
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"code": "FORBIDDEN", "message": "insufficient permissions",
		})
	}
}

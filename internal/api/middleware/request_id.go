package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader is honored when the caller supplies its own trace ID.
const RequestIDHeader = "X-Request-ID"

type contextKey string

const (
	ctxKeyRequestID   contextKey = "request_id"
	ctxKeyUserID      contextKey = "user_id"
	ctxKeyUsername    contextKey = "username"
	ctxKeyPermissions contextKey = "permissions"
)

// RequestID tags every request with a trace ID, generating a UUIDv7
// when the caller did not send one, and echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(RequestIDHeader)
		if rid == "" {
			if id, err := uuid.NewV7(); err == nil {
				rid = id.String()
			} else {
				rid = uuid.NewString()
			}
		}
		c.Set(string(ctxKeyRequestID), rid)
		c.Writer.Header().Set(RequestIDHeader, rid)
		c.Request = c.Request.WithContext(
			context.WithValue(c.Request.Context(), ctxKeyRequestID, rid),
		)
		c.Next()
	}
}

// SetUserContext stores the authenticated identity on the request
// context so layers below the handlers can attribute work.
func SetUserContext(ctx context.Context, userID, username string, permissions []string) context.Context {
	ctx = context.WithValue(ctx, ctxKeyUserID, userID)
	ctx = context.WithValue(ctx, ctxKeyUsername, username)
	return context.WithValue(ctx, ctxKeyPermissions, permissions)
}

func GetRequestID(ctx context.Context) string { return ctxString(ctx, ctxKeyRequestID) }
func GetUserID(ctx context.Context) string    { return ctxString(ctx, ctxKeyUserID) }
func GetUsername(ctx context.Context) string  { return ctxString(ctx, ctxKeyUsername) }

// GetPermissions returns the caller's permission set, nil when the
// request was not authenticated.
func GetPermissions(ctx context.Context) []string {
	if v, ok := ctx.Value(ctxKeyPermissions).([]string); ok {
		return v
	}
	return nil
}

func ctxString(ctx context.Context, key contextKey) string {
	if v, ok := ctx.Value(key).(string); ok {
		return v
	}
	return ""
}

// Package handlers implements the Sentinel HTTP API on top of the
// orchestrator facade. Handlers bind/validate input, call the facade,
// and push failures through the shared error-handler middleware via
// c.Error.
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"a11ysentinel.io/sentinel/ent"
	"a11ysentinel.io/sentinel/internal/api/middleware"
	"a11ysentinel.io/sentinel/internal/orchestrator"
)

// Server implements all API handlers.
type Server struct {
	client *ent.Client
	pool   *pgxpool.Pool
	jwtCfg middleware.JWTConfig
	orch   *orchestrator.Orchestrator
}

// ServerDeps holds all dependencies for creating a Server. Manual DI,
// no Wire/Dig.
type ServerDeps struct {
	EntClient    *ent.Client
	Pool         *pgxpool.Pool
	JWTCfg       middleware.JWTConfig
	Orchestrator *orchestrator.Orchestrator
}

// NewServer creates a new Server with all dependencies.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		client: deps.EntClient,
		pool:   deps.Pool,
		jwtCfg: deps.JWTCfg,
		orch:   deps.Orchestrator,
	}
}

// actorFromCtx extracts the authenticated user ID from the request context.
func actorFromCtx(c *gin.Context) string {
	if uid := c.GetString("user_id"); uid != "" {
		return uid
	}
	return "anonymous"
}

package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	entuser "a11ysentinel.io/sentinel/ent/user"
	"a11ysentinel.io/sentinel/internal/api/middleware"
	apperrors "a11ysentinel.io/sentinel/internal/pkg/errors"
	"a11ysentinel.io/sentinel/internal/pkg/logger"
)

// PasswordHashCost is the bcrypt cost used for stored credentials.
const PasswordHashCost = 12

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Login handles POST /auth/login.
func (s *Server) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequestField, "username and password are required"))
		return
	}

	user, err := s.client.User.Query().
		Where(entuser.UsernameEQ(req.Username)).
		Where(entuser.EnabledEQ(true)).
		Only(c.Request.Context())
	if err != nil {
		logger.Warn("login failed: invalid credentials", zap.String("username", req.Username))
		_ = c.Error(apperrors.Unauthorized(apperrors.CodeAuthFailed, "invalid credentials"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("login failed: invalid credentials", zap.String("username", req.Username))
		_ = c.Error(apperrors.Unauthorized(apperrors.CodeAuthFailed, "invalid credentials"))
		return
	}

	token, expiresAt, err := middleware.GenerateToken(s.jwtCfg, user.ID, user.Username, user.Permissions)
	if err != nil {
		logger.Error("failed to generate token", zap.Error(err))
		_ = c.Error(apperrors.Wrap(err, "INTERNAL_ERROR", "failed to generate token", http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusOK, loginResponse{Token: token, ExpiresAt: expiresAt})
}

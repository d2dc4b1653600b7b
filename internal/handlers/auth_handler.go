package handlers

import (
	"net/http"

	"github.com/careerhub/career-portal-backend/internal/config"
	"github.com/careerhub/career-portal-backend/internal/middleware"
	"github.com/careerhub/career-portal-backend/internal/models"
	"github.com/careerhub/career-portal-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles login and logout
type AuthHandler struct {
	authService services.AuthService
	cfg         *config.Config
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
	}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		middleware.SessionCookieName,
		token,
		int(h.cfg.Session.Lifetime.Seconds()),
		"/",
		"",
		h.cfg.IsProduction(),
		true,
	)

	c.JSON(http.StatusOK, models.LoginResponse{Token: token, User: user})
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", h.cfg.IsProduction(), true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

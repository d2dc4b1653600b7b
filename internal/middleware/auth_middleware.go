package middleware

import (
	"net/http"
	"strings"

	"github.com/careerhub/career-portal-backend/internal/apperrors"
	"github.com/careerhub/career-portal-backend/internal/config"
	"github.com/careerhub/career-portal-backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie carrying the signed session token
const SessionCookieName = "session"

// Context keys set by SessionAuth
const (
	ContextUserID   = "userID"
	ContextUsername = "username"
	ContextIsAdmin  = "isAdmin"
)

// SessionAuth resolves the session from the session cookie or an
// Authorization bearer header. Invalid or expired tokens leave the request
// anonymous; the guards below decide whether that is fatal.
func SessionAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := utils.ValidateSessionToken(token, cfg.Session.Secret)
		if err != nil {
			c.Next()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextIsAdmin, claims.IsAdmin)
		c.Next()
	}
}

// RequireAuth aborts with 401 when the request carries no authenticated identity
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextUserID) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":    apperrors.ErrUnauthenticated.Error(),
				"redirect": "/login",
			})
			return
		}
		c.Next()
	}
}

// RequireAdmin aborts with 403 when the session lacks admin privileges
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextUserID) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":    apperrors.ErrUnauthenticated.Error(),
				"redirect": "/login",
			})
			return
		}
		if !c.GetBool(ContextIsAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":    apperrors.ErrAccessDenied.Error(),
				"redirect": "/login",
			})
			return
		}
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}

	const bearerSchema = "Bearer "
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, bearerSchema) {
		return authHeader[len(bearerSchema):]
	}
	return ""
}

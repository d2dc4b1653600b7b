package handlers

import (
	"errors"
	"net/http"

	"github.com/careerhub/career-portal-backend/internal/apperrors"
	"github.com/careerhub/career-portal-backend/internal/middleware"
	"github.com/careerhub/career-portal-backend/internal/models"
	"github.com/gin-gonic/gin"
)

// respondError translates workflow errors into HTTP statuses. Anything not in
// the taxonomy is a 500.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrAccountDisabled):
		status = http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrAccessDenied):
		status = http.StatusForbidden
	case errors.Is(err, apperrors.ErrInvalidType),
		errors.Is(err, apperrors.ErrInvalidStatus),
		errors.Is(err, apperrors.ErrInvalidAction),
		errors.Is(err, apperrors.ErrInvalidFileType),
		errors.Is(err, apperrors.ErrInvalidUpload),
		errors.Is(err, apperrors.ErrUploadTooLarge),
		errors.Is(err, apperrors.ErrUsernameTaken):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrInvalidTransition):
		status = http.StatusConflict
	case errors.Is(err, apperrors.ErrCorruptArtifact):
		status = http.StatusUnprocessableEntity
	}

	c.JSON(status, gin.H{"error": err.Error()})
}

// activityEntry builds an audit entry from the current admin session and request
func activityEntry(c *gin.Context, action, entity, entityID string) *models.ActivityLog {
	return &models.ActivityLog{
		UserID:   c.GetString(middleware.ContextUserID),
		Username: c.GetString(middleware.ContextUsername),
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Method:   c.Request.Method,
		Path:     c.Request.URL.Path,
		ClientIP: c.ClientIP(),
	}
}

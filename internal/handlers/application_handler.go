package handlers

import (
	"fmt"
	"net/http"

	"github.com/careerhub/career-portal-backend/internal/models"
	"github.com/careerhub/career-portal-backend/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ApplicationHandler handles application-related HTTP requests
type ApplicationHandler struct {
	applicationService services.ApplicationService
	activityService    services.ActivityService
}

// NewApplicationHandler creates a new ApplicationHandler
func NewApplicationHandler(applicationService services.ApplicationService, activityService services.ActivityService) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: applicationService,
		activityService:    activityService,
	}
}

// Submit handles POST /apply/:id (multipart form with a "resume" file)
func (h *ApplicationHandler) Submit(c *gin.Context) {
	opportunityID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid opportunity ID"})
		return
	}

	req := &services.SubmitRequest{
		Name:  c.PostForm("name"),
		Email: c.PostForm("email"),
		Phone: c.PostForm("phone"),
	}
	if req.Name == "" || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and email are required"})
		return
	}

	resume, err := c.FormFile("resume")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A resume file is required"})
		return
	}

	application, err := h.applicationService.Submit(c.Request.Context(), opportunityID, req, resume)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, application)
}

// List handles GET /admin/applications
func (h *ApplicationHandler) List(c *gin.Context) {
	applications, err := h.applicationService.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, applications)
}

// Get handles GET /admin/applications/:id
func (h *ApplicationHandler) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	application, err := h.applicationService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, application)
}

// Moderate handles POST /admin/applications/:id/:action where action is
// approve or reject
func (h *ApplicationHandler) Moderate(action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
			return
		}

		if err := h.applicationService.Moderate(c.Request.Context(), id, action); err != nil {
			respondError(c, err)
			return
		}

		h.activityService.Record(c.Request.Context(), activityEntry(c, action+"_application", "application", id.Hex()))
		c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Application %sd", action)})
	}
}

// BulkAction handles POST /admin/applications/bulk
func (h *ApplicationHandler) BulkAction(c *gin.Context) {
	var req models.BulkActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.applicationService.BulkModerate(c.Request.Context(), req.IDs, req.Action)
	if err != nil {
		respondError(c, err)
		return
	}

	h.activityService.Record(c.Request.Context(), activityEntry(c, "bulk_"+req.Action+"_applications", "application", ""))
	c.JSON(http.StatusOK, result)
}

// Delete handles DELETE /admin/applications/:id
func (h *ApplicationHandler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := h.applicationService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	h.activityService.Record(c.Request.Context(), activityEntry(c, "delete_application", "application", id.Hex()))
	c.JSON(http.StatusOK, gin.H{"message": "Application deleted successfully"})
}

// DownloadResume handles GET /admin/applications/:id/resume, streaming the
// stored artifact with a forced download disposition
func (h *ApplicationHandler) DownloadResume(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	resume, err := h.applicationService.FetchResume(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", resume.Filename))
	c.Header("Content-Type", resume.ContentType)
	c.File(resume.Path)
}

package handlers

import (
	"net/http"

	"github.com/careerhub/career-portal-backend/internal/models"
	"github.com/careerhub/career-portal-backend/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OpportunityHandler handles opportunity-related HTTP requests
type OpportunityHandler struct {
	opportunityService services.OpportunityService
	activityService    services.ActivityService
}

// NewOpportunityHandler creates a new OpportunityHandler
func NewOpportunityHandler(opportunityService services.OpportunityService, activityService services.ActivityService) *OpportunityHandler {
	return &OpportunityHandler{
		opportunityService: opportunityService,
		activityService:    activityService,
	}
}

// List handles GET /opportunities. The public listing only shows active
// postings.
func (h *OpportunityHandler) List(c *gin.Context) {
	opportunities, err := h.opportunityService.List(c.Request.Context(), c.Query("type"), models.OpportunityStatusActive)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, opportunities)
}

// ListByType returns a handler serving one public category page
// (GET /internships, /jobs, /hackathons)
func (h *OpportunityHandler) ListByType(opportunityType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		opportunities, err := h.opportunityService.List(c.Request.Context(), opportunityType, models.OpportunityStatusActive)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, opportunities)
	}
}

// Get handles GET /opportunities/:id
func (h *OpportunityHandler) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	opportunity, err := h.opportunityService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, opportunity)
}

// AdminList handles GET /admin/opportunities, showing every status
func (h *OpportunityHandler) AdminList(c *gin.Context) {
	opportunities, err := h.opportunityService.List(c.Request.Context(), c.Query("type"), c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, opportunities)
}

// Create handles POST /admin/opportunities
func (h *OpportunityHandler) Create(c *gin.Context) {
	var req models.OpportunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	opportunity, err := h.opportunityService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.activityService.Record(c.Request.Context(), activityEntry(c, "create_opportunity", "opportunity", opportunity.ID.Hex()))
	c.JSON(http.StatusCreated, opportunity)
}

// Update handles PUT /admin/opportunities/:id
func (h *OpportunityHandler) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var req models.OpportunityUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.opportunityService.Update(c.Request.Context(), id, &req); err != nil {
		respondError(c, err)
		return
	}

	h.activityService.Record(c.Request.Context(), activityEntry(c, "update_opportunity", "opportunity", id.Hex()))
	c.JSON(http.StatusOK, gin.H{"message": "Opportunity updated successfully"})
}

// Delete handles DELETE /admin/opportunities/:id
func (h *OpportunityHandler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := h.opportunityService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	h.activityService.Record(c.Request.Context(), activityEntry(c, "delete_opportunity", "opportunity", id.Hex()))
	c.JSON(http.StatusOK, gin.H{"message": "Opportunity deleted successfully"})
}

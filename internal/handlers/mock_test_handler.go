package handlers

import (
	"net/http"

	"github.com/careerhub/career-portal-backend/internal/models"
	"github.com/careerhub/career-portal-backend/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockTestHandler handles mock test HTTP requests
type MockTestHandler struct {
	mockTestService services.MockTestService
	activityService services.ActivityService
}

// NewMockTestHandler creates a new MockTestHandler
func NewMockTestHandler(mockTestService services.MockTestService, activityService services.ActivityService) *MockTestHandler {
	return &MockTestHandler{
		mockTestService: mockTestService,
		activityService: activityService,
	}
}

// List handles GET /mock-tests
func (h *MockTestHandler) List(c *gin.Context) {
	tests, err := h.mockTestService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tests)
}

// Create handles POST /admin/mock-tests
func (h *MockTestHandler) Create(c *gin.Context) {
	var req models.MockTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	test, err := h.mockTestService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.activityService.Record(c.Request.Context(), activityEntry(c, "create_mock_test", "mock_test", test.ID.Hex()))
	c.JSON(http.StatusCreated, test)
}

// Delete handles DELETE /admin/mock-tests/:id
func (h *MockTestHandler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := h.mockTestService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	h.activityService.Record(c.Request.Context(), activityEntry(c, "delete_mock_test", "mock_test", id.Hex()))
	c.JSON(http.StatusOK, gin.H{"message": "Mock test deleted successfully"})
}

package handlers

import (
	"net/http"

	"github.com/careerhub/career-portal-backend/internal/models"
	"github.com/careerhub/career-portal-backend/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserHandler handles user management HTTP requests
type UserHandler struct {
	userService     services.UserService
	activityService services.ActivityService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService services.UserService, activityService services.ActivityService) *UserHandler {
	return &UserHandler{
		userService:     userService,
		activityService: activityService,
	}
}

// List handles GET /admin/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.GetAllUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// Create handles POST /admin/users
func (h *UserHandler) Create(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.activityService.Record(c.Request.Context(), activityEntry(c, "create_user", "user", user.ID.Hex()))
	c.JSON(http.StatusCreated, user)
}

// ResetPassword handles POST /admin/users/:id/reset-password
func (h *UserHandler) ResetPassword(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.userService.ResetPassword(c.Request.Context(), id, req.Password); err != nil {
		respondError(c, err)
		return
	}

	h.activityService.Record(c.Request.Context(), activityEntry(c, "reset_password", "user", id.Hex()))
	c.JSON(http.StatusOK, gin.H{"message": "Password reset successfully"})
}

package handlers

import (
	"net/http"

	"github.com/careerhub/career-portal-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// DashboardHandler handles the admin dashboard read views
type DashboardHandler struct {
	dashboardService services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Dashboard handles GET /admin/dashboard
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	stats, err := h.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	activity, err := h.dashboardService.GetRecentActivity(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":            stats,
		"recentActivities": activity,
	})
}

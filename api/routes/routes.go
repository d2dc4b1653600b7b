package routes

import (
	"net/http"

	"github.com/careerhub/career-portal-backend/internal/config"
	"github.com/careerhub/career-portal-backend/internal/handlers"
	"github.com/careerhub/career-portal-backend/internal/middleware"
	"github.com/careerhub/career-portal-backend/internal/models"
	"github.com/gin-gonic/gin"
)

// HandlerDependencies bundles the handlers wired up in main
type HandlerDependencies struct {
	AuthHandler        *handlers.AuthHandler
	OpportunityHandler *handlers.OpportunityHandler
	ApplicationHandler *handlers.ApplicationHandler
	DashboardHandler   *handlers.DashboardHandler
	UserHandler        *handlers.UserHandler
	MockTestHandler    *handlers.MockTestHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.MaxMultipartMemory = cfg.Upload.MaxSize

	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.SessionAuth(cfg))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	public := router.Group("/api/v1")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/login", deps.AuthHandler.Login)
			auth.POST("/logout", deps.AuthHandler.Logout)
		}

		public.GET("/opportunities", deps.OpportunityHandler.List)
		public.GET("/opportunities/:id", deps.OpportunityHandler.Get)
		public.GET("/internships", deps.OpportunityHandler.ListByType(models.TypeInternship))
		public.GET("/jobs", deps.OpportunityHandler.ListByType(models.TypeJob))
		public.GET("/hackathons", deps.OpportunityHandler.ListByType(models.TypeHackathon))
		public.GET("/mock-tests", deps.MockTestHandler.List)

		public.POST("/apply/:id", deps.ApplicationHandler.Submit)
	}

	admin := router.Group("/api/v1/admin")
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/dashboard", deps.DashboardHandler.Dashboard)

		admin.GET("/opportunities", deps.OpportunityHandler.AdminList)
		admin.POST("/opportunities", deps.OpportunityHandler.Create)
		admin.PUT("/opportunities/:id", deps.OpportunityHandler.Update)
		admin.DELETE("/opportunities/:id", deps.OpportunityHandler.Delete)

		admin.GET("/applications", deps.ApplicationHandler.List)
		admin.POST("/applications/bulk", deps.ApplicationHandler.BulkAction)
		admin.GET("/applications/:id", deps.ApplicationHandler.Get)
		admin.POST("/applications/:id/approve", deps.ApplicationHandler.Moderate(models.BulkActionApprove))
		admin.POST("/applications/:id/reject", deps.ApplicationHandler.Moderate(models.BulkActionReject))
		admin.DELETE("/applications/:id", deps.ApplicationHandler.Delete)
		admin.GET("/applications/:id/resume", deps.ApplicationHandler.DownloadResume)

		admin.GET("/users", deps.UserHandler.List)
		admin.POST("/users", deps.UserHandler.Create)
		admin.POST("/users/:id/reset-password", deps.UserHandler.ResetPassword)

		admin.POST("/mock-tests", deps.MockTestHandler.Create)
		admin.DELETE("/mock-tests/:id", deps.MockTestHandler.Delete)
	}

	return router
}

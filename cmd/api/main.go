package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/careerhub/career-portal-backend/api/routes"
	"github.com/careerhub/career-portal-backend/internal/config"
	"github.com/careerhub/career-portal-backend/internal/handlers"
	"github.com/careerhub/career-portal-backend/internal/logger"
	"github.com/careerhub/career-portal-backend/internal/repositories"
	mongorepo "github.com/careerhub/career-portal-backend/internal/repositories/mongodb"
	"github.com/careerhub/career-portal-backend/internal/seed"
	"github.com/careerhub/career-portal-backend/internal/services"
	"github.com/careerhub/career-portal-backend/internal/storage"
	"github.com/careerhub/career-portal-backend/pkg/mongodb"
	"github.com/joho/godotenv"
)

func main() {
	// Missing .env is fine, real deployments set the environment directly
	_ = godotenv.Load(config.GetEnv("DOTENV_PATH", ".env"))

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Configure(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	if cfg.Session.Secret == "" {
		logger.Fatal().Msg("SESSION_SECRET is not configured")
	}

	mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			logger.Error().Err(err).Msg("Error disconnecting from MongoDB")
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)

	resumeStore, err := storage.NewResumeStore(cfg.Upload.Dir, cfg.Upload.MaxSize, cfg.Upload.AllowedExtensions)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize resume storage")
	}

	// Repositories
	userMongoRepo := mongorepo.NewUserRepository(db)
	indexCtx, cancelIndex := context.WithTimeout(context.Background(), 10*time.Second)
	if err := userMongoRepo.EnsureIndexes(indexCtx); err != nil {
		logger.Fatal().Err(err).Msg("Failed to create user indexes")
	}
	cancelIndex()

	var userRepo repositories.UserRepository = userMongoRepo
	var opportunityRepo repositories.OpportunityRepository = mongorepo.NewOpportunityRepository(db)
	var applicationRepo repositories.ApplicationRepository = mongorepo.NewApplicationRepository(db)
	var mockTestRepo repositories.MockTestRepository = mongorepo.NewMockTestRepository(db)
	var activityRepo repositories.ActivityLogRepository = mongorepo.NewActivityLogRepository(db)

	// Services
	authService := services.NewAuthService(userRepo, cfg)
	userService := services.NewUserService(userRepo)
	opportunityService := services.NewOpportunityService(opportunityRepo)
	applicationService := services.NewApplicationService(applicationRepo, opportunityRepo, resumeStore)
	mockTestService := services.NewMockTestService(mockTestRepo)
	activityService := services.NewActivityService(activityRepo)
	dashboardService := services.NewDashboardService(opportunityRepo, applicationRepo, userRepo, activityRepo)

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 10*time.Second)
	if err := seed.EnsureAdmin(seedCtx, userService, cfg); err != nil {
		logger.Error().Err(err).Msg("Admin seed failed")
	}
	cancelSeed()

	// Handlers
	deps := routes.HandlerDependencies{
		AuthHandler:        handlers.NewAuthHandler(authService, cfg),
		OpportunityHandler: handlers.NewOpportunityHandler(opportunityService, activityService),
		ApplicationHandler: handlers.NewApplicationHandler(applicationService, activityService),
		DashboardHandler:   handlers.NewDashboardHandler(dashboardService),
		UserHandler:        handlers.NewUserHandler(userService, activityService),
		MockTestHandler:    handlers.NewMockTestHandler(mockTestService, activityService),
	}

	router := routes.SetupRouter(cfg, deps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		logger.Info().Str("port", cfg.Server.Port).Str("environment", cfg.Environment).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exiting")
}

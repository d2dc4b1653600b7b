package services

import (
	"context"
	"time"

	"github.com/careerhub/career-portal-backend/internal/models"
	"github.com/careerhub/career-portal-backend/internal/repositories"
)

const recentActivityLimit = 10

// DashboardService composes read-only aggregates for the admin dashboard
type DashboardService interface {
	GetStats(ctx context.Context) (*models.DashboardStats, error)
	GetRecentActivity(ctx context.Context) ([]*models.ActivityLog, error)
}

type dashboardService struct {
	opportunityRepo repositories.OpportunityRepository
	applicationRepo repositories.ApplicationRepository
	userRepo        repositories.UserRepository
	activityRepo    repositories.ActivityLogRepository
}

// NewDashboardService creates a new DashboardService implementation
func NewDashboardService(
	opportunityRepo repositories.OpportunityRepository,
	applicationRepo repositories.ApplicationRepository,
	userRepo repositories.UserRepository,
	activityRepo repositories.ActivityLogRepository,
) DashboardService {
	return &dashboardService{
		opportunityRepo: opportunityRepo,
		applicationRepo: applicationRepo,
		userRepo:        userRepo,
		activityRepo:    activityRepo,
	}
}

// GetStats recomputes dashboard counts at request time
func (s *dashboardService) GetStats(ctx context.Context) (*models.DashboardStats, error) {
	totalOpportunities, err := s.opportunityRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.applicationRepo.CountByStatus(ctx, models.ApplicationStatusPending)
	if err != nil {
		return nil, err
	}
	totalUsers, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	newApplications, err := s.applicationRepo.CountCreatedSince(ctx, time.Now().Add(-24*time.Hour))
	if err != nil {
		return nil, err
	}

	return &models.DashboardStats{
		TotalOpportunities:  totalOpportunities,
		PendingApplications: pending,
		TotalUsers:          totalUsers,
		NewApplications:     newApplications,
	}, nil
}

// GetRecentActivity returns the most recent audit entries
func (s *dashboardService) GetRecentActivity(ctx context.Context) ([]*models.ActivityLog, error) {
	return s.activityRepo.FindRecent(ctx, recentActivityLimit)
}

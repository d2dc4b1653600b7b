package services

import (
	"context"

	"github.com/careerhub/career-portal-backend/internal/logger"
	"github.com/careerhub/career-portal-backend/internal/models"
	"github.com/careerhub/career-portal-backend/internal/repositories"
)

// ActivityService records admin actions for the audit trail
type ActivityService interface {
	// Record writes an audit entry. Failures are logged and swallowed so a
	// broken audit trail never blocks the action itself.
	Record(ctx context.Context, entry *models.ActivityLog)
}

type activityService struct {
	activityRepo repositories.ActivityLogRepository
}

// NewActivityService creates a new ActivityService implementation
func NewActivityService(activityRepo repositories.ActivityLogRepository) ActivityService {
	return &activityService{activityRepo: activityRepo}
}

// Record persists one audit entry
func (s *activityService) Record(ctx context.Context, entry *models.ActivityLog) {
	if err := s.activityRepo.Create(ctx, entry); err != nil {
		logger.Warn().Err(err).Str("action", entry.Action).Msg("Failed to record activity")
	}
}

package repositories

import (
	"context"
	"time"

	"github.com/careerhub/career-portal-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	UpdatePassword(ctx context.Context, id primitive.ObjectID, hash string) error
	UpdateLastLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error
	FindAll(ctx context.Context) ([]*models.User, error)
	Count(ctx context.Context) (int64, error)
}

// OpportunityRepository defines the interface for opportunity data operations
type OpportunityRepository interface {
	Create(ctx context.Context, opportunity *models.Opportunity) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Opportunity, error)
	// Find returns opportunities newest first. Empty type or status means
	// no filter on that field.
	Find(ctx context.Context, opportunityType, status string) ([]*models.Opportunity, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

// ApplicationRepository defines the interface for application data operations
type ApplicationRepository interface {
	Create(ctx context.Context, application *models.Application) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Application, error)
	FindAll(ctx context.Context) ([]*models.Application, error)
	FindByOpportunityID(ctx context.Context, opportunityID primitive.ObjectID) ([]*models.Application, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	CountByStatus(ctx context.Context, status string) (int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}

// MockTestRepository defines the interface for mock test data operations
type MockTestRepository interface {
	Create(ctx context.Context, test *models.MockTest) error
	FindAll(ctx context.Context) ([]*models.MockTest, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ActivityLogRepository defines the interface for audit log operations
type ActivityLogRepository interface {
	Create(ctx context.Context, entry *models.ActivityLog) error
	FindRecent(ctx context.Context, limit int64) ([]*models.ActivityLog, error)
}

package mongodb

import (
	"context"
	"time"

	"github.com/careerhub/career-portal-backend/internal/models"
	"github.com/careerhub/career-portal-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure ActivityLogRepository implements the interface
var _ repositories.ActivityLogRepository = (*ActivityLogRepository)(nil)

// ActivityLogRepository handles MongoDB operations for ActivityLog
type ActivityLogRepository struct {
	collection *mongo.Collection
}

// NewActivityLogRepository creates a new ActivityLogRepository
func NewActivityLogRepository(db *mongo.Database) *ActivityLogRepository {
	return &ActivityLogRepository{
		collection: db.Collection("activity_log"),
	}
}

// Create inserts a new audit entry
func (r *ActivityLogRepository) Create(ctx context.Context, entry *models.ActivityLog) error {
	entry.ID = primitive.NewObjectID()
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, entry)
	return err
}

// FindRecent retrieves the most recent audit entries
func (r *ActivityLogRepository) FindRecent(ctx context.Context, limit int64) ([]*models.ActivityLog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}).SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []*models.ActivityLog
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*models.ActivityLog{}
	}
	return entries, nil
}

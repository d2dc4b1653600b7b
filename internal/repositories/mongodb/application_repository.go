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

// Compile-time check to ensure ApplicationRepository implements the interface
var _ repositories.ApplicationRepository = (*ApplicationRepository)(nil)

// ApplicationRepository handles MongoDB operations for Application
type ApplicationRepository struct {
	collection *mongo.Collection
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *mongo.Database) *ApplicationRepository {
	return &ApplicationRepository{
		collection: db.Collection("applications"),
	}
}

// Create inserts a new application
func (r *ApplicationRepository) Create(ctx context.Context, application *models.Application) error {
	application.ID = primitive.NewObjectID()
	application.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, application)
	return err
}

// FindByID finds an application by ID
func (r *ApplicationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Application, error) {
	var application models.Application
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&application)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &application, nil
}

// FindAll retrieves all applications newest first
func (r *ApplicationRepository) FindAll(ctx context.Context) ([]*models.Application, error) {
	return r.find(ctx, bson.M{})
}

// FindByOpportunityID retrieves applications for one opportunity newest first
func (r *ApplicationRepository) FindByOpportunityID(ctx context.Context, opportunityID primitive.ObjectID) ([]*models.Application, error) {
	return r.find(ctx, bson.M{"opportunity_id": opportunityID})
}

func (r *ApplicationRepository) find(ctx context.Context, filter bson.M) ([]*models.Application, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var applications []*models.Application
	if err = cursor.All(ctx, &applications); err != nil {
		return nil, err
	}
	if applications == nil {
		applications = []*models.Application{}
	}
	return applications, nil
}

// UpdateStatus sets the status of an application
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{"status": status}}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete removes an application by ID
func (r *ApplicationRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// CountByStatus returns the number of applications with the given status.
// An empty status counts everything.
func (r *ApplicationRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	return r.collection.CountDocuments(ctx, filter)
}

// CountCreatedSince returns the number of applications created after the given time
func (r *ApplicationRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"created_at": bson.M{"$gte": since}})
}

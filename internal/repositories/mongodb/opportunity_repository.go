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

// Compile-time check to ensure OpportunityRepository implements the interface
var _ repositories.OpportunityRepository = (*OpportunityRepository)(nil)

// OpportunityRepository handles MongoDB operations for Opportunity
type OpportunityRepository struct {
	collection *mongo.Collection
}

// NewOpportunityRepository creates a new OpportunityRepository
func NewOpportunityRepository(db *mongo.Database) *OpportunityRepository {
	return &OpportunityRepository{
		collection: db.Collection("opportunities"),
	}
}

// Create inserts a new opportunity
func (r *OpportunityRepository) Create(ctx context.Context, opportunity *models.Opportunity) error {
	opportunity.ID = primitive.NewObjectID()
	opportunity.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, opportunity)
	return err
}

// FindByID finds an opportunity by ID
func (r *OpportunityRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Opportunity, error) {
	var opportunity models.Opportunity
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&opportunity)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &opportunity, nil
}

// Find retrieves opportunities newest first, optionally filtered by type and status
func (r *OpportunityRepository) Find(ctx context.Context, opportunityType, status string) ([]*models.Opportunity, error) {
	filter := bson.M{}
	if opportunityType != "" {
		filter["type"] = opportunityType
	}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var opportunities []*models.Opportunity
	if err = cursor.All(ctx, &opportunities); err != nil {
		return nil, err
	}
	if opportunities == nil {
		opportunities = []*models.Opportunity{}
	}
	return opportunities, nil
}

// Update applies a partial update to an opportunity
func (r *OpportunityRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	filter := bson.M{"_id": id}
	update := bson.M{"$set": updates}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete removes an opportunity by ID
func (r *OpportunityRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Count returns the number of opportunities
func (r *OpportunityRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

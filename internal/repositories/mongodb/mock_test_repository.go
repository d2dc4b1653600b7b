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

// Compile-time check to ensure MockTestRepository implements the interface
var _ repositories.MockTestRepository = (*MockTestRepository)(nil)

// MockTestRepository handles MongoDB operations for MockTest
type MockTestRepository struct {
	collection *mongo.Collection
}

// NewMockTestRepository creates a new MockTestRepository
func NewMockTestRepository(db *mongo.Database) *MockTestRepository {
	return &MockTestRepository{
		collection: db.Collection("mock_tests"),
	}
}

// Create inserts a new mock test
func (r *MockTestRepository) Create(ctx context.Context, test *models.MockTest) error {
	test.ID = primitive.NewObjectID()
	test.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, test)
	return err
}

// FindAll retrieves all mock tests newest first
func (r *MockTestRepository) FindAll(ctx context.Context) ([]*models.MockTest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tests []*models.MockTest
	if err = cursor.All(ctx, &tests); err != nil {
		return nil, err
	}
	if tests == nil {
		tests = []*models.MockTest{}
	}
	return tests, nil
}

// Delete removes a mock test by ID
func (r *MockTestRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

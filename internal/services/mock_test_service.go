package services

import (
	"context"
	"errors"

	"github.com/careerhub/career-portal-backend/internal/apperrors"
	"github.com/careerhub/career-portal-backend/internal/models"
	"github.com/careerhub/career-portal-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MockTestService defines the interface for mock test operations
type MockTestService interface {
	List(ctx context.Context) ([]*models.MockTest, error)
	Create(ctx context.Context, req *models.MockTestRequest) (*models.MockTest, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type mockTestService struct {
	mockTestRepo repositories.MockTestRepository
}

// NewMockTestService creates a new MockTestService implementation
func NewMockTestService(mockTestRepo repositories.MockTestRepository) MockTestService {
	return &mockTestService{mockTestRepo: mockTestRepo}
}

// List retrieves all mock tests
func (s *mockTestService) List(ctx context.Context) ([]*models.MockTest, error) {
	return s.mockTestRepo.FindAll(ctx)
}

// Create stores a new mock test
func (s *mockTestService) Create(ctx context.Context, req *models.MockTestRequest) (*models.MockTest, error) {
	test := &models.MockTest{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	}
	if err := s.mockTestRepo.Create(ctx, test); err != nil {
		return nil, err
	}
	return test, nil
}

// Delete removes a mock test
func (s *mockTestService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.mockTestRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.ErrNotFound
		}
		return err
	}
	return nil
}

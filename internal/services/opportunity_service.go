package services

import (
	"context"
	"errors"
	"strconv"

	"github.com/careerhub/career-portal-backend/internal/apperrors"
	"github.com/careerhub/career-portal-backend/internal/models"
	"github.com/careerhub/career-portal-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// OpportunityService defines the interface for catalog operations
type OpportunityService interface {
	// List returns opportunities newest first. The public surface passes
	// status "active"; admins may pass "" to see every status.
	List(ctx context.Context, opportunityType, status string) ([]*models.Opportunity, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Opportunity, error)
	Create(ctx context.Context, req *models.OpportunityRequest) (*models.Opportunity, error)
	Update(ctx context.Context, id primitive.ObjectID, req *models.OpportunityUpdate) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type opportunityService struct {
	opportunityRepo repositories.OpportunityRepository
}

// NewOpportunityService creates a new OpportunityService implementation
func NewOpportunityService(opportunityRepo repositories.OpportunityRepository) OpportunityService {
	return &opportunityService{opportunityRepo: opportunityRepo}
}

// List retrieves opportunities filtered by type and status
func (s *opportunityService) List(ctx context.Context, opportunityType, status string) ([]*models.Opportunity, error) {
	if opportunityType != "" && !models.ValidOpportunityType(opportunityType) {
		return nil, apperrors.ErrInvalidType
	}
	return s.opportunityRepo.Find(ctx, opportunityType, status)
}

// Get retrieves one opportunity
func (s *opportunityService) Get(ctx context.Context, id primitive.ObjectID) (*models.Opportunity, error) {
	opportunity, err := s.opportunityRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return opportunity, nil
}

// Create validates and stores a new opportunity with status active
func (s *opportunityService) Create(ctx context.Context, req *models.OpportunityRequest) (*models.Opportunity, error) {
	if !models.ValidOpportunityType(req.Type) {
		return nil, apperrors.ErrInvalidType
	}

	opportunity := &models.Opportunity{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Link:        req.Link,
		Company:     req.Company,
		Location:    req.Location,
		Deadline:    req.Deadline,
		Status:      models.OpportunityStatusActive,
		IsPaid:      req.IsPaid,
	}
	// A malformed or negative amount is treated as absent, it does not fail
	// the request
	if req.IsPaid {
		opportunity.PaymentAmount = parsePaymentAmount(req.PaymentAmount)
	}

	if err := s.opportunityRepo.Create(ctx, opportunity); err != nil {
		return nil, err
	}
	return opportunity, nil
}

// Update applies the non-nil fields of req to an existing opportunity
func (s *opportunityService) Update(ctx context.Context, id primitive.ObjectID, req *models.OpportunityUpdate) error {
	updates := map[string]interface{}{}

	if req.Type != nil {
		if !models.ValidOpportunityType(*req.Type) {
			return apperrors.ErrInvalidType
		}
		updates["type"] = *req.Type
	}
	if req.Status != nil {
		if *req.Status != models.OpportunityStatusActive && *req.Status != models.OpportunityStatusClosed {
			return apperrors.ErrInvalidStatus
		}
		updates["status"] = *req.Status
	}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Link != nil {
		updates["link"] = *req.Link
	}
	if req.Company != nil {
		updates["company"] = *req.Company
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Deadline != nil {
		updates["deadline"] = *req.Deadline
	}
	if req.IsPaid != nil {
		updates["is_paid"] = *req.IsPaid
	}
	if req.PaymentAmount != nil {
		updates["payment_amount"] = parsePaymentAmount(*req.PaymentAmount)
	}

	if len(updates) == 0 {
		return nil
	}

	if err := s.opportunityRepo.Update(ctx, id, updates); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.ErrNotFound
		}
		return err
	}
	return nil
}

// Delete hard-deletes an opportunity
func (s *opportunityService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.opportunityRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.ErrNotFound
		}
		return err
	}
	return nil
}

func parsePaymentAmount(raw string) float64 {
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil || amount < 0 {
		return 0
	}
	return amount
}

package services

import (
	"context"
	"errors"
	"mime/multipart"

	"github.com/careerhub/career-portal-backend/internal/apperrors"
	"github.com/careerhub/career-portal-backend/internal/logger"
	"github.com/careerhub/career-portal-backend/internal/models"
	"github.com/careerhub/career-portal-backend/internal/repositories"
	"github.com/careerhub/career-portal-backend/internal/storage"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// SubmitRequest carries the applicant fields of a public submission
type SubmitRequest struct {
	Name  string
	Email string
	Phone string
}

// Resume describes a stored artifact ready for streaming
type Resume struct {
	Path        string
	Filename    string
	ContentType string
}

// ApplicationService defines the interface for the application workflow.
// Lifecycle: pending -> accepted|rejected (terminal), any state -> deleted.
type ApplicationService interface {
	Submit(ctx context.Context, opportunityID primitive.ObjectID, req *SubmitRequest, resume *multipart.FileHeader) (*models.Application, error)
	GetAll(ctx context.Context) ([]*models.Application, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Application, error)
	Moderate(ctx context.Context, id primitive.ObjectID, action string) error
	BulkModerate(ctx context.Context, ids []string, action string) (*models.BulkActionResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	FetchResume(ctx context.Context, id primitive.ObjectID) (*Resume, error)
}

type applicationService struct {
	applicationRepo repositories.ApplicationRepository
	opportunityRepo repositories.OpportunityRepository
	resumes         *storage.ResumeStore
}

// NewApplicationService creates a new ApplicationService implementation
func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	opportunityRepo repositories.OpportunityRepository,
	resumes *storage.ResumeStore,
) ApplicationService {
	return &applicationService{
		applicationRepo: applicationRepo,
		opportunityRepo: opportunityRepo,
		resumes:         resumes,
	}
}

// Submit validates the upload, persists the resume under a generated name and
// creates a pending application. No record is created when validation fails.
func (s *applicationService) Submit(ctx context.Context, opportunityID primitive.ObjectID, req *SubmitRequest, resume *multipart.FileHeader) (*models.Application, error) {
	opportunity, err := s.opportunityRepo.FindByID(ctx, opportunityID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	filename, err := s.resumes.Save(resume)
	if err != nil {
		return nil, err
	}

	application := &models.Application{
		OpportunityID:   opportunity.ID,
		OpportunityType: opportunity.Type,
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Resume:          filename,
		Status:          models.ApplicationStatusPending,
	}
	if err := s.applicationRepo.Create(ctx, application); err != nil {
		// Don't leave an orphaned file behind
		if rmErr := s.resumes.Delete(filename); rmErr != nil {
			logger.Warn().Err(rmErr).Str("resume", filename).Msg("Failed to clean up resume after store error")
		}
		return nil, err
	}

	return application, nil
}

// GetAll lists every application newest first
func (s *applicationService) GetAll(ctx context.Context) ([]*models.Application, error) {
	return s.applicationRepo.FindAll(ctx)
}

// Get retrieves one application
func (s *applicationService) Get(ctx context.Context, id primitive.ObjectID) (*models.Application, error) {
	application, err := s.applicationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return application, nil
}

// Moderate transitions a pending application to accepted or rejected.
// Accepted and rejected are terminal states.
func (s *applicationService) Moderate(ctx context.Context, id primitive.ObjectID, action string) error {
	var status string
	switch action {
	case models.BulkActionApprove:
		status = models.ApplicationStatusAccepted
	case models.BulkActionReject:
		status = models.ApplicationStatusRejected
	default:
		return apperrors.ErrInvalidAction
	}

	application, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if application.Status != models.ApplicationStatusPending {
		return apperrors.ErrInvalidTransition
	}

	if err := s.applicationRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.ErrNotFound
		}
		return err
	}
	return nil
}

// BulkModerate applies an action to each id independently. A failure on one
// id never aborts the rest; failures are aggregated in the result.
func (s *applicationService) BulkModerate(ctx context.Context, ids []string, action string) (*models.BulkActionResult, error) {
	switch action {
	case models.BulkActionApprove, models.BulkActionReject, models.BulkActionDelete:
	default:
		return nil, apperrors.ErrInvalidAction
	}

	result := &models.BulkActionResult{
		Succeeded: []string{},
		Failed:    map[string]string{},
	}
	for _, raw := range ids {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			result.Failed[raw] = "invalid id"
			continue
		}

		if action == models.BulkActionDelete {
			err = s.Delete(ctx, id)
		} else {
			err = s.Moderate(ctx, id, action)
		}
		if err != nil {
			result.Failed[raw] = err.Error()
			continue
		}
		result.Succeeded = append(result.Succeeded, raw)
	}

	return result, nil
}

// Delete removes the application record, then best-effort removes the stored
// resume. Record removal wins over storage cleanup; a file error is logged,
// never returned.
func (s *applicationService) Delete(ctx context.Context, id primitive.ObjectID) error {
	application, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.applicationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.ErrNotFound
		}
		return err
	}

	if application.Resume != "" {
		if err := s.resumes.Delete(application.Resume); err != nil {
			logger.Warn().Err(err).Str("resume", application.Resume).Msg("Failed to delete resume file")
		}
	}
	return nil
}

// FetchResume resolves the stored artifact for streaming with a download
// disposition. Missing files and failed signature checks are never served.
func (s *applicationService) FetchResume(ctx context.Context, id primitive.ObjectID) (*Resume, error) {
	application, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if application.Resume == "" {
		return nil, apperrors.ErrNotFound
	}

	path, err := s.resumes.Open(application.Resume)
	if err != nil {
		return nil, err
	}

	return &Resume{
		Path:        path,
		Filename:    application.Resume,
		ContentType: storage.ContentType(application.Resume),
	}, nil
}

package services

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/careerhub/career-portal-backend/internal/apperrors"
	"github.com/careerhub/career-portal-backend/internal/models"
	"github.com/careerhub/career-portal-backend/internal/storage"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeApplicationRepo struct {
	mu           sync.Mutex
	applications map[primitive.ObjectID]*models.Application
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{applications: make(map[primitive.ObjectID]*models.Application)}
}

func copyApplication(a *models.Application) *models.Application {
	c := *a
	return &c
}

func (r *fakeApplicationRepo) Create(ctx context.Context, application *models.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	application.ID = primitive.NewObjectID()
	application.CreatedAt = time.Now()
	r.applications[application.ID] = copyApplication(application)
	return nil
}

func (r *fakeApplicationRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.applications[id]; ok {
		return copyApplication(a), nil
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeApplicationRepo) FindAll(ctx context.Context) ([]*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := []*models.Application{}
	for _, a := range r.applications {
		result = append(result, copyApplication(a))
	}
	return result, nil
}

func (r *fakeApplicationRepo) FindByOpportunityID(ctx context.Context, opportunityID primitive.ObjectID) ([]*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := []*models.Application{}
	for _, a := range r.applications {
		if a.OpportunityID == opportunityID {
			result = append(result, copyApplication(a))
		}
	}
	return result, nil
}

func (r *fakeApplicationRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.applications[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	a.Status = status
	return nil
}

func (r *fakeApplicationRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.applications[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.applications, id)
	return nil
}

func (r *fakeApplicationRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, a := range r.applications {
		if status == "" || a.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *fakeApplicationRepo) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, a := range r.applications {
		if !a.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

type workflowFixture struct {
	svc       ApplicationService
	appRepo   *fakeApplicationRepo
	oppRepo   *fakeOpportunityRepo
	uploadDir string
	oppID     primitive.ObjectID
}

func newWorkflowFixture(t *testing.T) *workflowFixture {
	t.Helper()
	uploadDir := t.TempDir()
	store, err := storage.NewResumeStore(uploadDir, 1<<20, []string{".pdf", ".doc", ".docx"})
	if err != nil {
		t.Fatalf("NewResumeStore: %v", err)
	}

	oppRepo := newFakeOpportunityRepo()
	opportunity := &models.Opportunity{
		Title:  "SWE Intern",
		Type:   models.TypeInternship,
		Status: models.OpportunityStatusActive,
	}
	if err := oppRepo.Create(context.Background(), opportunity); err != nil {
		t.Fatalf("create opportunity: %v", err)
	}

	appRepo := newFakeApplicationRepo()
	return &workflowFixture{
		svc:       NewApplicationService(appRepo, oppRepo, store),
		appRepo:   appRepo,
		oppRepo:   oppRepo,
		uploadDir: uploadDir,
		oppID:     opportunity.ID,
	}
}

func makeResume(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("resume", filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write part: %v", err)
	}
	writer.Close()

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("ReadForm: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["resume"][0]
}

func submitted(t *testing.T, f *workflowFixture, filename string, content []byte) *models.Application {
	t.Helper()
	application, err := f.svc.Submit(context.Background(), f.oppID, &SubmitRequest{
		Name:  "Ada",
		Email: "ada@example.com",
		Phone: "555-0100",
	}, makeResume(t, filename, content))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	return application
}

func TestSubmitCreatesPendingApplication(t *testing.T) {
	f := newWorkflowFixture(t)

	application := submitted(t, f, "my resume.docx", []byte("docx bytes"))

	if application.Status != models.ApplicationStatusPending {
		t.Fatalf("expected pending status, got %q", application.Status)
	}
	if application.OpportunityType != models.TypeInternship {
		t.Fatalf("opportunity type not denormalized: %q", application.OpportunityType)
	}
	if application.Resume == "my resume.docx" {
		t.Fatal("caller-supplied filename stored verbatim")
	}
	if _, err := os.Stat(filepath.Join(f.uploadDir, application.Resume)); err != nil {
		t.Fatalf("stored resume missing: %v", err)
	}
}

func TestSubmitRejectsBadExtensionWithoutRecord(t *testing.T) {
	f := newWorkflowFixture(t)

	_, err := f.svc.Submit(context.Background(), f.oppID, &SubmitRequest{
		Name: "Ada", Email: "ada@example.com",
	}, makeResume(t, "resume.exe", []byte("MZ")))
	if !errors.Is(err, apperrors.ErrInvalidFileType) {
		t.Fatalf("expected ErrInvalidFileType, got %v", err)
	}

	all, _ := f.appRepo.FindAll(context.Background())
	if len(all) != 0 {
		t.Fatalf("application record created despite rejected upload: %+v", all)
	}
}

func TestSubmitUnknownOpportunity(t *testing.T) {
	f := newWorkflowFixture(t)

	_, err := f.svc.Submit(context.Background(), primitive.NewObjectID(), &SubmitRequest{
		Name: "Ada", Email: "ada@example.com",
	}, makeResume(t, "resume.pdf", []byte("%PDF-1.4")))
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestModerateApprove(t *testing.T) {
	f := newWorkflowFixture(t)
	application := submitted(t, f, "cv.pdf", []byte("%PDF-1.4"))

	if err := f.svc.Moderate(context.Background(), application.ID, models.BulkActionApprove); err != nil {
		t.Fatalf("Moderate: %v", err)
	}

	stored, err := f.svc.Get(context.Background(), application.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.Status != models.ApplicationStatusAccepted {
		t.Fatalf("expected accepted, got %q", stored.Status)
	}
}

func TestModerateTerminalStateRejected(t *testing.T) {
	f := newWorkflowFixture(t)
	application := submitted(t, f, "cv.pdf", []byte("%PDF-1.4"))

	if err := f.svc.Moderate(context.Background(), application.ID, models.BulkActionApprove); err != nil {
		t.Fatalf("Moderate: %v", err)
	}

	err := f.svc.Moderate(context.Background(), application.ID, models.BulkActionReject)
	if !errors.Is(err, apperrors.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	stored, _ := f.svc.Get(context.Background(), application.ID)
	if stored.Status != models.ApplicationStatusAccepted {
		t.Fatalf("terminal status overwritten: %q", stored.Status)
	}
}

func TestModerateUnknownAction(t *testing.T) {
	f := newWorkflowFixture(t)
	application := submitted(t, f, "cv.pdf", []byte("%PDF-1.4"))

	err := f.svc.Moderate(context.Background(), application.ID, "escalate")
	if !errors.Is(err, apperrors.ErrInvalidAction) {
		t.Fatalf("expected ErrInvalidAction, got %v", err)
	}
}

func TestBulkModerateMixedIDs(t *testing.T) {
	f := newWorkflowFixture(t)
	first := submitted(t, f, "a.pdf", []byte("%PDF-1.4"))
	second := submitted(t, f, "b.pdf", []byte("%PDF-1.4"))
	missing := primitive.NewObjectID().Hex()

	result, err := f.svc.BulkModerate(context.Background(), []string{
		first.ID.Hex(), missing, "garbage-id", second.ID.Hex(),
	}, models.BulkActionApprove)
	if err != nil {
		t.Fatalf("BulkModerate: %v", err)
	}

	if len(result.Succeeded) != 2 {
		t.Fatalf("expected 2 successes, got %v", result.Succeeded)
	}
	if len(result.Failed) != 2 {
		t.Fatalf("expected 2 failures, got %v", result.Failed)
	}
	for _, id := range []primitive.ObjectID{first.ID, second.ID} {
		stored, _ := f.svc.Get(context.Background(), id)
		if stored.Status != models.ApplicationStatusAccepted {
			t.Fatalf("application %s not approved: %q", id.Hex(), stored.Status)
		}
	}
}

func TestBulkModerateRejectsUnknownAction(t *testing.T) {
	f := newWorkflowFixture(t)

	_, err := f.svc.BulkModerate(context.Background(), []string{primitive.NewObjectID().Hex()}, "archive")
	if !errors.Is(err, apperrors.ErrInvalidAction) {
		t.Fatalf("expected ErrInvalidAction, got %v", err)
	}
}

func TestBulkDelete(t *testing.T) {
	f := newWorkflowFixture(t)
	first := submitted(t, f, "a.pdf", []byte("%PDF-1.4"))
	second := submitted(t, f, "b.pdf", []byte("%PDF-1.4"))

	result, err := f.svc.BulkModerate(context.Background(), []string{first.ID.Hex(), second.ID.Hex()}, models.BulkActionDelete)
	if err != nil {
		t.Fatalf("BulkModerate: %v", err)
	}
	if len(result.Succeeded) != 2 || len(result.Failed) != 0 {
		t.Fatalf("unexpected result: %+v", result)
	}

	entries, err := os.ReadDir(f.uploadDir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("resume files left behind after bulk delete: %d", len(entries))
	}
}

func TestDeleteRemovesRecordAndFile(t *testing.T) {
	f := newWorkflowFixture(t)
	application := submitted(t, f, "cv.pdf", []byte("%PDF-1.4"))
	resumePath := filepath.Join(f.uploadDir, application.Resume)

	if err := f.svc.Delete(context.Background(), application.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := f.svc.Get(context.Background(), application.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if _, err := os.Stat(resumePath); !os.IsNotExist(err) {
		t.Fatal("resume file still on disk after delete")
	}
	if _, err := f.svc.FetchResume(context.Background(), application.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("FetchResume after delete: expected ErrNotFound, got %v", err)
	}
}

func TestDeleteSurvivesMissingFile(t *testing.T) {
	f := newWorkflowFixture(t)
	application := submitted(t, f, "cv.pdf", []byte("%PDF-1.4"))

	if err := os.Remove(filepath.Join(f.uploadDir, application.Resume)); err != nil {
		t.Fatalf("remove file: %v", err)
	}

	if err := f.svc.Delete(context.Background(), application.ID); err != nil {
		t.Fatalf("Delete with missing file: %v", err)
	}
	if _, err := f.svc.Get(context.Background(), application.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatal("record not removed")
	}
}

func TestFetchResume(t *testing.T) {
	f := newWorkflowFixture(t)
	application := submitted(t, f, "cv.pdf", []byte("%PDF-1.4 content"))

	resume, err := f.svc.FetchResume(context.Background(), application.ID)
	if err != nil {
		t.Fatalf("FetchResume: %v", err)
	}
	if resume.ContentType != "application/pdf" {
		t.Fatalf("unexpected content type %q", resume.ContentType)
	}
	if filepath.Dir(resume.Path) != f.uploadDir {
		t.Fatalf("resume path %q escapes upload dir", resume.Path)
	}
}

func TestFetchResumeFileDeletedFromDisk(t *testing.T) {
	f := newWorkflowFixture(t)
	application := submitted(t, f, "cv.pdf", []byte("%PDF-1.4"))

	if err := os.Remove(filepath.Join(f.uploadDir, application.Resume)); err != nil {
		t.Fatalf("remove file: %v", err)
	}

	_, err := f.svc.FetchResume(context.Background(), application.ID)
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFetchResumeCorruptPDF(t *testing.T) {
	f := newWorkflowFixture(t)
	application := submitted(t, f, "cv.pdf", []byte("%PDF-1.4"))

	// Tamper with the stored file after upload
	if err := os.WriteFile(filepath.Join(f.uploadDir, application.Resume), []byte("junk data"), 0o644); err != nil {
		t.Fatalf("tamper: %v", err)
	}

	_, err := f.svc.FetchResume(context.Background(), application.ID)
	if !errors.Is(err, apperrors.ErrCorruptArtifact) {
		t.Fatalf("expected ErrCorruptArtifact, got %v", err)
	}
}

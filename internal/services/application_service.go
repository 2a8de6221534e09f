package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	apierrors "github.com/yukikurage/trackhire-api/internal/errors"
	"github.com/yukikurage/trackhire-api/internal/models"
	"github.com/yukikurage/trackhire-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound = apierrors.NotFound("Application not found")
	ErrAlreadyApplied      = apierrors.Conflict("You have already applied for this job")
	ErrNotApplicationOwner = apierrors.Forbidden("You can only update your own applications")
	ErrInvalidStatus       = apierrors.Validation("Status must be one of: APPLIED, INTERVIEW, OFFER, REJECTED")
)

// ApplicationService runs the application workflow: apply, list and status changes.
type ApplicationService struct {
	appRepo repository.ApplicationRepository
	jobRepo repository.JobRepository
	now     func() time.Time
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(appRepo repository.ApplicationRepository, jobRepo repository.JobRepository) *ApplicationService {
	return &ApplicationService{
		appRepo: appRepo,
		jobRepo: jobRepo,
		now:     time.Now,
	}
}

// Apply records that userID applied to jobID.
//
// The duplicate check runs before the insert and is not atomic with it; two
// concurrent identical requests can both pass the check. The unique index on
// (user_id, job_id) rejects the second insert and that violation is reported
// as the same conflict.
func (s *ApplicationService) Apply(ctx context.Context, userID, jobID uuid.UUID) (*models.Application, error) {
	if _, err := s.jobRepo.FindByID(ctx, jobID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, apierrors.Internal("failed to find job", err)
	}

	if _, err := s.appRepo.FindByUserAndJob(ctx, userID, jobID); err == nil {
		return nil, ErrAlreadyApplied
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierrors.Internal("failed to check existing application", err)
	}

	app := &models.Application{
		UserID:    userID,
		JobID:     jobID,
		Status:    models.ApplicationStatusApplied,
		AppliedAt: s.now().UTC(),
	}

	if err := s.appRepo.Create(ctx, app); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierrors.Wrap(ErrAlreadyApplied, err)
		}
		return nil, apierrors.Internal("failed to create application", err)
	}

	return app, nil
}

// ListMine returns the caller's applications with their jobs, newest first.
func (s *ApplicationService) ListMine(ctx context.Context, userID uuid.UUID) ([]models.Application, error) {
	apps, err := s.appRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apierrors.Internal("failed to list applications", err)
	}
	return apps, nil
}

// ListAll returns every application with its applicant and job, newest first.
func (s *ApplicationService) ListAll(ctx context.Context) ([]models.Application, error) {
	apps, err := s.appRepo.ListAll(ctx)
	if err != nil {
		return nil, apierrors.Internal("failed to list applications", err)
	}
	return apps, nil
}

// SetStatus moves an application to any status. Transitions are free: status
// is a label, not a guarded state machine. When callerID is set the caller must
// own the application; administrators pass nil.
func (s *ApplicationService) SetStatus(ctx context.Context, applicationID uuid.UUID, status models.ApplicationStatus, callerID *uuid.UUID) (*models.Application, error) {
	status, ok := models.ParseApplicationStatus(string(status))
	if !ok {
		return nil, ErrInvalidStatus
	}

	app, err := s.appRepo.FindByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, apierrors.Internal("failed to find application", err)
	}

	if callerID != nil && app.UserID != *callerID {
		return nil, ErrNotApplicationOwner
	}

	if err := s.appRepo.UpdateStatus(ctx, app.ID, status); err != nil {
		return nil, apierrors.Internal("failed to update application status", err)
	}

	updated, err := s.appRepo.FindByID(ctx, app.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, apierrors.Internal("failed to reload application", err)
	}
	return updated, nil
}

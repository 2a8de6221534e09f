package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	apierrors "github.com/yukikurage/trackhire-api/internal/errors"
	"github.com/yukikurage/trackhire-api/internal/models"
	"github.com/yukikurage/trackhire-api/internal/repository"
	"github.com/yukikurage/trackhire-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrJobNotFound         = apierrors.NotFound("Job not found")
	ErrCompanyNotFound     = apierrors.NotFound("Company not found")
	ErrTitleRequired       = apierrors.Validation("Title is required")
	ErrDescriptionRequired = apierrors.Validation("Description is required")
	ErrCompanyRequired     = apierrors.Validation("Company is required")
)

// JobService handles the job catalog.
type JobService struct {
	jobRepo     repository.JobRepository
	companyRepo repository.CompanyRepository
}

// NewJobService creates a new JobService
func NewJobService(jobRepo repository.JobRepository, companyRepo repository.CompanyRepository) *JobService {
	return &JobService{
		jobRepo:     jobRepo,
		companyRepo: companyRepo,
	}
}

// CreateJobInput represents input for creating a job. The employer is either
// an existing CompanyID or a CompanyName that is looked up or created.
type CreateJobInput struct {
	CompanyID    *uuid.UUID
	CompanyName  string
	Title        string
	Description  string
	Requirements []string
	SalaryRange  string
	Type         models.JobType
	Location     string
	LocationType models.LocationType
	Status       models.JobStatus
}

// UpdateJobInput holds a partial update; nil fields are left unchanged.
type UpdateJobInput struct {
	CompanyID    *uuid.UUID
	CompanyName  *string
	Title        *string
	Description  *string
	Requirements *[]string
	SalaryRange  *string
	Type         *models.JobType
	Location     *string
	LocationType *models.LocationType
	Status       *models.JobStatus
}

// ListJobsInput represents filters for listing jobs
type ListJobsInput struct {
	Page     int
	Limit    int
	Search   string
	Location string
	Company  string
}

// CreateJob creates a job posting.
func (s *JobService) CreateJob(ctx context.Context, input CreateJobInput) (*models.Job, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, ErrDescriptionRequired
	}

	company, err := s.resolveCompany(ctx, input.CompanyID, input.CompanyName)
	if err != nil {
		return nil, err
	}

	job := &models.Job{
		CompanyID:    company.ID,
		Title:        strings.TrimSpace(input.Title),
		Description:  input.Description,
		Requirements: input.Requirements,
		SalaryRange:  input.SalaryRange,
		Type:         input.Type,
		Location:     input.Location,
		LocationType: input.LocationType,
		Status:       input.Status,
	}
	if job.Requirements == nil {
		job.Requirements = []string{}
	}
	if job.Type == "" {
		job.Type = models.JobTypeFullTime
	}
	if job.LocationType == "" {
		job.LocationType = models.LocationTypeOnsite
	}
	if job.Status == "" {
		job.Status = models.JobStatusOpen
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, apierrors.Internal("failed to create job", err)
	}

	job.Company = *company
	return job, nil
}

// ListJobs returns one page of jobs, newest first, with pagination metadata.
func (s *JobService) ListJobs(ctx context.Context, input ListJobsInput) ([]models.Job, utils.PaginationMeta, error) {
	params := utils.NewPaginationParams(input.Page, input.Limit)

	jobs, total, err := s.jobRepo.List(ctx, repository.JobFilter{
		Search:   strings.TrimSpace(input.Search),
		Location: strings.TrimSpace(input.Location),
		Company:  strings.TrimSpace(input.Company),
		Offset:   params.Offset,
		Limit:    params.Limit,
	})
	if err != nil {
		return nil, utils.PaginationMeta{}, apierrors.Internal("failed to list jobs", err)
	}

	return jobs, params.Meta(total), nil
}

// GetJob returns a job with its company
func (s *JobService) GetJob(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, apierrors.Internal("failed to find job", err)
	}
	return job, nil
}

// UpdateJob applies a partial update
func (s *JobService) UpdateJob(ctx context.Context, id uuid.UUID, input UpdateJobInput) (*models.Job, error) {
	job, err := s.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.CompanyID != nil || input.CompanyName != nil {
		var name string
		if input.CompanyName != nil {
			name = *input.CompanyName
		}
		company, err := s.resolveCompany(ctx, input.CompanyID, name)
		if err != nil {
			return nil, err
		}
		job.CompanyID = company.ID
		job.Company = *company
	}
	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, ErrTitleRequired
		}
		job.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		if strings.TrimSpace(*input.Description) == "" {
			return nil, ErrDescriptionRequired
		}
		job.Description = *input.Description
	}
	if input.Requirements != nil {
		job.Requirements = *input.Requirements
	}
	if input.SalaryRange != nil {
		job.SalaryRange = *input.SalaryRange
	}
	if input.Type != nil {
		job.Type = *input.Type
	}
	if input.Location != nil {
		job.Location = *input.Location
	}
	if input.LocationType != nil {
		job.LocationType = *input.LocationType
	}
	if input.Status != nil {
		job.Status = *input.Status
	}

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, apierrors.Internal("failed to update job", err)
	}

	return job, nil
}

// DeleteJob removes a job together with its applications
func (s *JobService) DeleteJob(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetJob(ctx, id); err != nil {
		return err
	}

	if err := s.jobRepo.Delete(ctx, id); err != nil {
		return apierrors.Internal("failed to delete job", err)
	}

	return nil
}

// resolveCompany prefers an explicit id and falls back to first-or-create by name
func (s *JobService) resolveCompany(ctx context.Context, id *uuid.UUID, name string) (*models.Company, error) {
	if id != nil {
		company, err := s.companyRepo.FindByID(ctx, *id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCompanyNotFound
			}
			return nil, apierrors.Internal("failed to find company", err)
		}
		return company, nil
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrCompanyRequired
	}

	company, err := s.companyRepo.FirstOrCreateByName(ctx, name)
	if err != nil {
		return nil, apierrors.Internal("failed to resolve company", err)
	}
	return company, nil
}

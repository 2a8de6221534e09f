package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yukikurage/trackhire-api/internal/dto"
	"github.com/yukikurage/trackhire-api/internal/models"
	"github.com/yukikurage/trackhire-api/internal/response"
	"github.com/yukikurage/trackhire-api/internal/services"
	"github.com/yukikurage/trackhire-api/internal/utils"
)

type JobHandler struct {
	jobService *services.JobService
	extractor  services.JobExtractor
}

// NewJobHandler creates a JobHandler. extractor may be nil when no LLM is configured.
func NewJobHandler(jobService *services.JobService, extractor services.JobExtractor) *JobHandler {
	return &JobHandler{
		jobService: jobService,
		extractor:  extractor,
	}
}

// ListJobs returns one page of jobs, newest first
func (h *JobHandler) ListJobs(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	jobs, meta, err := h.jobService.ListJobs(c.Request.Context(), services.ListJobsInput{
		Page:     params.Page,
		Limit:    params.Limit,
		Search:   c.Query("search"),
		Location: c.Query("location"),
		Company:  c.Query("company"),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, "Jobs retrieved successfully", dto.ToJobDTOs(jobs), meta)
}

func (h *JobHandler) GetJob(c *gin.Context) {
	id, ok := paramID(c, "id", services.ErrJobNotFound)
	if !ok {
		return
	}

	job, err := h.jobService.GetJob(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job retrieved successfully", dto.ToJobDTO(*job))
}

// CreateJob creates a job posting
func (h *JobHandler) CreateJob(c *gin.Context) {
	type CreateJobRequest struct {
		CompanyID    *uuid.UUID `json:"companyId" binding:"required_without=Company"`
		Company      string     `json:"company" binding:"max=255"`
		Title        string     `json:"title" binding:"required,max=255"`
		Description  string     `json:"description" binding:"required"`
		Requirements []string   `json:"requirements"`
		SalaryRange  string     `json:"salaryRange" binding:"max=100"`
		Type         string     `json:"type" binding:"omitempty,oneof=FULL_TIME PART_TIME CONTRACT FREELANCE INTERNSHIP"`
		Location     string     `json:"location" binding:"max=255"`
		LocationType string     `json:"locationType" binding:"omitempty,oneof=REMOTE HYBRID ONSITE"`
		Status       string     `json:"status" binding:"omitempty,oneof=OPEN CLOSED"`
	}

	var req CreateJobRequest
	if !bindJSON(c, &req) {
		return
	}

	job, err := h.jobService.CreateJob(c.Request.Context(), services.CreateJobInput{
		CompanyID:    req.CompanyID,
		CompanyName:  req.Company,
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		SalaryRange:  req.SalaryRange,
		Type:         models.JobType(req.Type),
		Location:     req.Location,
		LocationType: models.LocationType(req.LocationType),
		Status:       models.JobStatus(req.Status),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created successfully", dto.ToJobDTO(*job))
}

// UpdateJob applies a partial update; omitted fields keep their values
func (h *JobHandler) UpdateJob(c *gin.Context) {
	type UpdateJobRequest struct {
		CompanyID    *uuid.UUID           `json:"companyId"`
		Company      *string              `json:"company" binding:"omitempty,max=255"`
		Title        *string              `json:"title" binding:"omitempty,max=255"`
		Description  *string              `json:"description"`
		Requirements *[]string            `json:"requirements"`
		SalaryRange  *string              `json:"salaryRange" binding:"omitempty,max=100"`
		Type         *models.JobType      `json:"type" binding:"omitempty,oneof=FULL_TIME PART_TIME CONTRACT FREELANCE INTERNSHIP"`
		Location     *string              `json:"location" binding:"omitempty,max=255"`
		LocationType *models.LocationType `json:"locationType" binding:"omitempty,oneof=REMOTE HYBRID ONSITE"`
		Status       *models.JobStatus    `json:"status" binding:"omitempty,oneof=OPEN CLOSED"`
	}

	id, ok := paramID(c, "id", services.ErrJobNotFound)
	if !ok {
		return
	}

	var req UpdateJobRequest
	if !bindJSON(c, &req) {
		return
	}

	job, err := h.jobService.UpdateJob(c.Request.Context(), id, services.UpdateJobInput{
		CompanyID:    req.CompanyID,
		CompanyName:  req.Company,
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		SalaryRange:  req.SalaryRange,
		Type:         req.Type,
		Location:     req.Location,
		LocationType: req.LocationType,
		Status:       req.Status,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job updated successfully", dto.ToJobDTO(*job))
}

// DeleteJob removes a job and its applications
func (h *JobHandler) DeleteJob(c *gin.Context) {
	id, ok := paramID(c, "id", services.ErrJobNotFound)
	if !ok {
		return
	}

	if err := h.jobService.DeleteJob(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job deleted successfully", nil)
}

// ExtractJob drafts job fields from pasted posting text. Nothing is saved.
func (h *JobHandler) ExtractJob(c *gin.Context) {
	type ExtractJobRequest struct {
		Text string `json:"text" binding:"required,max=20000"`
	}

	if h.extractor == nil {
		_ = c.Error(services.ErrAIServiceNotConfigured)
		return
	}

	var req ExtractJobRequest
	if !bindJSON(c, &req) {
		return
	}

	draft, err := h.extractor.ExtractJob(c.Request.Context(), req.Text)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job draft extracted successfully", draft)
}

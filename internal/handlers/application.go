package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yukikurage/trackhire-api/internal/dto"
	apierrors "github.com/yukikurage/trackhire-api/internal/errors"
	"github.com/yukikurage/trackhire-api/internal/middleware"
	"github.com/yukikurage/trackhire-api/internal/models"
	"github.com/yukikurage/trackhire-api/internal/response"
	"github.com/yukikurage/trackhire-api/internal/services"
)

type ApplicationHandler struct {
	applicationService *services.ApplicationService
}

func NewApplicationHandler(applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

// Apply records the caller's application to a job
func (h *ApplicationHandler) Apply(c *gin.Context) {
	type ApplyRequest struct {
		JobID string `json:"jobId" binding:"required,uuid"`
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		_ = c.Error(apierrors.ErrMissingToken)
		return
	}

	var req ApplyRequest
	if !bindJSON(c, &req) {
		return
	}

	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		_ = c.Error(apierrors.Validation("JobId must be a valid id"))
		return
	}

	app, err := h.applicationService.Apply(c.Request.Context(), user.ID, jobID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted successfully", dto.ToApplicationDTO(*app))
}

// ListMine returns the caller's applications with job and company
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		_ = c.Error(apierrors.ErrMissingToken)
		return
	}

	apps, err := h.applicationService.ListMine(c.Request.Context(), user.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved successfully", dto.ToApplicationDTOs(apps))
}

// ListAll returns every application with applicant and job
func (h *ApplicationHandler) ListAll(c *gin.Context) {
	apps, err := h.applicationService.ListAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "All applications retrieved successfully", dto.ToApplicationDTOs(apps))
}

// UpdateStatus changes an application's status. Status input is case
// insensitive and ACCEPTED is read as OFFER. Users may only update their own
// applications; administrators may update any.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	type UpdateStatusRequest struct {
		Status string `json:"status" binding:"required"`
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		_ = c.Error(apierrors.ErrMissingToken)
		return
	}

	id, ok := paramID(c, "id", services.ErrApplicationNotFound)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	status, valid := models.ParseApplicationStatus(req.Status)
	if !valid {
		_ = c.Error(services.ErrInvalidStatus)
		return
	}

	var callerID *uuid.UUID
	if user.Role != models.RoleAdmin {
		callerID = &user.ID
	}

	app, err := h.applicationService.SetStatus(c.Request.Context(), id, status, callerID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application status updated successfully", dto.ToApplicationDTO(*app))
}

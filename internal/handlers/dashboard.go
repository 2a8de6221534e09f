package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/trackhire-api/internal/dto"
	apierrors "github.com/yukikurage/trackhire-api/internal/errors"
	"github.com/yukikurage/trackhire-api/internal/middleware"
	"github.com/yukikurage/trackhire-api/internal/response"
	"github.com/yukikurage/trackhire-api/internal/services"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetStats summarizes the caller's own applications
func (h *DashboardHandler) GetStats(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		_ = c.Error(apierrors.ErrMissingToken)
		return
	}

	stats, err := h.dashboardService.GetStats(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Dashboard stats retrieved successfully", dto.ToStatsDTO(*stats))
}

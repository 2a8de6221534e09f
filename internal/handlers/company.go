package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/trackhire-api/internal/dto"
	"github.com/yukikurage/trackhire-api/internal/response"
	"github.com/yukikurage/trackhire-api/internal/services"
)

type CompanyHandler struct {
	companyService *services.CompanyService
}

func NewCompanyHandler(companyService *services.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	companies, err := h.companyService.ListCompanies(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Companies retrieved successfully", dto.ToCompanyDTOs(companies))
}

func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	type CreateCompanyRequest struct {
		Name     string `json:"name" binding:"required,max=255"`
		LogoURL  string `json:"logoUrl" binding:"omitempty,url"`
		Location string `json:"location" binding:"max=255"`
		Website  string `json:"website" binding:"omitempty,url"`
	}

	var req CreateCompanyRequest
	if !bindJSON(c, &req) {
		return
	}

	company, err := h.companyService.CreateCompany(c.Request.Context(), services.CreateCompanyInput{
		Name:     req.Name,
		LogoURL:  req.LogoURL,
		Location: req.Location,
		Website:  req.Website,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Company created successfully", dto.ToCompanyDTO(*company))
}

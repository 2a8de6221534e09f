package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/yukikurage/trackhire-api/internal/models"
)

// CompanyDTO represents a company in API responses
type CompanyDTO struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	LogoURL  string    `json:"logoUrl,omitempty"`
	Location string    `json:"location,omitempty"`
	Website  string    `json:"website,omitempty"`
}

// JobDTO represents a job in API responses
type JobDTO struct {
	ID           uuid.UUID           `json:"id"`
	CompanyID    uuid.UUID           `json:"companyId"`
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Requirements []string            `json:"requirements"`
	SalaryRange  string              `json:"salaryRange,omitempty"`
	Type         models.JobType      `json:"type"`
	Location     string              `json:"location,omitempty"`
	LocationType models.LocationType `json:"locationType"`
	Status       models.JobStatus    `json:"status"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
	Company      *CompanyDTO         `json:"company,omitempty"`
}

func ToCompanyDTO(company models.Company) CompanyDTO {
	return CompanyDTO{
		ID:       company.ID,
		Name:     company.Name,
		LogoURL:  company.LogoURL,
		Location: company.Location,
		Website:  company.Website,
	}
}

func ToCompanyDTOs(companies []models.Company) []CompanyDTO {
	result := make([]CompanyDTO, len(companies))
	for i, company := range companies {
		result[i] = ToCompanyDTO(company)
	}
	return result
}

// ToJobDTO converts a job to DTO. The company block is included only when it was loaded.
func ToJobDTO(job models.Job) JobDTO {
	result := JobDTO{
		ID:           job.ID,
		CompanyID:    job.CompanyID,
		Title:        job.Title,
		Description:  job.Description,
		Requirements: job.Requirements,
		SalaryRange:  job.SalaryRange,
		Type:         job.Type,
		Location:     job.Location,
		LocationType: job.LocationType,
		Status:       job.Status,
		CreatedAt:    job.CreatedAt,
		UpdatedAt:    job.UpdatedAt,
	}
	if result.Requirements == nil {
		result.Requirements = []string{}
	}
	if job.Company.ID != uuid.Nil {
		company := ToCompanyDTO(job.Company)
		result.Company = &company
	}
	return result
}

func ToJobDTOs(jobs []models.Job) []JobDTO {
	result := make([]JobDTO, len(jobs))
	for i, job := range jobs {
		result[i] = ToJobDTO(job)
	}
	return result
}

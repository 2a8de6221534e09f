package services

import (
	"context"
	"errors"
	"strings"

	apierrors "github.com/yukikurage/trackhire-api/internal/errors"
	"github.com/yukikurage/trackhire-api/internal/models"
	"github.com/yukikurage/trackhire-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrCompanyNameRequired = apierrors.Validation("Company name is required")
	ErrCompanyExists       = apierrors.Conflict("Company with this name already exists")
)

// CompanyService manages employer profiles.
type CompanyService struct {
	companyRepo repository.CompanyRepository
}

func NewCompanyService(companyRepo repository.CompanyRepository) *CompanyService {
	return &CompanyService{companyRepo: companyRepo}
}

type CreateCompanyInput struct {
	Name     string
	LogoURL  string
	Location string
	Website  string
}

func (s *CompanyService) CreateCompany(ctx context.Context, input CreateCompanyInput) (*models.Company, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrCompanyNameRequired
	}

	company := &models.Company{
		Name:     name,
		LogoURL:  input.LogoURL,
		Location: input.Location,
		Website:  input.Website,
	}
	if err := s.companyRepo.Create(ctx, company); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierrors.Wrap(ErrCompanyExists, err)
		}
		return nil, apierrors.Internal("failed to create company", err)
	}
	return company, nil
}

func (s *CompanyService) ListCompanies(ctx context.Context) ([]models.Company, error) {
	companies, err := s.companyRepo.List(ctx)
	if err != nil {
		return nil, apierrors.Internal("failed to list companies", err)
	}
	return companies, nil
}

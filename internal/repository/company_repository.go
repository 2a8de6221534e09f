package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/yukikurage/trackhire-api/internal/models"
	"gorm.io/gorm"
)

type GormCompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &GormCompanyRepository{db: db}
}

func (r *GormCompanyRepository) Create(ctx context.Context, company *models.Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

func (r *GormCompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	var company models.Company
	if err := r.db.WithContext(ctx).First(&company, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *GormCompanyRepository) FirstOrCreateByName(ctx context.Context, name string) (*models.Company, error) {
	var company models.Company
	err := r.db.WithContext(ctx).
		Where(models.Company{Name: name}).
		FirstOrCreate(&company).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *GormCompanyRepository) List(ctx context.Context) ([]models.Company, error) {
	var companies []models.Company
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

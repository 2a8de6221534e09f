package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/yukikurage/trackhire-api/internal/database"
	"github.com/yukikurage/trackhire-api/internal/models"
	"github.com/yukikurage/trackhire-api/internal/utils"
	"gorm.io/gorm"
)

// GormJobRepository is a GORM implementation of JobRepository
type GormJobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db *gorm.DB) JobRepository {
	return &GormJobRepository{db: db}
}

// Create creates a new job
func (r *GormJobRepository) Create(ctx context.Context, job *models.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

// FindByID finds a job by ID with its company
func (r *GormJobRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	var job models.Job
	if err := r.db.WithContext(ctx).Preload("Company").First(&job, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// List retrieves jobs with filtering and pagination
func (r *GormJobRepository) List(ctx context.Context, filter JobFilter) ([]models.Job, int64, error) {
	var jobs []models.Job

	query := r.db.WithContext(ctx).Model(&models.Job{})

	// Apply filters
	if filter.Search != "" {
		pattern := utils.LikePattern(filter.Search)
		escape := " ESCAPE '" + utils.LikeEscape + "'"
		query = query.Where("LOWER(jobs.title) LIKE ?"+escape+" OR LOWER(jobs.description) LIKE ?"+escape, pattern, pattern)
	}
	if filter.Location != "" {
		query = query.Scopes(database.ContainsFold("jobs.location", filter.Location))
	}
	if filter.Company != "" {
		companySubQuery := r.db.Model(&models.Company{}).
			Select("id").
			Scopes(database.ContainsFold("companies.name", filter.Company))
		query = query.Where("jobs.company_id IN (?)", companySubQuery)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("jobs.created_at DESC")
	if filter.Limit > 0 {
		listQuery = listQuery.Scopes(database.Paginate(utils.PaginationParams{
			Offset: filter.Offset,
			Limit:  filter.Limit,
		}))
	}

	if err := listQuery.Preload("Company").Find(&jobs).Error; err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

// Update updates a job
func (r *GormJobRepository) Update(ctx context.Context, job *models.Job) error {
	return r.db.WithContext(ctx).Omit("Company").Save(job).Error
}

// Delete removes a job and every application referencing it
func (r *GormJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", id).Delete(&models.Application{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Job{}, "id = ?", id).Error
	})
}

package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/yukikurage/trackhire-api/internal/models"
	"gorm.io/gorm"
)

// GormApplicationRepository is a GORM implementation of ApplicationRepository
type GormApplicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &GormApplicationRepository{db: db}
}

// Create creates a new application
func (r *GormApplicationRepository) Create(ctx context.Context, app *models.Application) error {
	return r.db.WithContext(ctx).Omit("User", "Job").Create(app).Error
}

// FindByID finds an application by ID
func (r *GormApplicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	var app models.Application
	if err := r.db.WithContext(ctx).First(&app, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

// FindByUserAndJob finds the application of a user for a job
func (r *GormApplicationRepository) FindByUserAndJob(ctx context.Context, userID, jobID uuid.UUID) (*models.Application, error) {
	var app models.Application
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		First(&app).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

// ListByUser lists all applications owned by a user
func (r *GormApplicationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Application, error) {
	var apps []models.Application
	if err := r.db.WithContext(ctx).
		Preload("Job.Company").
		Where("user_id = ?", userID).
		Order("applied_at DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// ListAll lists every application
func (r *GormApplicationRepository) ListAll(ctx context.Context) ([]models.Application, error) {
	var apps []models.Application
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Job.Company").
		Order("applied_at DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// UpdateStatus updates the status column only
func (r *GormApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("id = ?", id).
		Update("status", status).Error
}

type statusCount struct {
	Status models.ApplicationStatus
	Count  int64
}

// Snapshot reads counts and recent applications from one transaction so a
// concurrent status change is either fully visible or not visible at all.
func (r *GormApplicationRepository) Snapshot(ctx context.Context, userID uuid.UUID, recent int) (*ApplicationSnapshot, error) {
	snapshot := &ApplicationSnapshot{
		Counts: make(map[models.ApplicationStatus]int64, len(models.ApplicationStatuses)),
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rows []statusCount
		if err := tx.Model(&models.Application{}).
			Select("status, COUNT(*) AS count").
			Where("user_id = ?", userID).
			Group("status").
			Scan(&rows).Error; err != nil {
			return err
		}
		for _, row := range rows {
			snapshot.Counts[row.Status] = row.Count
		}

		return tx.Preload("Job.Company").
			Where("user_id = ?", userID).
			Order("applied_at DESC").
			Limit(recent).
			Find(&snapshot.Recent).Error
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return nil, err
	}

	return snapshot, nil
}

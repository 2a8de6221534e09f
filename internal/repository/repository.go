package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/yukikurage/trackhire-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *models.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// CompanyRepository defines the interface for company data access
type CompanyRepository interface {
	Create(ctx context.Context, company *models.Company) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Company, error)

	// FirstOrCreateByName returns the company with the given name, creating it if missing
	FirstOrCreateByName(ctx context.Context, name string) (*models.Company, error)

	List(ctx context.Context) ([]models.Company, error)
}

// JobRepository defines the interface for job data access
type JobRepository interface {
	// Create creates a new job
	Create(ctx context.Context, job *models.Job) error

	// FindByID finds a job by ID with its company
	FindByID(ctx context.Context, id uuid.UUID) (*models.Job, error)

	// List retrieves jobs with filtering and pagination, newest first
	List(ctx context.Context, filter JobFilter) ([]models.Job, int64, error)

	// Update saves every column of the job
	Update(ctx context.Context, job *models.Job) error

	// Delete removes the job and its applications in one transaction
	Delete(ctx context.Context, id uuid.UUID) error
}

// JobFilter holds filtering options for listing jobs. String filters match
// case-insensitively as substrings and combine with AND.
type JobFilter struct {
	Search   string
	Location string
	Company  string
	Offset   int
	Limit    int
}

// ApplicationRepository defines the interface for application data access
type ApplicationRepository interface {
	// Create inserts an application. A duplicate (user, job) pair fails with gorm.ErrDuplicatedKey.
	Create(ctx context.Context, app *models.Application) error

	FindByID(ctx context.Context, id uuid.UUID) (*models.Application, error)

	// FindByUserAndJob finds the application a user made for a job
	FindByUserAndJob(ctx context.Context, userID, jobID uuid.UUID) (*models.Application, error)

	// ListByUser lists a user's applications with job and company, newest first
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Application, error)

	// ListAll lists every application with user, job and company, newest first
	ListAll(ctx context.Context) ([]models.Application, error)

	// UpdateStatus writes a new status in a single statement
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) error

	// Snapshot reads the per-status counts and the most recent applications
	// of a user inside one read-only transaction.
	Snapshot(ctx context.Context, userID uuid.UUID, recent int) (*ApplicationSnapshot, error)
}

// ApplicationSnapshot is a consistent view of one user's applications.
type ApplicationSnapshot struct {
	Counts map[models.ApplicationStatus]int64
	Recent []models.Application
}

// Total sums the per-status counts.
func (s *ApplicationSnapshot) Total() int64 {
	var total int64
	for _, n := range s.Counts {
		total += n
	}
	return total
}

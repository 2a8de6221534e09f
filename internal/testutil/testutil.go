// Package testutil builds in-memory stores and fixtures for tests.
package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/trackhire-api/internal/database"
	"github.com/yukikurage/trackhire-api/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a migrated in-memory sqlite database. The pool is pinned to one
// connection because every sqlite :memory: connection is a separate database.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), database.GormConfig(logger.Silent))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, database.Migrate(db))
	return db
}

// CreateUser inserts a user whose password is "password123".
func CreateUser(t testing.TB, db *gorm.DB, email string, role models.Role) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Email:        email,
		Name:         "Test User",
		PasswordHash: string(hash),
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func CreateCompany(t testing.TB, db *gorm.DB, name string) *models.Company {
	t.Helper()

	company := &models.Company{Name: name, Location: "Remote"}
	require.NoError(t, db.Create(company).Error)
	return company
}

// CreateJob inserts an open job. A zero createdAt means now.
func CreateJob(t testing.TB, db *gorm.DB, company *models.Company, title string, createdAt time.Time) *models.Job {
	t.Helper()

	job := &models.Job{
		CompanyID:    company.ID,
		Title:        title,
		Description:  "Description for " + title,
		Requirements: []string{"Go"},
		Type:         models.JobTypeFullTime,
		Location:     "Remote",
		LocationType: models.LocationTypeRemote,
		Status:       models.JobStatusOpen,
		CreatedAt:    createdAt,
	}
	require.NoError(t, db.Create(job).Error)
	return job
}

// CreateApplication inserts an application directly, bypassing the workflow.
func CreateApplication(t testing.TB, db *gorm.DB, user *models.User, job *models.Job, status models.ApplicationStatus, appliedAt time.Time) *models.Application {
	t.Helper()

	app := &models.Application{
		UserID:    user.ID,
		JobID:     job.ID,
		Status:    status,
		AppliedAt: appliedAt,
	}
	require.NoError(t, db.Create(app).Error)
	return app
}

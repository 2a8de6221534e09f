package services

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/trackhire-api/internal/database"
	"github.com/yukikurage/trackhire-api/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	cfg := database.GormConfig(logger.Silent)
	cfg.SkipDefaultTransaction = true

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), cfg)
	require.NoError(t, err)
	return db, mock
}

// Two requests that both pass the existence check race to the insert; the
// loser sees a unique violation and must get the same conflict as a plain
// duplicate.
func TestApplicationService_ApplyUniqueViolationIsConflict(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewApplicationService(repository.NewApplicationRepository(db), repository.NewJobRepository(db))

	userID := uuid.New()
	jobID := uuid.New()
	companyID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "jobs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "company_id", "title"}).
			AddRow(jobID.String(), companyID.String(), "Backend Engineer"))
	mock.ExpectQuery(`SELECT \* FROM "companies"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(companyID.String(), "TechFlow"))
	mock.ExpectQuery(`SELECT \* FROM "applications"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec(`INSERT INTO "applications"`).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})

	_, err := svc.Apply(context.Background(), userID, jobID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAlreadyApplied))
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationService_ApplyDatabaseFailureIsInternal(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewApplicationService(repository.NewApplicationRepository(db), repository.NewJobRepository(db))

	mock.ExpectQuery(`SELECT \* FROM "jobs"`).WillReturnError(errors.New("connection reset"))

	_, err := svc.Apply(context.Background(), uuid.New(), uuid.New())
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrJobNotFound))
	assert.Contains(t, err.Error(), "connection reset")

	assert.NoError(t, mock.ExpectationsWereMet())
}

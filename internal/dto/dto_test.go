package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/trackhire-api/internal/models"
)

func TestToUserDTO_OmitsPasswordHash(t *testing.T) {
	user := models.User{
		ID:           uuid.New(),
		Name:         "Sam",
		Email:        "sam@example.com",
		PasswordHash: "$2a$10$secret",
		Role:         models.RoleUser,
	}

	body, err := json.Marshal(ToUserDTO(user))
	require.NoError(t, err)
	assert.NotContains(t, string(body), "secret")
	assert.NotContains(t, string(body), "password")
}

func TestToApplicationDTO_Relations(t *testing.T) {
	company := models.Company{ID: uuid.New(), Name: "TechFlow"}
	job := models.Job{ID: uuid.New(), CompanyID: company.ID, Title: "SRE", Company: company}
	user := models.User{ID: uuid.New(), Name: "Sam", Email: "sam@example.com", PasswordHash: "hash"}

	bare := ToApplicationDTO(models.Application{ID: uuid.New(), Status: models.ApplicationStatusApplied, AppliedAt: time.Now()})
	assert.Nil(t, bare.Job)
	assert.Nil(t, bare.User)

	full := ToApplicationDTO(models.Application{
		ID:     uuid.New(),
		UserID: user.ID,
		JobID:  job.ID,
		Status: models.ApplicationStatusOffer,
		Job:    job,
		User:   user,
	})
	require.NotNil(t, full.Job)
	require.NotNil(t, full.Job.Company)
	assert.Equal(t, "TechFlow", full.Job.Company.Name)
	require.NotNil(t, full.User)
	assert.Equal(t, "sam@example.com", full.User.Email)
	assert.Equal(t, []string{}, full.Job.Requirements)
}

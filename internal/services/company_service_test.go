package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/trackhire-api/internal/repository"
	"github.com/yukikurage/trackhire-api/internal/testutil"
)

func TestCompanyService_CreateAndList(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewCompanyService(repository.NewCompanyRepository(db))
	ctx := context.Background()

	company, err := svc.CreateCompany(ctx, CreateCompanyInput{Name: " CloudSystems ", Website: "https://cloud.example.com"})
	require.NoError(t, err)
	assert.Equal(t, "CloudSystems", company.Name)

	_, err = svc.CreateCompany(ctx, CreateCompanyInput{Name: "CloudSystems"})
	assert.True(t, errors.Is(err, ErrCompanyExists))

	_, err = svc.CreateCompany(ctx, CreateCompanyInput{Name: "  "})
	assert.True(t, errors.Is(err, ErrCompanyNameRequired))

	companies, err := svc.ListCompanies(ctx)
	require.NoError(t, err)
	require.Len(t, companies, 1)
	assert.Equal(t, company.ID, companies[0].ID)
}

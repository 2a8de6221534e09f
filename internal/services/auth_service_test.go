package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apierrors "github.com/yukikurage/trackhire-api/internal/errors"
	"github.com/yukikurage/trackhire-api/internal/models"
	"github.com/yukikurage/trackhire-api/internal/repository"
	"github.com/yukikurage/trackhire-api/internal/testutil"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(t *testing.T) (*AuthService, *TokenIssuer) {
	t.Helper()

	db := testutil.NewDB(t)
	tokens := NewTokenIssuer(testSecret, 24*time.Hour)
	return NewAuthService(repository.NewUserRepository(db), tokens, bcrypt.MinCost), tokens
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	svc, tokens := newTestAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterInput{
		Name:     "Ada Admin",
		Email:    "Ada@Example.com ",
		Password: "supersecret",
		Role:     models.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.NotEqual(t, "supersecret", user.PasswordHash)

	result, err := svc.Login(ctx, LoginInput{Email: "ada@example.com", Password: "supersecret"})
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)

	claims, err := tokens.Verify(result.Token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.Equal(t, user.ID.String(), claims.Subject)
}

func TestAuthService_RegisterDefaultsToUserRole(t *testing.T) {
	svc, _ := newTestAuthService(t)

	user, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Sam Seeker",
		Email:    "sam@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()
	input := RegisterInput{Name: "Sam", Email: "sam@example.com", Password: "supersecret"}

	_, err := svc.Register(ctx, input)
	require.NoError(t, err)

	_, err = svc.Register(ctx, input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmailTaken))
	assert.Equal(t, apierrors.KindConflict, apierrors.From(err).Kind)
}

func TestAuthService_RegisterValidation(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Name: "Sam", Email: "sam@example.com", Password: "123"})
	assert.True(t, errors.Is(err, ErrPasswordTooWeak))

	_, err = svc.Register(ctx, RegisterInput{Name: "Sam", Email: "sam@example.com", Password: "supersecret", Role: "OWNER"})
	assert.True(t, errors.Is(err, ErrInvalidRole))
}

func TestAuthService_LoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Name: "Sam", Email: "sam@example.com", Password: "supersecret"})
	require.NoError(t, err)

	result, wrongPassword := svc.Login(ctx, LoginInput{Email: "sam@example.com", Password: "wrong-password"})
	assert.Nil(t, result)
	_, unknownEmail := svc.Login(ctx, LoginInput{Email: "nobody@example.com", Password: "supersecret"})

	assert.True(t, errors.Is(wrongPassword, apierrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(unknownEmail, apierrors.ErrInvalidCredentials))
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestAuthService_GetUser(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterInput{Name: "Sam", Email: "sam@example.com", Password: "supersecret"})
	require.NoError(t, err)

	found, err := svc.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, found.Email)
}

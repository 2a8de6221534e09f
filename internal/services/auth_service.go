package services

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/yukikurage/trackhire-api/internal/constants"
	apierrors "github.com/yukikurage/trackhire-api/internal/errors"
	"github.com/yukikurage/trackhire-api/internal/models"
	"github.com/yukikurage/trackhire-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken      = apierrors.Conflict("User with this email already exists")
	ErrInvalidRole     = apierrors.Validation("Role must be one of: USER, ADMIN")
	ErrUserNotFound    = apierrors.NotFound("User not found")
	ErrNameRequired    = apierrors.Validation("Name is required")
	ErrNameTooShort    = apierrors.Validation("Name must be at least 2 characters")
	ErrEmailRequired   = apierrors.Validation("Email is required")
	ErrPasswordTooWeak = apierrors.Validation("Password must be at least 6 characters")
)

// AuthService handles registration, login and identity lookup.
type AuthService struct {
	userRepo   repository.UserRepository
	tokens     *TokenIssuer
	bcryptCost int

	// compared against when the email is unknown so both failure paths cost one bcrypt run
	dummyHash []byte
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, tokens *TokenIssuer, bcryptCost int) *AuthService {
	dummy, _ := bcrypt.GenerateFromPassword([]byte("trackhire-dummy-password"), bcryptCost)
	return &AuthService{
		userRepo:   userRepo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		dummyHash:  dummy,
	}
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     models.Role
}

// Register creates a new user. The role defaults to USER.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if utf8.RuneCountInString(name) < constants.MinNameLength {
		return nil, ErrNameTooShort
	}
	email := normalizeEmail(input.Email)
	if email == "" {
		return nil, ErrEmailRequired
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooWeak
	}

	role := input.Role
	if role == "" {
		role = models.RoleUser
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierrors.Internal("failed to check email", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, apierrors.Internal("failed to hash password", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierrors.Wrap(ErrEmailTaken, err)
		}
		return nil, apierrors.Internal("failed to create user", err)
	}

	return user, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult is the authenticated user and a freshly issued token.
type LoginResult struct {
	User      *models.User
	Token     string
	ExpiresAt time.Time
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password fail with the same error.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(input.Password))
			return nil, apierrors.ErrInvalidCredentials
		}
		return nil, apierrors.Internal("failed to find user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, apierrors.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(user)
	if err != nil {
		return nil, apierrors.Internal("failed to issue token", err)
	}

	return &LoginResult{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, apierrors.Internal("failed to find user", err)
	}

	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

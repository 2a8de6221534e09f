package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/trackhire-api/internal/dto"
	"github.com/yukikurage/trackhire-api/internal/middleware"
	"github.com/yukikurage/trackhire-api/internal/models"
)

func TestAuthHandler_Register(t *testing.T) {
	env := setupTestEnv(t, nil)

	var user dto.UserDTO
	w, body := env.request(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     "Sam Seeker",
		"email":    "sam@example.com",
		"password": "supersecret",
	}, &user)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, body.Success)
	assert.Equal(t, "User registered successfully", body.Message)
	assert.Equal(t, "sam@example.com", user.Email)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestAuthHandler_RegisterDuplicate(t *testing.T) {
	env := setupTestEnv(t, nil)
	payload := map[string]string{"name": "Sam", "email": "sam@example.com", "password": "supersecret"}

	w, _ := env.request(t, http.MethodPost, "/api/auth/register", "", payload, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w, body := env.request(t, http.MethodPost, "/api/auth/register", "", payload, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, body.Success)
	assert.Equal(t, "User with this email already exists", body.Message)
	assert.Nil(t, body.Data)
}

func TestAuthHandler_RegisterValidation(t *testing.T) {
	env := setupTestEnv(t, nil)

	w, body := env.request(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     "S",
		"email":    "not-an-email",
		"password": "123",
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Name must be at least 2 characters, Invalid email address, Password must be at least 6 characters", body.Message)
}

func TestAuthHandler_RegisterRejectsUnknownRole(t *testing.T) {
	env := setupTestEnv(t, nil)

	w, body := env.request(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     "Sam",
		"email":    "sam@example.com",
		"password": "supersecret",
		"role":     "OWNER",
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Role must be one of: USER, ADMIN", body.Message)
}

func TestAuthHandler_LoginAndMe(t *testing.T) {
	env := setupTestEnv(t, nil)
	payload := map[string]string{"name": "Ada", "email": "ada@example.com", "password": "supersecret", "role": "ADMIN"}
	w, _ := env.request(t, http.MethodPost, "/api/auth/register", "", payload, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var login dto.LoginDTO
	w, body := env.request(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "ada@example.com",
		"password": "supersecret",
	}, &login)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Login successful", body.Message)
	require.NotEmpty(t, login.Token)
	assert.Equal(t, models.RoleAdmin, login.User.Role)

	claims, err := env.tokens.Verify(login.Token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, claims.Role)

	var me dto.UserDTO
	w, _ = env.request(t, http.MethodGet, "/api/auth/me", login.Token, nil, &me)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, login.User.ID, me.ID)
}

func TestAuthHandler_LoginWrongPassword(t *testing.T) {
	env := setupTestEnv(t, nil)
	w, _ := env.request(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "Sam", "email": "sam@example.com", "password": "supersecret",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w, body := env.request(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "sam@example.com",
		"password": "wrong-password",
	}, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, body.Success)
	assert.Equal(t, "Invalid email or password", body.Message)
	assert.NotContains(t, w.Body.String(), "token")
}

func TestAuthHandler_SessionCookieAndLogout(t *testing.T) {
	env := setupTestEnv(t, nil)
	w, _ := env.request(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "Sam", "email": "sam@example.com", "password": "supersecret",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	loginReq := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"sam@example.com","password":"supersecret"}`))
	loginReq.Header.Set("Content-Type", "application/json")
	loginW := httptest.NewRecorder()
	env.router.ServeHTTP(loginW, loginReq)
	require.Equal(t, http.StatusOK, loginW.Code)

	cookies := loginW.Result().Cookies()
	require.NotEmpty(t, cookies)

	meReq := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	for _, c := range cookies {
		meReq.AddCookie(c)
	}
	meW := httptest.NewRecorder()
	env.router.ServeHTTP(meW, meReq)
	require.Equal(t, http.StatusOK, meW.Code)

	logoutReq := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	for _, c := range cookies {
		logoutReq.AddCookie(c)
	}
	logoutW := httptest.NewRecorder()
	env.router.ServeHTTP(logoutW, logoutReq)
	require.Equal(t, http.StatusOK, logoutW.Code)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(logoutW.Body.Bytes(), &body))
	assert.Equal(t, "Logged out successfully", body.Message)

	cleared := false
	for _, c := range logoutW.Result().Cookies() {
		if c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)
}

func TestAuthHandler_MeRequiresToken(t *testing.T) {
	env := setupTestEnv(t, nil)

	w, body := env.request(t, http.MethodGet, "/api/auth/me", "", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, body.Success)
}

func TestAuthHandler_LoginThrottleIgnoresForwardedFor(t *testing.T) {
	env := setupTestEnvWith(t, func(cfg *RouterConfig) {
		cfg.Limiter = middleware.NewMemoryLimiter()
		cfg.AuthRateLimit = 3
		cfg.AuthRateWindow = time.Minute
	})

	counts := map[int]int{}
	for i := 0; i < 20; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
			strings.NewReader(`{"email":"nobody@example.com","password":"wrongpassword"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("198.51.100.%d", i))
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)
		counts[w.Code]++
	}

	assert.Equal(t, map[int]int{http.StatusUnauthorized: 3, http.StatusTooManyRequests: 17}, counts)
}

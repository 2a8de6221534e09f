package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/trackhire-api/internal/constants"
	"github.com/yukikurage/trackhire-api/internal/dto"
	apierrors "github.com/yukikurage/trackhire-api/internal/errors"
	"github.com/yukikurage/trackhire-api/internal/middleware"
	"github.com/yukikurage/trackhire-api/internal/models"
	"github.com/yukikurage/trackhire-api/internal/response"
	"github.com/yukikurage/trackhire-api/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register creates a new account.
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		Name     string `json:"name" binding:"required,min=2"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
		Role     string `json:"role" binding:"omitempty,oneof=USER ADMIN"`
	}

	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.authService.Register(c.Request.Context(), services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     models.Role(req.Role),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "User registered successfully", dto.ToUserDTO(*user))
}

// Login verifies credentials and returns a bearer token. The token is also
// kept in the session when a session store is configured.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authService.Login(c.Request.Context(), services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	if _, ok := c.Get(sessions.DefaultKey); ok {
		session := sessions.Default(c)
		session.Set(constants.SessionKeyToken, result.Token)
		if err := session.Save(); err != nil {
			_ = c.Error(apierrors.Internal("failed to save session", err))
			return
		}
	}

	response.Success(c, http.StatusOK, "Login successful", dto.LoginDTO{
		User:      dto.ToUserDTO(*result.User),
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
	})
}

// Logout removes the session. Bearer tokens stay valid until they expire.
func (h *AuthHandler) Logout(c *gin.Context) {
	if _, ok := c.Get(sessions.DefaultKey); ok {
		session := sessions.Default(c)
		session.Clear()
		session.Options(sessions.Options{Path: "/", MaxAge: -1})
		if err := session.Save(); err != nil {
			_ = c.Error(apierrors.Internal("failed to logout", err))
			return
		}
	}

	response.Success(c, http.StatusOK, "Logged out successfully", nil)
}

// Me returns the authenticated user.
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		_ = c.Error(apierrors.ErrMissingToken)
		return
	}

	response.Success(c, http.StatusOK, "User profile fetched", dto.ToUserDTO(*user))
}

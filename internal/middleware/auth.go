package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yukikurage/trackhire-api/internal/constants"
	apierrors "github.com/yukikurage/trackhire-api/internal/errors"
	"github.com/yukikurage/trackhire-api/internal/models"
	"github.com/yukikurage/trackhire-api/internal/services"
)

// UserLookup resolves the user a verified token refers to.
type UserLookup interface {
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// RequireAuth resolves the caller from a bearer token, falling back to the
// token stored in the session cookie. The user is re-read on every request so
// deleted accounts and role changes take effect before the token expires.
func RequireAuth(tokens *services.TokenIssuer, users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			token = sessionToken(c)
		}
		if token == "" {
			abortWithError(c, apierrors.ErrMissingToken)
			return
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			abortWithError(c, apierrors.Wrap(apierrors.ErrUnauthorized, err))
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			abortWithError(c, apierrors.ErrUnauthorized)
			return
		}

		user, err := users.GetUser(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				abortWithError(c, apierrors.ErrUserNotFoundForToken)
				return
			}
			abortWithError(c, err)
			return
		}

		c.Set(constants.ContextKeyUserID, user.ID)
		c.Set(constants.ContextKeyPrincipal, user)
		c.Next()
	}
}

// RequireRole admits callers whose role is one of roles. It must run after RequireAuth.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			abortWithError(c, apierrors.ErrMissingToken)
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		abortWithError(c, apierrors.ErrForbidden)
	}
}

// CurrentUser returns the authenticated user set by RequireAuth.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(constants.ContextKeyPrincipal)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok && user != nil
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func sessionToken(c *gin.Context) string {
	if _, ok := c.Get(sessions.DefaultKey); !ok {
		return ""
	}
	token, _ := sessions.Default(c).Get(constants.SessionKeyToken).(string)
	return token
}

func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

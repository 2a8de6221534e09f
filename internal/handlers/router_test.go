package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/trackhire-api/internal/models"
	"github.com/yukikurage/trackhire-api/internal/response"
	"github.com/yukikurage/trackhire-api/internal/services"
	"github.com/yukikurage/trackhire-api/internal/testutil"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testJWTSecret = "handler-test-secret-key"

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	db     *gorm.DB
	router *gin.Engine
	tokens *services.TokenIssuer
}

func setupTestEnv(t *testing.T, extractor services.JobExtractor) testEnv {
	t.Helper()

	return setupTestEnvWith(t, func(cfg *RouterConfig) {
		cfg.Extractor = extractor
	})
}

// setupTestEnvWith lets a test adjust the router configuration before the
// engine is built.
func setupTestEnvWith(t *testing.T, configure func(*RouterConfig)) testEnv {
	t.Helper()

	db := testutil.NewDB(t)
	cfg := RouterConfig{
		DB:           db,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		JWTSecret:    testJWTSecret,
		JWTTTL:       time.Hour,
		BcryptCost:   bcrypt.MinCost,
		SessionStore: cookie.NewStore([]byte("secret")),
	}
	if configure != nil {
		configure(&cfg)
	}
	router := NewRouter(cfg)

	return testEnv{
		db:     db,
		router: router,
		tokens: services.NewTokenIssuer(testJWTSecret, time.Hour),
	}
}

func (env testEnv) tokenFor(t *testing.T, user *models.User) string {
	t.Helper()

	token, _, err := env.tokens.Issue(user)
	require.NoError(t, err)
	return token
}

// request sends a JSON request and decodes the envelope. data, when non-nil,
// receives the envelope's data field.
func (env testEnv) request(t *testing.T, method, path, token string, body interface{}, data interface{}) (*httptest.ResponseRecorder, response.Envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	var envelope struct {
		response.Envelope
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope), w.Body.String())
	if data != nil && len(envelope.Data) > 0 {
		require.NoError(t, json.Unmarshal(envelope.Data, data))
	}

	result := envelope.Envelope
	if len(envelope.Data) > 0 {
		result.Data = envelope.Data
	}
	return w, result
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_TTL", "")
	t.Setenv("BCRYPT_COST", "")
	t.Setenv("DB_DRIVER", "")

	cfg := Load()

	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, bcrypt.DefaultCost, cfg.BcryptCost)
	assert.Equal(t, "", cfg.RedisAddr())
}

func TestLoad_ClampsBcryptCost(t *testing.T) {
	t.Setenv("BCRYPT_COST", "4")

	cfg := Load()

	assert.Equal(t, bcrypt.DefaultCost, cfg.BcryptCost)
}

func TestLoad_ParsesLists(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test ,")
	t.Setenv("REDIS_HOST", "cache")

	cfg := Load()

	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "cache:6379", cfg.RedisAddr())
}

func TestValidate(t *testing.T) {
	cfg := &Config{DBDriver: "sqlite", JWTTTL: time.Hour}

	require.Error(t, cfg.Validate())

	cfg.JWTSecret = "short"
	require.Error(t, cfg.Validate())

	cfg.JWTSecret = "0123456789abcdef-long-enough"
	require.NoError(t, cfg.Validate())

	cfg.DBDriver = "oracle"
	require.Error(t, cfg.Validate())
}

func TestValidate_ReleaseRequiresSessionSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("GIN_MODE", "release")
	t.Setenv("JWT_SECRET", "0123456789abcdef-long-enough")
	t.Setenv("DB_DRIVER", "sqlite")

	cfg := Load()
	require.Error(t, cfg.Validate())

	cfg.SessionSecret = "short"
	require.Error(t, cfg.Validate())

	cfg.SessionSecret = "fedcba9876543210-session"
	require.NoError(t, cfg.Validate())

	cfg.GinMode = "debug"
	cfg.SessionSecret = defaultSessionSecret
	require.NoError(t, cfg.Validate())
}

func TestValidate_TrustedProxies(t *testing.T) {
	t.Setenv("TRUSTED_PROXIES", "")

	cfg := Load()
	assert.Empty(t, cfg.TrustedProxies)

	cfg = &Config{DBDriver: "sqlite", JWTTTL: time.Hour, JWTSecret: "0123456789abcdef-long-enough"}
	cfg.TrustedProxies = []string{"10.0.0.0/8", "127.0.0.1"}
	require.NoError(t, cfg.Validate())

	cfg.TrustedProxies = []string{"not-an-ip"}
	require.Error(t, cfg.Validate())
}

package config

import (
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/yukikurage/trackhire-api/internal/constants"
	"golang.org/x/crypto/bcrypt"
)

const (
	minJWTSecretLength   = 16
	defaultSessionSecret = "default-secret-key-change-me"
)

type Config struct {
	Port    string
	GinMode string

	DBDriver          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSSLMode         string
	SQLitePath        string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration

	JWTSecret  string
	JWTTTL     time.Duration
	BcryptCost int

	RedisHost     string
	RedisPort     string
	RedisPassword string
	SessionSecret string

	CORSAllowedOrigins []string
	TrustedProxies     []string
	AuthRateLimit      int
	AuthRateWindow     time.Duration

	OpenAIAPIKey string
	OpenAIModel  string
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Failed to load .env file: %v", err)
	}

	cfg := &Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "debug"),

		DBDriver:          strings.ToLower(getEnv("DB_DRIVER", "postgres")),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBUser:            getEnv("DB_USER", "trackhire"),
		DBPassword:        getEnv("DB_PASSWORD", "trackhire"),
		DBName:            getEnv("DB_NAME", "trackhire"),
		DBSSLMode:         getEnv("DB_SSLMODE", "disable"),
		SQLitePath:        getEnv("SQLITE_PATH", "trackhire.db"),
		DBMaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 10),
		DBConnMaxLifetime: getDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),

		JWTSecret:  getEnv("JWT_SECRET", ""),
		JWTTTL:     getDuration("JWT_TTL", constants.DefaultTokenTTL),
		BcryptCost: getInt("BCRYPT_COST", bcrypt.DefaultCost),

		RedisHost:     getEnv("REDIS_HOST", ""),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		SessionSecret: getEnv("SESSION_SECRET", defaultSessionSecret),

		CORSAllowedOrigins: getList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		TrustedProxies:     getList("TRUSTED_PROXIES", nil),
		AuthRateLimit:      getInt("AUTH_RATE_LIMIT", 20),
		AuthRateWindow:     getDuration("AUTH_RATE_WINDOW", time.Minute),

		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-4o"),
	}

	// bcrypt below 10 rounds is too cheap for stored credentials.
	if cfg.BcryptCost < bcrypt.DefaultCost {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	if cfg.BcryptCost > bcrypt.MaxCost {
		cfg.BcryptCost = bcrypt.MaxCost
	}

	return cfg
}

// Validate reports configuration that must stop the server from starting.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if len(c.JWTSecret) < minJWTSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d characters", minJWTSecretLength)
	}
	if c.IsProduction() && (c.SessionSecret == defaultSessionSecret || len(c.SessionSecret) < minJWTSecretLength) {
		return fmt.Errorf("SESSION_SECRET must be set to at least %d characters in release mode", minJWTSecretLength)
	}
	if c.JWTTTL <= 0 {
		return errors.New("JWT_TTL must be positive")
	}
	for _, proxy := range c.TrustedProxies {
		if net.ParseIP(proxy) != nil {
			continue
		}
		if _, _, err := net.ParseCIDR(proxy); err != nil {
			return fmt.Errorf("invalid TRUSTED_PROXIES entry %q", proxy)
		}
	}
	switch c.DBDriver {
	case "postgres", "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	return nil
}

// RedisAddr returns host:port, or "" when Redis is not configured.
func (c *Config) RedisAddr() string {
	if c.RedisHost == "" {
		return ""
	}
	return c.RedisHost + ":" + c.RedisPort
}

// IsProduction reports whether gin runs in release mode.
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %d", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %s", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

func getList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/yukikurage/trackhire-api/internal/config"
	"github.com/yukikurage/trackhire-api/internal/database"
	"github.com/yukikurage/trackhire-api/internal/handlers"
	"github.com/yukikurage/trackhire-api/internal/middleware"
	"github.com/yukikurage/trackhire-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Session store: Redis when configured, signed cookies otherwise
	var store sessions.Store
	var limiter middleware.Limiter = middleware.NewMemoryLimiter()
	if addr := cfg.RedisAddr(); addr != "" {
		store, err = redisStore.NewStore(
			10,    // Redis pool size
			"tcp", // network type
			addr,
			cfg.RedisPassword,
			[]byte(cfg.SessionSecret),
		)
		if err != nil {
			log.Fatalf("Failed to create Redis store: %v", err)
		}

		redisClient := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: cfg.RedisPassword,
		})
		defer redisClient.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Error("redis ping failed, using in-process rate limiter", slog.String("error", err.Error()))
		} else {
			limiter = middleware.NewRedisLimiter(redisClient)
		}
		cancel()
	} else {
		store = cookie.NewStore([]byte(cfg.SessionSecret))
	}
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.JWTTTL.Seconds()),
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})

	// Initialize AI service
	var extractor services.JobExtractor
	if cfg.OpenAIAPIKey != "" {
		extractor = services.NewAIService(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	}

	r := handlers.NewRouter(handlers.RouterConfig{
		DB:                 db,
		Logger:             logger,
		JWTSecret:          cfg.JWTSecret,
		JWTTTL:             cfg.JWTTTL,
		BcryptCost:         cfg.BcryptCost,
		SessionStore:       store,
		Limiter:            limiter,
		TrustedProxies:     cfg.TrustedProxies,
		AuthRateLimit:      cfg.AuthRateLimit,
		AuthRateWindow:     cfg.AuthRateWindow,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		Extractor:          extractor,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
}

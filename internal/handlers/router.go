package handlers

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/trackhire-api/internal/constants"
	"github.com/yukikurage/trackhire-api/internal/middleware"
	"github.com/yukikurage/trackhire-api/internal/models"
	"github.com/yukikurage/trackhire-api/internal/repository"
	"github.com/yukikurage/trackhire-api/internal/services"
	"github.com/yukikurage/trackhire-api/internal/utils"
	"gorm.io/gorm"
)

// RouterConfig carries everything the HTTP layer depends on.
type RouterConfig struct {
	DB     *gorm.DB
	Logger *slog.Logger

	JWTSecret  string
	JWTTTL     time.Duration
	BcryptCost int

	// Optional. Without a store the token is only accepted from the Authorization header.
	SessionStore sessions.Store
	// Optional. Without a limiter auth routes are not throttled.
	Limiter        middleware.Limiter
	AuthRateLimit  int
	AuthRateWindow time.Duration

	CORSAllowedOrigins []string
	// Proxies whose X-Forwarded-For is honoured. Empty means the peer address
	// is the client IP.
	TrustedProxies []string

	// Optional. Without an extractor POST /api/jobs/extract answers 503.
	Extractor services.JobExtractor
}

// NewRouter wires repositories, services and handlers into a gin engine.
func NewRouter(cfg RouterConfig) *gin.Engine {
	utils.UseJSONFieldNames()

	userRepo := repository.NewUserRepository(cfg.DB)
	companyRepo := repository.NewCompanyRepository(cfg.DB)
	jobRepo := repository.NewJobRepository(cfg.DB)
	appRepo := repository.NewApplicationRepository(cfg.DB)

	tokens := services.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL)
	authService := services.NewAuthService(userRepo, tokens, cfg.BcryptCost)

	authHandler := NewAuthHandler(authService)
	jobHandler := NewJobHandler(services.NewJobService(jobRepo, companyRepo), cfg.Extractor)
	companyHandler := NewCompanyHandler(services.NewCompanyService(companyRepo))
	applicationHandler := NewApplicationHandler(services.NewApplicationService(appRepo, jobRepo))
	dashboardHandler := NewDashboardHandler(services.NewDashboardService(appRepo))
	healthHandler := NewHealthHandler(cfg.DB)

	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		cfg.Logger.Error("invalid trusted proxies, trusting none", slog.Any("error", err))
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.RequestLogger(cfg.Logger))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	if cfg.SessionStore != nil {
		r.Use(sessions.Sessions(constants.SessionCookieName, cfg.SessionStore))
	}
	r.Use(middleware.ErrorHandler(cfg.Logger))
	r.NoRoute(middleware.NotFound)

	requireAuth := middleware.RequireAuth(tokens, authService)
	adminOnly := middleware.RequireRole(models.RoleAdmin)
	userOnly := middleware.RequireRole(models.RoleUser)
	authLimit := middleware.RateLimit(cfg.Limiter, cfg.AuthRateLimit, cfg.AuthRateWindow)

	r.GET("/health", healthHandler.Health)

	api := r.Group("/api")
	{
		api.GET("/health", healthHandler.Health)

		auth := api.Group("/auth")
		{
			auth.POST("/register", authLimit, authHandler.Register)
			auth.POST("/login", authLimit, authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", requireAuth, authHandler.Me)
		}

		jobs := api.Group("/jobs")
		{
			jobs.GET("", jobHandler.ListJobs)
			jobs.GET("/:id", jobHandler.GetJob)
			jobs.POST("", requireAuth, adminOnly, jobHandler.CreateJob)
			jobs.POST("/extract", requireAuth, adminOnly, jobHandler.ExtractJob)
			jobs.PUT("/:id", requireAuth, adminOnly, jobHandler.UpdateJob)
			jobs.DELETE("/:id", requireAuth, adminOnly, jobHandler.DeleteJob)
		}

		companies := api.Group("/companies")
		{
			companies.GET("", companyHandler.ListCompanies)
			companies.POST("", requireAuth, adminOnly, companyHandler.CreateCompany)
		}

		applications := api.Group("/applications")
		applications.Use(requireAuth)
		{
			applications.POST("", userOnly, applicationHandler.Apply)
			applications.GET("/my", userOnly, applicationHandler.ListMine)
			applications.GET("", adminOnly, applicationHandler.ListAll)
			applications.PATCH("/:id/status", applicationHandler.UpdateStatus)
		}

		api.GET("/dashboard/stats", requireAuth, dashboardHandler.GetStats)
	}

	return r
}

package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/sewline/jobtrack-api/docs"
	"github.com/sewline/jobtrack-api/internal/api/handler"
	"github.com/sewline/jobtrack-api/internal/api/middleware"
	"github.com/sewline/jobtrack-api/internal/core/ports"
	"github.com/sewline/jobtrack-api/internal/core/service"
	mongodb "github.com/sewline/jobtrack-api/internal/infrastructure/db/mongo"
	redisdb "github.com/sewline/jobtrack-api/internal/infrastructure/db/redis"
	"github.com/sewline/jobtrack-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, audit ports.AuditSink, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("jobtrack"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	jobRepo := mongodb.NewJobRepository(db)
	limiter := redisdb.NewLoginLimiter(rdb, cfg.Login.MaxAttempts, cfg.Login.Lockout)

	authService := service.NewAuthService(userRepo, limiter, cfg.JWTSecret, cfg.TokenTTL, log)
	jobService := service.NewJobService(jobRepo, audit, log)
	userService := service.NewUserService(userRepo, audit, log)

	authHandler := handler.NewAuthHandler(authService)
	jobHandler := handler.NewJobHandler(jobService)
	userHandler := handler.NewUserHandler(userService)

	authMW := middleware.Auth(cfg.JWTSecret)
	policy := middleware.DefaultPolicy

	// --- Auth routes ---
	apiGroup := e.Group("/api")
	apiGroup.POST("/auth/login", authHandler.Login)
	apiGroup.GET("/auth/me", authHandler.Me, authMW)

	// --- Job routes ---
	jobs := apiGroup.Group("/jobs", authMW)
	jobs.GET("", jobHandler.List, middleware.Authorize(policy, "jobs:list"))
	jobs.POST("", jobHandler.Create, middleware.Authorize(policy, "jobs:create"))
	jobs.PUT("/:id", jobHandler.Update, middleware.Authorize(policy, "jobs:update"))

	// --- User routes ---
	users := apiGroup.Group("/users", authMW)
	users.GET("", userHandler.List, middleware.Authorize(policy, "users:list"))
	users.POST("", userHandler.Create, middleware.Authorize(policy, "users:create"))
	users.DELETE("/:id", userHandler.Delete, middleware.Authorize(policy, "users:delete"))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

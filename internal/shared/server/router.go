package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"advisor-backend/advisor/profile"
	googleauth "advisor-backend/internal/auth"
	"advisor-backend/internal/catalog"
	"advisor-backend/internal/evaluations"
	"advisor-backend/internal/shared/config"
	"advisor-backend/internal/shared/metrics"
	"advisor-backend/internal/shared/server/middleware"
	"advisor-backend/internal/shared/server/respond"
	"advisor-backend/internal/shared/storage/db"
	"advisor-backend/internal/usage"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Registered before the middleware chain so scrapers need no identity.
	r.GET("/metrics", metrics.Handler())

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.Auth(cfg.Env),
	)

	// Dependencies
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		opts := db.OptionsFromEnv(db.DefaultServerOptions())
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, opts)
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var catalogRepo catalog.Repo
	if sqlDB != nil {
		catalogRepo = &catalog.PGRepo{DB: sqlDB}
	} else {
		catalogRepo = catalog.NewMemoryRepo()
	}
	catalogSvc := &catalog.Service{Repo: catalogRepo}
	catalogHandler := catalog.NewHandler(catalogSvc)

	var usageSvc *usage.Service
	if sqlDB != nil {
		usageSvc = usage.NewPostgresService(usage.NewPGStore(sqlDB))
	} else {
		usageSvc = usage.NewService()
	}
	usageHandler := usage.NewHandler(usageSvc)

	var evalRepo evaluations.Repo
	if sqlDB != nil {
		evalRepo = &evaluations.PGRepo{DB: sqlDB}
	} else {
		evalRepo = evaluations.NewMemoryRepo()
	}
	evalSvc := &evaluations.Service{
		Repo:       evalRepo,
		Usage:      usageSvc,
		Catalog:    catalogSvc,
		Industries: profile.BuiltinIndustryDefaults(),
		Config:     cfg.EngineConfig,
	}
	evalHandler := evaluations.NewHandler(evalSvc)

	googleAuthSvc := googleauth.NewGoogleService(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL, cfg.UIRedirectURL)

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"EVALUATE": {Rate: 1, Burst: 5},
		},
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/evaluations" {
				return "EVALUATE"
			}
			return ""
		},
	}))
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	googleAuthSvc.RegisterRoutes(api)
	registerMeRoutes(api)
	catalogHandler.RegisterRoutes(api)
	evalHandler.RegisterRoutes(api)
	usageHandler.RegisterRoutes(api)
	if cfg.Env == "dev" {
		dev := api.Group("/dev")
		usageHandler.RegisterDevRoutes(dev)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}

// Package bootstrap wires configuration, database, repositories, services,
// controllers and middleware together. Construction order is explicit so
// every dependency arrives through a constructor.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/campushq/backoffice/internal/app/controllers"
	"github.com/campushq/backoffice/internal/app/migrations"
	"github.com/campushq/backoffice/internal/app/repositories"
	"github.com/campushq/backoffice/internal/app/routes"
	"github.com/campushq/backoffice/internal/app/services"
	"github.com/campushq/backoffice/internal/config"
	"github.com/campushq/backoffice/internal/db"
	"github.com/campushq/backoffice/internal/middleware"
	"github.com/campushq/backoffice/internal/pkg/auth"
	"github.com/campushq/backoffice/internal/pkg/filestorage"
	"github.com/campushq/backoffice/internal/pkg/logger"
	"github.com/campushq/backoffice/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService            services.AuthService
	NotificationService    services.NotificationService
	GalleryService         services.GalleryService
	BannerService          services.BannerService
	LinkService            services.LinkService
	FacultyService         services.FacultyService
	PermissionService      services.PermissionService
	AuthController         *controllers.AuthController
	NotificationController *controllers.NotificationController
	GalleryController      *controllers.GalleryController
	BannerController       *controllers.BannerController
	LinkController         *controllers.LinkController
	FacultyController      *controllers.FacultyController
	PermissionController   *controllers.PermissionController
	AuthMiddleware         *middleware.AuthMiddleware
	PermissionMiddleware   *middleware.PermissionMiddleware
	Repos                  *repositories.Repositories
	JWTService             *auth.JWTService
	FileStorage            *filestorage.LocalStorage
	Logger                 zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := migrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, cfg, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = repositories.NewRepositories(dbPool)

	// File storage: the base URL must match the static serving path
	baseURL := cfg.Server.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:" + cfg.Server.Port
	}
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, baseURL+"/uploads")
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	accessTokenExp, err := time.ParseDuration(cfg.JWT.AccessTokenExpiration)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT access token expiration: %w", err)
	}

	deps.JWTService = auth.NewJWTService(auth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: accessTokenExp,
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = services.NewAuthService(deps.Repos.UserRepository, deps.JWTService, lgr)
	deps.NotificationService = services.NewNotificationService(deps.Repos.NotificationRepository, deps.FileStorage)
	deps.GalleryService = services.NewGalleryService(deps.Repos.GalleryRepository, deps.FileStorage)
	deps.BannerService = services.NewBannerService(deps.Repos.BannerRepository, deps.FileStorage)
	deps.LinkService = services.NewLinkService(deps.Repos.LinkRepository, deps.FileStorage)
	deps.FacultyService = services.NewFacultyService(deps.Repos.FacultyRepository, deps.FileStorage)
	deps.PermissionService = services.NewPermissionService(deps.Repos.PermissionRepository)

	deps.AuthMiddleware = middleware.NewAuthMiddleware(deps.JWTService)
	deps.PermissionMiddleware = middleware.NewPermissionMiddleware(deps.PermissionService)

	deps.AuthController = controllers.NewAuthController(deps.AuthService)
	deps.NotificationController = controllers.NewNotificationController(deps.NotificationService)
	deps.GalleryController = controllers.NewGalleryController(deps.GalleryService)
	deps.BannerController = controllers.NewBannerController(deps.BannerService)
	deps.LinkController = controllers.NewLinkController(deps.LinkService)
	deps.FacultyController = controllers.NewFacultyController(deps.FacultyService)
	deps.PermissionController = controllers.NewPermissionController(deps.PermissionService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	routes.SetupSwagger(router)

	routes.SetupRouter(router,
		deps.AuthController,
		deps.NotificationController,
		deps.GalleryController,
		deps.BannerController,
		deps.LinkController,
		deps.FacultyController,
		deps.PermissionController,
		deps.AuthMiddleware,
		deps.PermissionMiddleware,
	)

	return router
}

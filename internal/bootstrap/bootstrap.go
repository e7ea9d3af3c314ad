package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/campusshare/campusshare/internal/app/controllers"
	appMigrations "github.com/campusshare/campusshare/internal/app/migrations"
	appRepos "github.com/campusshare/campusshare/internal/app/repositories"
	appRoutes "github.com/campusshare/campusshare/internal/app/routes"
	appServices "github.com/campusshare/campusshare/internal/app/services"
	"github.com/campusshare/campusshare/internal/config"
	"github.com/campusshare/campusshare/internal/db"
	"github.com/campusshare/campusshare/internal/embedding"
	appMiddleware "github.com/campusshare/campusshare/internal/middleware"
	"github.com/campusshare/campusshare/internal/pkg/logger"
	"github.com/campusshare/campusshare/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos                 *appRepos.Repositories
	TxManager             appRepos.TxManager
	Embedder              embedding.Embedder
	StudentService        *appServices.StudentService
	ResourceService       *appServices.ResourceService
	MatcherService        *appServices.MatcherService
	LedgerService         *appServices.LedgerService
	RewardService         *appServices.RewardService
	StudentController     *appControllers.StudentController
	ResourceController    *appControllers.ResourceController
	TransactionController *appControllers.TransactionController
	RewardController      *appControllers.RewardController
	Logger                zerolog.Logger
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
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), database.Pool, lgr); err != nil {
		// Seeding failure is not fatal, the API works without default rewards
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)
	deps.TxManager = appRepos.NewTxManager(database)

	// The embedder is constructed once at startup and shared read-only by
	// every request handler.
	embedder, err := embedding.New(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize embedding provider")
		return nil, fmt.Errorf("failed to initialize embedding provider: %w", err)
	}
	deps.Embedder = embedder
	lgr.Info().
		Str("provider", cfg.Embedding.Provider).
		Int("dimension", embedder.Dimension()).
		Msg("Embedding provider initialized")

	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository)
	deps.ResourceService = appServices.NewResourceService(
		deps.Repos.ResourceRepository,
		deps.Repos.StudentRepository,
		deps.Embedder,
	)
	deps.MatcherService = appServices.NewMatcherService(
		deps.Embedder,
		deps.Repos.ResourceRepository,
		cfg.Matcher.DefaultThreshold,
	)
	deps.LedgerService = appServices.NewLedgerService(
		deps.TxManager,
		deps.Repos.ResourceRepository,
		deps.Repos.TransactionRepository,
		deps.Repos.StudentRepository,
		lgr,
	)
	deps.RewardService = appServices.NewRewardService(
		deps.TxManager,
		deps.Repos.RewardRepository,
		deps.Repos.StudentRepository,
	)

	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.ResourceController = appControllers.NewResourceController(deps.ResourceService, deps.MatcherService)
	deps.TransactionController = appControllers.NewTransactionController(deps.LedgerService)
	deps.RewardController = appControllers.NewRewardController(deps.RewardService)

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

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger(lgr))

	appRoutes.SetupRouter(router,
		deps.StudentController,
		deps.ResourceController,
		deps.TransactionController,
		deps.RewardController,
	)

	return router
}

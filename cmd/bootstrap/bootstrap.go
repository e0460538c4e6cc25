package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medical-scheduling-api/config"
	deliveryHttp "medical-scheduling-api/internal/delivery/http"
	"medical-scheduling-api/internal/delivery/http/handler"
	"medical-scheduling-api/internal/delivery/http/middleware"
	"medical-scheduling-api/internal/infrastructure/cache"
	"medical-scheduling-api/internal/infrastructure/database"
	"medical-scheduling-api/internal/repository"
	"medical-scheduling-api/internal/service"
	"medical-scheduling-api/internal/usecase"
	"medical-scheduling-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	log := setupLogger(cfg.App.LogLevel)
	app.Log = log
	log.Info("Configuration loaded successfully")

	if cfg.DB.AutoMigrate {
		if err := migrateUp(cfg.DB, log); err != nil {
			return nil, err
		}
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Redis only backs the read cache, so the API still starts without it.
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(cfg.Redis, log)
		if err != nil {
			log.Warnf("Redis unavailable, entity cache disabled: %+v", err)
		} else {
			app.RedisClient = redisClient
		}
	}

	app.Server = initializeServer(cfg, log, db, app.RedisClient)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(level string) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		log.SetLevel(logrus.InfoLevel)
		log.Warnf("Unknown LOG_LEVEL %q, using info", level)
		return log
	}
	log.SetLevel(lvl)

	return log
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	patientRepo := repository.NewPatientRepository()
	doctorRepo := repository.NewDoctorRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)
	cacheService := service.NewNoopCacheService()
	if redisClient != nil {
		cacheService = service.NewRedisCacheService(redisClient, cfg.Cache.TTL, log)
	}

	// Initialize usecases
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo, auditService, cacheService)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo, auditService, cacheService)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, auditService, cacheService)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	entities := []handler.CrudRoutes{
		handler.NewCrudHandler(patientUsecase, customValidator, log),
		handler.NewCrudHandler(doctorUsecase, customValidator, log),
		handler.NewCrudHandler(appointmentUsecase, customValidator, log),
	}
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase, log)
	healthHandler := handler.NewHealthHandler(db, redisClient, log)

	// Initialize middleware
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	recoveryMiddleware := middleware.NewRecoveryMiddleware(log)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.CORS.AllowedOrigins)

	// Initialize router
	router := deliveryHttp.NewRouter(entities, auditLogHandler, healthHandler, loggingMiddleware, recoveryMiddleware, corsMiddleware)

	// Create server
	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() error {
	errCh := make(chan error, 1)

	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		app.Close()
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	app.shutdown()
	return nil
}

func (app *App) shutdown() {
	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), app.Config.App.ShutdownTimeout)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}

func migrateUp(cfg config.DBConfig, log *logrus.Logger) error {
	migrator, err := database.NewMigrator(cfg.MigrationURL(), log)
	if err != nil {
		return err
	}
	defer migrator.Close()

	return migrator.Up()
}

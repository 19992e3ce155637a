package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pauloaguiarc/smarthealthsystem/config"
	deliveryHttp "github.com/pauloaguiarc/smarthealthsystem/internal/delivery/http"
	"github.com/pauloaguiarc/smarthealthsystem/internal/delivery/http/handler"
	"github.com/pauloaguiarc/smarthealthsystem/internal/delivery/http/middleware"
	"github.com/pauloaguiarc/smarthealthsystem/internal/infrastructure/cache"
	"github.com/pauloaguiarc/smarthealthsystem/internal/infrastructure/database"
	"github.com/pauloaguiarc/smarthealthsystem/internal/records"
	"github.com/pauloaguiarc/smarthealthsystem/internal/repository"
	"github.com/pauloaguiarc/smarthealthsystem/internal/service"
	"github.com/pauloaguiarc/smarthealthsystem/internal/usecase"
	"github.com/pauloaguiarc/smarthealthsystem/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config         *config.Config
	DB             *gorm.DB
	RedisClient    *redis.Client
	Store          *records.Store
	ArchiveService *service.ArchiveService
	Server         *http.Server
}

// New creates a new App instance with all dependencies initialized. The
// record store is restored from the last snapshot before the HTTP server is
// handed out.
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize the in-memory record store and restore the last snapshot
	app.Store = records.NewStore()

	log := logrus.StandardLogger()
	archiveRepo := repository.NewArchiveRepository()
	app.ArchiveService = service.NewArchiveService(db, redisClient, log, app.Store, archiveRepo, cfg.Archive.Interval)

	restoreCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := app.ArchiveService.RestoreOnStartup(restoreCtx); err != nil {
		return nil, fmt.Errorf("failed to restore record store: %w", err)
	}

	// Initialize all layers
	server := initializeServer(cfg, app.Store, log)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, store *records.Store, log *logrus.Logger) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize usecases
	patientUsecase := usecase.NewPatientUsecase(store, log)
	doctorUsecase := usecase.NewDoctorUsecase(store, log)
	appointmentUsecase := usecase.NewAppointmentUsecase(store, log)
	prescriptionUsecase := usecase.NewPrescriptionUsecase(store, log)
	reportUsecase := usecase.NewReportUsecase(store, log)

	// Initialize handlers
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	prescriptionHandler := handler.NewPrescriptionHandler(prescriptionUsecase, customValidator)
	reportHandler := handler.NewReportHandler(reportUsecase)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(patientHandler, doctorHandler, appointmentHandler, prescriptionHandler, reportHandler, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Begin periodic snapshots
	app.ArchiveService.Start()

	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Stop the snapshot loop; this persists one final snapshot
	app.ArchiveService.Stop()

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
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

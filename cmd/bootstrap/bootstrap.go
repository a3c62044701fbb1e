package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctor-directory/config"
	deliveryHttp "doctor-directory/internal/delivery/http"
	"doctor-directory/internal/delivery/http/handler"
	"doctor-directory/internal/delivery/http/middleware"
	"doctor-directory/internal/infrastructure/source"
	"doctor-directory/internal/repository"
	"doctor-directory/internal/service"
	"doctor-directory/internal/usecase"
	"doctor-directory/pkg/validator"

	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config  *config.Config
	Catalog *service.DoctorCatalog
	Server  *http.Server
}

// New creates a new App instance with all dependencies initialized
func New(configPath string) (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	SetupLogger(cfg.Log)
	logrus.Info("Configuration loaded successfully")

	// Initialize doctor catalog
	app.Catalog = NewCatalog(cfg, logrus.StandardLogger())

	// Initialize all layers
	app.Server = initializeServer(cfg, app.Catalog)

	return app, nil
}

// SetupLogger configures the logrus logger
func SetupLogger(cfg config.LogConfig) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// NewCatalog wires the remote source into an unloaded DoctorCatalog
func NewCatalog(cfg *config.Config, log *logrus.Logger) *service.DoctorCatalog {
	httpClient := source.NewHTTPClient(cfg.Source)
	doctorRepo := repository.NewDoctorRepository(httpClient, cfg.Source.URL, validator.NewValidator(), log)
	return service.NewDoctorCatalog(doctorRepo, log)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, catalog *service.DoctorCatalog) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize usecases
	directoryUsecase := usecase.NewDoctorDirectoryUsecase(log, catalog)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, catalog, time.Now)

	// Initialize handlers
	doctorHandler := handler.NewDoctorHandler(directoryUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)

	// Initialize middleware
	loggerMiddleware := middleware.NewLoggerMiddleware(log)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(doctorHandler, appointmentHandler, loggerMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run loads the doctor list, starts the HTTP server and handles graceful shutdown.
// A failed load does not stop the server; clients see the error state and may retry.
func (app *App) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), app.Config.Source.Timeout)
	if err := app.Catalog.Load(ctx); err != nil {
		logrus.Warnf("Doctor catalog unavailable, serving error state until reload: %v", err)
	}
	cancel()

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

	logrus.Info("Server shutdown complete")
}

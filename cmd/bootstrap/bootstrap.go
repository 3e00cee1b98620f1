package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lokesh74503/Hospital-management-system/config"
	deliveryHttp "github.com/lokesh74503/Hospital-management-system/internal/delivery/http"
	"github.com/lokesh74503/Hospital-management-system/internal/delivery/http/handler"
	"github.com/lokesh74503/Hospital-management-system/internal/delivery/http/middleware"
	"github.com/lokesh74503/Hospital-management-system/internal/infrastructure/cache"
	"github.com/lokesh74503/Hospital-management-system/internal/infrastructure/database"
	"github.com/lokesh74503/Hospital-management-system/internal/repository"
	"github.com/lokesh74503/Hospital-management-system/internal/service"
	"github.com/lokesh74503/Hospital-management-system/internal/usecase"
	"github.com/lokesh74503/Hospital-management-system/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for a running service
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// NewPatientService wires the patient service: migrations, repositories,
// usecases, handlers and the HTTP server.
func NewPatientService() (*App, error) {
	app, err := newApp()
	if err != nil {
		return nil, err
	}

	log := logrus.StandardLogger()
	customValidator := validator.NewValidator()

	patientRepo := repository.NewPatientRepository()
	events := service.NewEventPublisher(app.RedisClient, log)

	patientUsecase := usecase.NewPatientUsecase(app.DB, log, patientRepo, events)

	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)

	corsMiddleware := middleware.NewCORSMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	router := deliveryHttp.NewPatientRouter(patientHandler, corsMiddleware, loggingMiddleware)
	app.Server = newServer(app.Config, router.Setup())

	return app, nil
}

// NewDoctorService wires the doctor service: migrations, repositories,
// usecases, handlers and the HTTP server.
func NewDoctorService() (*App, error) {
	app, err := newApp()
	if err != nil {
		return nil, err
	}

	log := logrus.StandardLogger()
	customValidator := validator.NewValidator()

	doctorRepo := repository.NewDoctorRepository()
	scheduleRepo := repository.NewDoctorScheduleRepository()
	events := service.NewEventPublisher(app.RedisClient, log)

	doctorUsecase := usecase.NewDoctorUsecase(app.DB, log, doctorRepo, events)
	scheduleUsecase := usecase.NewDoctorScheduleUsecase(app.DB, log, scheduleRepo, doctorRepo, events)

	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	scheduleHandler := handler.NewDoctorScheduleHandler(scheduleUsecase, customValidator)

	corsMiddleware := middleware.NewCORSMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	router := deliveryHttp.NewDoctorRouter(doctorHandler, scheduleHandler, corsMiddleware, loggingMiddleware)
	app.Server = newServer(app.Config, router.Setup())

	return app, nil
}

// newApp loads configuration and opens the shared infrastructure
// connections used by both services.
func newApp() (*App, error) {
	app := &App{}

	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	if err := database.RunMigrations(cfg); err != nil {
		return nil, err
	}

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

func newServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.App.Port),
		Handler: handler,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		logrus.Infof("%s starting on port %s", app.Config.App.Name, app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"dispatch/cmd"
	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/postgres/catalogrepo"
	"dispatch/internal/adapters/out/postgres/compliancerepo"
	"dispatch/internal/adapters/out/postgres/jobrepo"
	"dispatch/internal/adapters/out/postgres/notifyrepo"
	"dispatch/internal/adapters/out/postgres/offerrepo"
	"dispatch/internal/adapters/out/postgres/prorepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/lmittmann/tint"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	configs := getConfigs()

	gormDB, err := openDatabase(configs)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		logger.Error("failed to start scheduled jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                  goDotEnvVariable("HTTP_PORT"),
		DBHost:                    goDotEnvVariable("DB_HOST"),
		DBPort:                    goDotEnvVariable("DB_PORT"),
		DBUser:                    goDotEnvVariable("DB_USER"),
		DBPassword:                goDotEnvVariable("DB_PASSWORD"),
		DBName:                    goDotEnvVariable("DB_NAME"),
		DBSslMode:                 goDotEnvVariable("DB_SSLMODE"),
		PushNotificationsEnabled:  goDotEnvFlag("PUSH_NOTIFICATIONS_ENABLED"),
		SMSNotificationsEnabled:   goDotEnvFlag("SMS_NOTIFICATIONS_ENABLED"),
		EmailNotificationsEnabled: goDotEnvFlag("EMAIL_NOTIFICATIONS_ENABLED"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvFlag(key string) bool {
	enabled, err := strconv.ParseBool(goDotEnvVariable(key))
	if err != nil {
		return false
	}
	return enabled
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	// TranslateError is required: the claim protocol depends on unique
	// constraint violations surfacing as gorm.ErrDuplicatedKey.
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	err = gormDB.AutoMigrate(
		&jobrepo.JobDTO{},
		&jobrepo.JobEventDTO{},
		&jobrepo.RatingDTO{},
		&offerrepo.OfferDTO{},
		&offerrepo.AssignmentDTO{},
		&prorepo.ProfessionalDTO{},
		&notifyrepo.NotificationDTO{},
		&notifyrepo.DeliveryDTO{},
		&notifyrepo.PreferencesDTO{},
		&catalogrepo.ServiceDTO{},
		&compliancerepo.ComplianceRecordDTO{},
	)
	if err != nil {
		return nil, err
	}

	return gormDB, nil
}

func startWebServer(app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := echo.New()

	server := httpin.NewServer(
		app.CreateCreateJobCommandHandler(),
		app.CreateMatchJobCommandHandler(),
		app.CreateAcceptOfferCommandHandler(),
		app.CreateUpdateJobStatusCommandHandler(),
		app.CreateRateJobCommandHandler(),
		app.CreateGetOpenOffersQueryHandler(),
		app.CreateGetJobEventsQueryHandler(),
	)
	server.RegisterRoutes(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil {
			logger.Info("web server stopped", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("web server shutdown failed", "error", err)
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"restaurant/cmd"
	httpadapter "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/jobs"
	"restaurant/internal/pkg/logging"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()

	logger := logging.New(os.Stdout, configs.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := postgres.CreateDatabaseIfNotExists(ctx, configs.DBSettings()); err != nil {
		log.Fatalf("Error preparing database: %v", err)
	}

	gormDB, err := postgres.Open(ctx, configs.DBSettings())
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	publisher, err := cmd.NewEventPublisher(configs)
	if err != nil {
		log.Fatalf("Error connecting to RabbitMQ: %v", err)
	}

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
		publisher,
		logger,
	)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}

	runWebServer(ctx, app, configs.HTTPPort, logger)

	jobManager.StopAll()
	if err = publisher.Close(); err != nil {
		logger.Error("Error closing event publisher", "error", err)
	}
	if sqlDB, dbErr := gormDB.DB(); dbErr == nil {
		_ = sqlDB.Close()
	}
	logger.Info("Shutdown complete")
}

func getConfigs() cmd.Config {
	// .env is optional; real environment variables take precedence.
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warnf("Error loading .env file: %v", err)
	}

	config := cmd.Config{
		HTTPPort:          envOrDefault("HTTP_PORT", "8080"),
		DBHost:            envOrDefault("DB_HOST", "localhost"),
		DBPort:            envOrDefault("DB_PORT", "5432"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            envOrDefault("DB_NAME", "restaurant"),
		DBSslMode:         envOrDefault("DB_SSLMODE", "disable"),
		RabbitMQURL:       os.Getenv("RABBITMQ_URL"),
		RabbitMQExchange:  envOrDefault("RABBITMQ_EXCHANGE", "orders"),
		RevenueReportCron: jobs.DefaultRevenueReportSchedule,
		LogLevel:          envOrDefault("LOG_LEVEL", "info"),
	}
	if schedule, ok := os.LookupEnv("REVENUE_REPORT_CRON"); ok {
		config.RevenueReportCron = schedule
	}
	return config
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func runWebServer(ctx context.Context, app cmd.CompositionRoot, port string, logger *slog.Logger) {
	e, err := httpadapter.NewEcho(app.CreateServer())
	if err != nil {
		log.Fatalf("Error building HTTP server: %v", err)
	}

	go func() {
		logger.Info("HTTP server listening", "port", port)
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); startErr != nil &&
			!errors.Is(startErr, http.ErrServerClosed) {
			log.Fatalf("HTTP server failed: %v", startErr)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"

	"workout-core/config"
	_ "workout-core/docs" // Swagger docs
	"workout-core/internal/classes"
	"workout-core/internal/httpserver"
	"workout-core/pkg/gcalendar"
	"workout-core/pkg/log"
	"workout-core/pkg/postgres"
)

// @title       Workout Core API
// @description Fitness shop and training backend: catalog, cart, nutrition, rankings, and class bookings with Google Calendar mirroring.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Workout Core...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage. No postgres host means in-memory stores, which is the
	// local development mode.
	var db *sqlx.DB
	if cfg.Postgres.Host != "" {
		conn, pgErr := postgres.Connect(ctx, postgres.Config{
			Host:            cfg.Postgres.Host,
			Port:            cfg.Postgres.Port,
			User:            cfg.Postgres.User,
			Password:        cfg.Postgres.Password,
			DBName:          cfg.Postgres.DBName,
			SSLMode:         cfg.Postgres.SSLMode,
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
		})
		if pgErr != nil {
			logger.Error(ctx, "Failed to connect to postgres: ", pgErr)
			return
		}
		defer conn.Close()
		db = conn
		logger.Info(ctx, "Postgres connected")
	} else {
		logger.Warn(ctx, "No postgres host configured, using in-memory stores")
	}

	// 4. Google Calendar client (optional)
	var calendar classes.Calendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendar = calendarClient
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(httpserver.Config{
		Logger:   logger,
		Cfg:      cfg,
		DB:       db,
		Calendar: calendar,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

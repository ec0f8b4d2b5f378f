package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"vacstore/internal/app"
	"vacstore/internal/config"
	"vacstore/internal/database"
	"vacstore/internal/integration/hh"
	"vacstore/internal/observability"
	"vacstore/internal/repository/postgres"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		bootLogger := observability.NewLogger("")
		bootLogger.Fatal().Err(err).Msg("failed to load config")
	}
	logger := observability.NewLogger(cfg.Env)

	if len(cfg.Feed.EmployerIDs) == 0 {
		logger.Fatal().Msg("EMPLOYER_IDS is required for an import run")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conn, err := database.Connect(ctx, database.PostgresConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		Name:     cfg.Database.Name,
		SSLMode:  cfg.Database.SSLMode,
	}, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer conn.Close(ctx)

	store := postgres.NewStore(conn, logger)
	if err := store.EnsureSchema(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to ensure schema")
	}

	feedClient := hh.NewClient(cfg.Feed.BaseURL, &http.Client{Timeout: 30 * time.Second})
	importer := app.NewImportService(feedClient, store, logger)

	summary, err := importer.Run(ctx, cfg.Feed.EmployerIDs)
	if err != nil {
		logger.Fatal().Err(err).Msg("import aborted")
	}
	logger.Info().
		Int("companies", summary.Companies).
		Int("vacancies", summary.Vacancies).
		Int("failures", summary.Failures).
		Msg("import finished")
}

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"vacstore/internal/app"
	"vacstore/internal/config"
	"vacstore/internal/database"
	apphttp "vacstore/internal/http"
	"vacstore/internal/http/handlers"
	httpmw "vacstore/internal/http/middleware"
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

	ctx := context.Background()
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

	reportService := app.NewReportService(store)
	reportHandler := handlers.NewReportHandler(reportService)

	router := apphttp.NewRouter(apphttp.RouterDependencies{
		ReportHandler:  reportHandler,
		Logger:         logger,
		RateLimiter:    httpmw.NewRateLimiter(),
		RateLimit:      cfg.RateLimit,
		RateWindow:     cfg.RateWindow,
		RequestTimeout: cfg.RequestTimeout,
	})
	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("port", cfg.HTTPPort).Msg("reports API started")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown failed")
	}
}

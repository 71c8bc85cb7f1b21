package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JonMunkholm/salarydash/internal/config"
	"github.com/JonMunkholm/salarydash/internal/core"
	"github.com/JonMunkholm/salarydash/internal/dataset"
	"github.com/JonMunkholm/salarydash/internal/logging"
	"github.com/JonMunkholm/salarydash/internal/web"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"config", cfg.String(),
		"apply_company_size", cfg.Dashboard.ApplyCompanySize,
		"rate_limit_enabled", cfg.Rate.Enabled,
	)

	src, err := dataset.NewSource(cfg.Dataset.Source, dataset.Options{
		Timeout: cfg.Dataset.FetchTimeout,
		Table:   cfg.Dataset.Table,
	})
	if err != nil {
		slog.Error("invalid dataset source", "error", err)
		os.Exit(1)
	}

	cache := dataset.NewCache(src, cfg.Dataset.FetchTimeout)
	server := web.NewServer(cache, core.RenderOptions{
		Filter:    core.FilterOptions{ApplyCompanySize: cfg.Dashboard.ApplyCompanySize},
		FocusRole: cfg.Dashboard.FocusRole,
		TopRoles:  cfg.Dashboard.TopRoles,
		Bins:      cfg.Dashboard.HistogramBins,
		PageSize:  cfg.Dashboard.PageSize,
	}, cfg)

	// Preloading makes a bad source fatal at startup. Otherwise the first
	// requests share one load and a failure is retried on the next request.
	if cfg.Dataset.Preload {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Dataset.FetchTimeout)
		start := time.Now()
		session, err := server.Warm(ctx)
		cancel()
		if err != nil {
			slog.Error("failed to load dataset",
				"source", src.String(),
				"error", err,
				"message", core.FormatUserError(err),
			)
			os.Exit(1)
		}

		slog.Info("dataset loaded",
			"source", src.String(),
			"rows", len(session.Dataset()),
			"session", session.ID,
			"elapsed", time.Since(start),
		)
	} else {
		slog.Info("dataset will load on first request", "source", src.String())
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(); err != nil {
		slog.Info("server stopped", "error", err)
	}
}

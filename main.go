// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/danielhkuo/quiz-scores/cliparse"
	"github.com/danielhkuo/quiz-scores/db"
	"github.com/danielhkuo/quiz-scores/metrics"
	"github.com/danielhkuo/quiz-scores/router"
)

const (
	openTimeout     = 30 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("could not load .env", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.Debug)

	binding, err := db.Resolve(cfg.DatabaseURL, cfg.SQLitePath)
	if err != nil {
		slog.Error("database configuration rejected", "error", err)
		os.Exit(1)
	}

	m := metrics.New()

	ctx, cancel := context.WithTimeout(context.Background(), openTimeout)
	store, err := db.Open(ctx, binding, db.WithMetrics(m))
	if err != nil {
		cancel()
		slog.Error("database connection failed", "engine", binding.Engine, "dsn", binding.Redacted(), "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	err = store.EnsureSchema(ctx)
	cancel()
	if err != nil {
		store.Close()
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "engine", binding.Engine, "dsn", binding.Redacted())

	// Create server
	server := http.Server{
		Handler:           router.NewHandler(store, m),
		Addr:              cfg.Addr(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		// Wait for Ctrl-C signal
		<-sigCtx.Done()
		slog.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("graceful shutdown failed", "error", err)
			server.Close()
		}
	}()

	// Start server
	slog.Info("Listening", "addr", cfg.Addr(), "debug", cfg.Debug)
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed")
	}

	if err := store.Close(); err != nil {
		slog.Error("closing database", "error", err)
	}
}

func setupLogger(debug bool) {
	level := new(slog.LevelVar)
	if debug {
		level.Set(slog.LevelDebug)
	}

	w := os.Stderr
	slog.SetDefault(slog.New(tint.NewHandler(colorable.NewColorable(w), &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    !isatty.IsTerminal(w.Fd()),
	})))
}

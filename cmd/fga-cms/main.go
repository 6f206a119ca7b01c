// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

// Command fga-cms runs the Fountain Gate Academy site backend: the public
// content API and the admin portal API.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/fgacademy/fga-cms/internal/auth"
	"github.com/fgacademy/fga-cms/internal/cache"
	"github.com/fgacademy/fga-cms/internal/config"
	"github.com/fgacademy/fga-cms/internal/handler/api"
	"github.com/fgacademy/fga-cms/internal/logging"
	"github.com/fgacademy/fga-cms/internal/middleware"
	"github.com/fgacademy/fga-cms/internal/notify"
	"github.com/fgacademy/fga-cms/internal/scheduler"
	"github.com/fgacademy/fga-cms/internal/service"
	"github.com/fgacademy/fga-cms/internal/session"
	"github.com/fgacademy/fga-cms/internal/store"
	"github.com/fgacademy/fga-cms/internal/version"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	showHelp := flag.Bool("help", false, "print usage and exit")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "Usage: fga-cms [flags]\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FGA_DB_PATH           SQLite database path (default: ./data/fga.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FGA_SERVER_PORT       Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FGA_ENV               Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FGA_ADMIN_EMAIL       Admin login email (required in production)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FGA_ADMIN_PASSWORD    Admin login password (required in production)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FGA_SNAPSHOT_PATH     Content snapshot file (default: ./data/content-snapshot.json)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FGA_REDIS_URL         Redis URL for the content cache (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FGA_DO_SEED           Seed default content on startup (default: false)\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}
	if *showVersion {
		_, _ = fmt.Printf("fga-cms %s (commit: %s, built: %s)\n", appVersion, appGitCommit, appBuildTime)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	versionInfo := &version.Info{
		Version:   appVersion,
		GitCommit: appGitCommit,
		BuildTime: appBuildTime,
	}

	// Setup logger: text in development, JSON in production
	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	var baseHandler slog.Handler
	if cfg.IsDevelopment() {
		baseHandler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	} else {
		baseHandler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	}
	logger := slog.New(baseHandler)
	slog.SetDefault(logger)

	// Ensure data directory exists
	dbDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}(db)

	slog.Info("running database migrations")
	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database ready")

	// Upgrade logger to also write WARN and ERROR records into the audit log
	logger = slog.New(logging.NewAuditLogHandler(baseHandler, db))
	slog.SetDefault(logger)
	slog.Info("audit log integration enabled", "min_level", "warn")

	ctx := context.Background()
	queries := store.New(db)

	if cfg.DoSeed {
		if err := queries.Seed(ctx, logger); err != nil {
			return fmt.Errorf("seeding database: %w", err)
		}
	}

	// Admin credential gate
	gate, err := auth.NewGate(cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("initializing auth gate: %w", err)
	}

	// Session manager
	sessionManager := session.New(db, cfg.IsDevelopment())
	slog.Info("session manager initialized")

	// Content cache backend (Redis when configured, in-memory otherwise)
	cacheBackend, err := cache.New(cache.Config{
		RedisURL:        cfg.RedisURL,
		Prefix:          cfg.CachePrefix,
		DefaultTTL:      time.Duration(cfg.CacheTTL) * time.Second,
		MaxSize:         cfg.CacheMaxSize,
		CleanupInterval: time.Minute,
	})
	if err != nil {
		slog.Warn("redis unavailable, using in-memory cache", "error", err)
		cacheBackend, err = cache.New(cache.Config{
			DefaultTTL:      time.Duration(cfg.CacheTTL) * time.Second,
			MaxSize:         cfg.CacheMaxSize,
			CleanupInterval: time.Minute,
		})
		if err != nil {
			return fmt.Errorf("initializing cache: %w", err)
		}
	}
	defer func() {
		if err := cacheBackend.Close(); err != nil {
			slog.Error("error closing cache", "error", err)
		}
	}()
	if cfg.UseRedisCache() {
		slog.Info("cache initialized", "backend", "redis", "url", cfg.RedisURL)
	} else {
		slog.Info("cache initialized", "backend", "memory")
	}

	// Public content snapshot
	snapshot := cache.NewContentSnapshot(cfg.SnapshotPath, logger)

	// Audit service and notification plumbing
	auditService := service.NewAuditService(db)
	broker := notify.NewBroker(logger)
	broker.Start(ctx)
	defer broker.Stop()
	feed := notify.NewFeed(db)

	// Scheduler: snapshot refresh and audit pruning
	sched := scheduler.New(db, logger, snapshot, auditService, cfg.AuditRetentionDays)
	if err := sched.Start(); err != nil {
		return fmt.Errorf("starting scheduler: %w", err)
	}
	defer sched.Stop()

	// Build the snapshot once at startup so the fallback is warm
	if err := sched.RefreshSnapshotNow(ctx); err != nil {
		slog.Warn("initial snapshot refresh failed", "error", err)
	}

	loginProtection := middleware.NewLoginProtection(middleware.DefaultLoginProtectionConfig())

	apiHandler := api.NewHandler(api.Deps{
		DB:              db,
		Logger:          logger,
		Gate:            gate,
		Sessions:        sessionManager,
		Login:           loginProtection,
		Snapshot:        snapshot,
		Broker:          broker,
		Feed:            feed,
		Audit:           auditService,
		Cache:           cacheBackend,
		RefreshSnapshot: sched.RefreshSnapshotNow,
	})

	// Router
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Timeout(30 * time.Second))
		r.Use(middleware.NewGlobalRateLimiter(20, 40).Middleware())
		apiHandler.PublicRoutes(r)
	})

	// No timeout middleware here: the notification stream holds its
	// connection open until the client disconnects.
	r.Route("/admin/api", func(r chi.Router) {
		r.Use(sessionManager.LoadAndSave)
		apiHandler.AdminRoutes(r)
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprintf(w, `{"status":"ok","version":%q}`, versionInfo.Version)
	})

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

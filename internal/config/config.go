// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Development credential pair. Production deployments must override both
// FGA_ADMIN_EMAIL and FGA_ADMIN_PASSWORD.
const (
	DevAdminEmail    = "admin@fga.local"
	DevAdminPassword = "SecurePass123"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath       string `env:"FGA_DB_PATH" envDefault:"./data/fga.db"`
	ServerHost   string `env:"FGA_SERVER_HOST" envDefault:"localhost"`
	ServerPort   int    `env:"FGA_SERVER_PORT" envDefault:"8080"`
	Env          string `env:"FGA_ENV" envDefault:"development"`
	LogLevel     string `env:"FGA_LOG_LEVEL" envDefault:"info"`
	SnapshotPath string `env:"FGA_SNAPSHOT_PATH" envDefault:"./data/content-snapshot.json"`

	// Admin credential pair. The password is hashed once at startup; only
	// the hash is kept in memory.
	AdminEmail    string `env:"FGA_ADMIN_EMAIL"`
	AdminPassword string `env:"FGA_ADMIN_PASSWORD"`

	// Cache configuration
	RedisURL    string `env:"FGA_REDIS_URL"`                       // Optional Redis URL for the public content cache
	CachePrefix string `env:"FGA_CACHE_PREFIX" envDefault:"fga:"`  // Redis key prefix
	CacheTTL    int    `env:"FGA_CACHE_TTL" envDefault:"300"`      // Public content cache TTL in seconds
	CacheMaxSize int   `env:"FGA_CACHE_MAX_SIZE" envDefault:"1024"` // Max memory cache entries

	// Audit log retention in days; pruned by the scheduler.
	AuditRetentionDays int `env:"FGA_AUDIT_RETENTION_DAYS" envDefault:"90"`

	// Seeding configuration
	DoSeed bool `env:"FGA_DO_SEED" envDefault:"false"` // Enable database seeding
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseRedisCache returns true if Redis caching is configured.
func (c Config) UseRedisCache() bool {
	return c.RedisURL != ""
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.AdminEmail = strings.ToLower(strings.TrimSpace(cfg.AdminEmail))

	// Development falls back to the demo credential pair; production must
	// configure its own.
	if cfg.AdminEmail == "" && cfg.AdminPassword == "" {
		if !cfg.IsDevelopment() {
			return nil, fmt.Errorf("FGA_ADMIN_EMAIL and FGA_ADMIN_PASSWORD are required outside development")
		}
		cfg.AdminEmail = DevAdminEmail
		cfg.AdminPassword = DevAdminPassword
	}

	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil, fmt.Errorf("FGA_ADMIN_EMAIL and FGA_ADMIN_PASSWORD must both be set")
	}

	if !cfg.IsDevelopment() && cfg.AdminPassword == DevAdminPassword {
		return nil, fmt.Errorf("FGA_ADMIN_PASSWORD is the development default and must not be used in %s", cfg.Env)
	}

	return cfg, nil
}

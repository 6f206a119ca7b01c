// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, DevAdminEmail, cfg.AdminEmail)
	assert.Equal(t, DevAdminPassword, cfg.AdminPassword)
	assert.Equal(t, "localhost:8080", cfg.ServerAddr())
	assert.False(t, cfg.UseRedisCache())
}

func TestLoadProductionRequiresCredentials(t *testing.T) {
	t.Setenv("FGA_ENV", "production")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FGA_ADMIN_EMAIL")
}

func TestLoadProductionRejectsDefaultPassword(t *testing.T) {
	t.Setenv("FGA_ENV", "production")
	t.Setenv("FGA_ADMIN_EMAIL", "head@school.example")
	t.Setenv("FGA_ADMIN_PASSWORD", DevAdminPassword)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "development default")
}

func TestLoadNormalizesAdminEmail(t *testing.T) {
	t.Setenv("FGA_ADMIN_EMAIL", "  Head@School.Example ")
	t.Setenv("FGA_ADMIN_PASSWORD", "another-secret-1")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "head@school.example", cfg.AdminEmail)
}

func TestLoadRedis(t *testing.T) {
	t.Setenv("FGA_REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.UseRedisCache())
	assert.Equal(t, "fga:", cfg.CachePrefix)
}

// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

package logging

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fgacademy/fga-cms/internal/model"
	"github.com/fgacademy/fga-cms/internal/store"
	"github.com/fgacademy/fga-cms/internal/testutil"
)

func TestAuditLogHandler_TeesWarnAndAbove(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	inner := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := slog.New(NewAuditLogHandler(inner, db))

	logger.Info("routine startup")
	logger.Warn("snapshot write failed", "path", "/tmp/x.json")
	logger.Error("database unreachable")

	events, err := store.New(db).ListAuditEvents(context.Background(), 10, 0)
	require.NoError(t, err)
	require.Len(t, events, 2, "INFO must not reach the audit trail")

	levels := map[string]bool{}
	for _, e := range events {
		levels[e.Level] = true
	}
	assert.True(t, levels[model.AuditLevelWarning])
	assert.True(t, levels[model.AuditLevelError])
}

func TestAuditLogHandler_ExtractsAttributes(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	inner := slog.NewTextHandler(io.Discard, nil)
	logger := slog.New(NewAuditLogHandler(inner, db))

	logger.Warn("suspicious request",
		"category", model.AuditCategoryAuth,
		"actor", "admin@fga.local",
		"ip", "10.0.0.1")

	events, err := store.New(db).ListAuditEvents(context.Background(), 10, 0)
	require.NoError(t, err)
	require.Len(t, events, 1)

	e := events[0]
	assert.Equal(t, model.AuditCategoryAuth, e.Category)
	assert.Equal(t, "admin@fga.local", e.Actor)
	assert.Contains(t, e.Metadata, `"ip":"10.0.0.1"`)
	assert.NotContains(t, e.Metadata, "category", "extracted keys stay out of metadata")
}

func TestAuditLogHandler_InfersCategory(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	inner := slog.NewTextHandler(io.Discard, nil)
	logger := slog.New(NewAuditLogHandler(inner, db))

	logger.Warn("news post rejected")
	logger.Warn("login throttled")
	logger.Warn("disk nearly full")

	events, err := store.New(db).ListAuditEvents(context.Background(), 10, 0)
	require.NoError(t, err)
	require.Len(t, events, 3)

	byMessage := map[string]string{}
	for _, e := range events {
		byMessage[e.Message] = e.Category
	}
	assert.Equal(t, model.AuditCategoryContent, byMessage["news post rejected"])
	assert.Equal(t, model.AuditCategoryAuth, byMessage["login throttled"])
	assert.Equal(t, model.AuditCategorySystem, byMessage["disk nearly full"])
}

func TestAuditLogHandler_CustomLevel(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	inner := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := slog.New(NewAuditLogHandlerWithLevel(inner, db, slog.LevelInfo))

	logger.Info("seeded default content")

	events, err := store.New(db).ListAuditEvents(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

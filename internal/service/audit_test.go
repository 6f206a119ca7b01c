// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fgacademy/fga-cms/internal/model"
	"github.com/fgacademy/fga-cms/internal/testutil"
)

func TestAuditService_LogAndList(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()
	svc := NewAuditService(db)
	ctx := context.Background()

	require.NoError(t, svc.LogInfo(ctx, model.AuditCategoryAuth, "admin login", "admin@fga.local", nil))
	require.NoError(t, svc.LogWarning(ctx, model.AuditCategoryContent, "slug collision", "admin@fga.local",
		map[string]any{"slug": "sports-day"}))

	events, err := svc.List(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, model.AuditLevelWarning, events[0].Level)
	assert.Contains(t, events[0].Metadata, "sports-day")
	assert.Equal(t, "{}", events[1].Metadata)
}

func TestAuditService_Prune(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()
	svc := NewAuditService(db)
	ctx := context.Background()

	require.NoError(t, svc.LogInfo(ctx, model.AuditCategorySystem, "startup", "", nil))

	pruned, err := svc.Prune(ctx, 90)
	require.NoError(t, err)
	assert.Equal(t, int64(0), pruned, "fresh entries survive the retention window")
}

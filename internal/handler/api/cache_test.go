// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fgacademy/fga-cms/internal/model"
)

func TestPublicResponseCache(t *testing.T) {
	ts := newTestServer(t)
	cookie := ts.login(t)

	rec := ts.do(t, http.MethodGet, "/api/v1/programs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-Cache"))

	rec = ts.do(t, http.MethodGet, "/api/v1/programs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hit", rec.Header().Get("X-Cache"))

	// A content mutation drops the cached entry
	rec = ts.do(t, http.MethodPost, "/admin/api/programs", ProgramRequest{
		Name:        "Creche",
		Description: "Our youngest learners.",
		AgeRange:    "1-3 years",
	}, cookie)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/programs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-Cache"))

	var programs []model.AcademicProgram
	decodeData(t, rec, &programs)
	require.Len(t, programs, 1)
}

func TestCacheAdminEndpoints(t *testing.T) {
	ts := newTestServer(t)
	cookie := ts.login(t)

	rec := ts.do(t, http.MethodGet, "/admin/api/cache", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var stats CacheStatsResponse
	decodeData(t, rec, &stats)
	assert.True(t, stats.Enabled)
	require.NotNil(t, stats.Stats)

	// Warm an entry, then clear
	rec = ts.do(t, http.MethodGet, "/api/v1/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodPost, "/admin/api/cache/clear", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-Cache"))
}

// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/fgacademy/fga-cms/internal/cache"
	"github.com/fgacademy/fga-cms/internal/middleware"
	"github.com/fgacademy/fga-cms/internal/model"
)

// publicCacheTTL bounds staleness when an invalidation is missed.
const publicCacheTTL = 5 * time.Minute

// publicCachePrefix namespaces public response entries so invalidation can
// clear them without touching other cache users.
const publicCachePrefix = "public:"

// CacheResponses caches successful public GET responses. Entries are dropped
// whenever content mutates, so the TTL only matters as a backstop.
func (h *Handler) CacheResponses(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.cache == nil || r.Method != http.MethodGet {
			next.ServeHTTP(w, r)
			return
		}

		key := publicCachePrefix + r.URL.RequestURI()
		if body, err := h.cache.Get(r.Context(), key); err == nil {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Cache", "hit")
			_, _ = w.Write(body)
			return
		}

		rec := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		if rec.status == http.StatusOK {
			if err := h.cache.Set(r.Context(), key, rec.body.Bytes(), publicCacheTTL); err != nil {
				h.logger.Warn("failed to cache response", "path", r.URL.Path, "error", err)
			}
		}
	})
}

// responseRecorder tees the response body so a 200 can be cached after it
// has been written to the client.
type responseRecorder struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (r *responseRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	if r.status == http.StatusOK {
		r.body.Write(b)
	}
	return r.ResponseWriter.Write(b)
}

// invalidatePublicCache drops every cached public response. Called from the
// content mutation paths; a failure only delays freshness until the TTL.
func (h *Handler) invalidatePublicCache(ctx context.Context) {
	if h.cache == nil {
		return
	}
	if err := h.cache.DeleteByPrefix(ctx, publicCachePrefix); err != nil {
		h.logger.Warn("failed to invalidate response cache", "error", err)
	}
}

// CacheStatsResponse holds cache statistics for the admin portal.
type CacheStatsResponse struct {
	Enabled bool         `json:"enabled"`
	Stats   *cache.Stats `json:"stats,omitempty"`
}

// CacheStats handles GET /admin/api/cache.
func (h *Handler) CacheStats(w http.ResponseWriter, _ *http.Request) {
	resp := CacheStatsResponse{Enabled: h.cache != nil}
	if provider, ok := h.cache.(cache.StatsProvider); ok {
		stats := provider.Stats()
		resp.Stats = &stats
	}
	WriteSuccess(w, resp, nil)
}

// ClearCache handles POST /admin/api/cache/clear.
func (h *Handler) ClearCache(w http.ResponseWriter, r *http.Request) {
	if h.cache == nil {
		WriteSuccess(w, map[string]string{"status": "disabled"}, nil)
		return
	}
	if err := h.cache.Clear(r.Context()); err != nil {
		WriteInternalError(w, "Failed to clear cache")
		return
	}

	actor := ""
	if user := middleware.GetAdminUser(r); user != nil {
		actor = user.Email
	}
	if err := h.audit.LogInfo(r.Context(), model.AuditCategorySystem, "cache cleared", actor, nil); err != nil {
		h.logger.Warn("failed to write audit entry", "error", err)
	}

	WriteSuccess(w, map[string]string{"status": "cleared"}, nil)
}

// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fgacademy/fga-cms/internal/middleware"
	"github.com/fgacademy/fga-cms/internal/model"
	"github.com/fgacademy/fga-cms/internal/store"
)

// SiteContentRequest is the payload for upserting a site content field.
// Writes are keyed by Key: an existing key is updated in place.
type SiteContentRequest struct {
	Section string `json:"section" validate:"required,max=100"`
	Key     string `json:"key" validate:"required,max=200"`
	Value   string `json:"value"`
	Type    string `json:"type" validate:"required,oneof=text textarea html url json"`
}

// ListSiteContent handles GET /api/v1/content and GET /admin/api/content.
// An optional section query parameter narrows the result.
func (h *Handler) ListSiteContent(w http.ResponseWriter, r *http.Request) {
	var (
		content []model.SiteContent
		err     error
	)
	if section := r.URL.Query().Get("section"); section != "" {
		content, err = h.queries.ListSiteContentBySection(r.Context(), section)
	} else {
		content, err = h.queries.ListSiteContent(r.Context())
	}
	if err != nil {
		WriteInternalError(w, "Failed to list site content")
		return
	}
	WriteSuccess(w, content, nil)
}

// UpsertSiteContent handles PUT /admin/api/content. HTML-typed values are
// sanitized before storage.
func (h *Handler) UpsertSiteContent(w http.ResponseWriter, r *http.Request) {
	var req SiteContentRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if !h.validateRequest(w, &req) {
		return
	}

	if req.Type == model.ContentTypeHTML {
		req.Value = htmlSanitizer.Sanitize(req.Value)
	}

	content, err := h.queries.UpsertSiteContent(r.Context(), store.UpsertSiteContentParams{
		Section: req.Section,
		Key:     req.Key,
		Value:   req.Value,
		Type:    req.Type,
	})
	if err != nil {
		WriteInternalError(w, "Failed to save site content")
		return
	}

	h.invalidatePublicCache(r.Context())

	actor := ""
	if user := middleware.GetAdminUser(r); user != nil {
		actor = user.Email
	}
	if err := h.audit.LogInfo(r.Context(), model.AuditCategoryContent, "site content updated", actor, map[string]any{
		"key":     req.Key,
		"section": req.Section,
	}); err != nil {
		h.logger.Warn("failed to write audit entry", "error", err)
	}

	WriteSuccess(w, content, nil)
}

// DeleteSiteContent handles DELETE /admin/api/content/{key}. Deletion
// requires confirm=true.
func (h *Handler) DeleteSiteContent(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if key == "" {
		WriteBadRequest(w, "Missing content key", nil)
		return
	}
	if r.URL.Query().Get("confirm") != "true" {
		WriteBadRequest(w, "Deletion must be confirmed with confirm=true", nil)
		return
	}

	if err := h.queries.DeleteSiteContent(r.Context(), key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "Content key not found")
			return
		}
		WriteInternalError(w, "Failed to delete site content")
		return
	}

	h.invalidatePublicCache(r.Context())
	WriteSuccess(w, map[string]string{"status": "deleted", "key": key}, nil)
}

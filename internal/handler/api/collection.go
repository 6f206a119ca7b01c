// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fgacademy/fga-cms/internal/middleware"
	"github.com/fgacademy/fga-cms/internal/model"
	"github.com/fgacademy/fga-cms/internal/service"
)

// contentChange returns a manager change hook that writes an audit entry
// for every mutation of the named collection and drops any cached public
// responses. The actor comes from the admin identity on the request context.
func (h *Handler) contentChange(collection string) func(ctx context.Context, action, id string) {
	return func(ctx context.Context, action, id string) {
		h.invalidatePublicCache(ctx)

		actor := ""
		if user := middleware.AdminUserFromContext(ctx); user != nil {
			actor = user.Email
		}
		err := h.audit.LogInfo(ctx, model.AuditCategoryContent, collection+" "+action, actor, map[string]any{
			"collection": collection,
			"record_id":  id,
		})
		if err != nil {
			h.logger.Warn("failed to write audit entry",
				"collection", collection,
				"action", action,
				"error", err,
			)
		}
	}
}

// deleteRecord runs a confirmed removal through the given manager Remove
// function and maps the outcome to an HTTP response. Unconfirmed deletes
// never reach the store.
func deleteRecord(w http.ResponseWriter, r *http.Request, entityName string,
	remove func(ctx context.Context, id string, confirmed bool) error) {

	id := chi.URLParam(r, "id")
	confirmed := r.URL.Query().Get("confirm") == "true"

	err := remove(r.Context(), id, confirmed)
	switch {
	case errors.Is(err, service.ErrNotConfirmed):
		WriteBadRequest(w, "Deletion must be confirmed with confirm=true", nil)
	case errors.Is(err, service.ErrMissingID):
		WriteBadRequest(w, "Missing "+entityName+" ID", nil)
	case errors.Is(err, sql.ErrNoRows):
		WriteNotFound(w, capitalizeFirst(entityName)+" not found")
	case err != nil:
		WriteInternalError(w, "Failed to delete "+entityName)
	default:
		WriteSuccess(w, map[string]string{"status": "deleted", "id": id}, nil)
	}
}

// writeSaveError maps a failed save to an HTTP response.
func writeSaveError(w http.ResponseWriter, entityName string, err error) {
	if errors.Is(err, sql.ErrNoRows) {
		WriteNotFound(w, capitalizeFirst(entityName)+" not found")
		return
	}
	WriteInternalError(w, "Failed to save "+entityName)
}

// capitalizeFirst returns s with the first letter capitalized.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-('a'-'A')) + s[1:]
	}
	return s
}

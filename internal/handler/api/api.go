// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

// Package api provides the JSON handlers for the public site API and the
// admin portal API.
package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"

	"github.com/fgacademy/fga-cms/internal/auth"
	"github.com/fgacademy/fga-cms/internal/cache"
	"github.com/fgacademy/fga-cms/internal/middleware"
	"github.com/fgacademy/fga-cms/internal/notify"
	"github.com/fgacademy/fga-cms/internal/service"
	"github.com/fgacademy/fga-cms/internal/store"
)

// htmlSanitizer strips dangerous markup from html-typed site content and
// rendered news bodies. UGCPolicy allows safe formatting tags while removing
// scripts and event handlers.
var htmlSanitizer = bluemonday.UGCPolicy()

// Handler holds shared dependencies for all API handlers.
type Handler struct {
	db       *sql.DB
	queries  *store.Queries
	logger   *slog.Logger
	gate     *auth.Gate
	sessions *scs.SessionManager
	login    *middleware.LoginProtection
	snapshot *cache.ContentSnapshot
	broker   *notify.Broker
	feed     *notify.Feed
	audit    *service.AuditService
	cache    cache.Cache
	validate *validator.Validate

	// refreshSnapshot rebuilds the public content snapshot after a news or
	// event mutation. May be nil in tests.
	refreshSnapshot func(ctx context.Context) error
}

// Deps bundles the dependencies required by NewHandler.
type Deps struct {
	DB       *sql.DB
	Logger   *slog.Logger
	Gate     *auth.Gate
	Sessions *scs.SessionManager
	Login    *middleware.LoginProtection
	Snapshot *cache.ContentSnapshot
	Broker   *notify.Broker
	Feed     *notify.Feed
	Audit    *service.AuditService

	// Cache backs the public response cache. Optional; public responses are
	// served uncached when nil.
	Cache cache.Cache

	// RefreshSnapshot rebuilds the public content snapshot from the store.
	RefreshSnapshot func(ctx context.Context) error
}

// NewHandler creates a new API handler.
func NewHandler(d Deps) *Handler {
	return &Handler{
		db:       d.DB,
		queries:  store.New(d.DB),
		logger:   d.Logger,
		gate:     d.Gate,
		sessions: d.Sessions,
		login:    d.Login,
		snapshot: d.Snapshot,
		broker:   d.Broker,
		feed:     d.Feed,
		audit:    d.Audit,
		cache:    d.Cache,
		validate: validator.New(validator.WithRequiredStructEnabled()),

		refreshSnapshot: d.RefreshSnapshot,
	}
}

// Response is the standard API response wrapper.
type Response struct {
	Data any   `json:"data,omitempty"`
	Meta *Meta `json:"meta,omitempty"`
}

// Meta contains pagination and other metadata.
type Meta struct {
	Total   int64 `json:"total,omitempty"`
	Page    int   `json:"page,omitempty"`
	PerPage int   `json:"per_page,omitempty"`
	Pages   int   `json:"pages,omitempty"`
}

// ErrorResponse is the standard API error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteSuccess writes a successful JSON response.
func WriteSuccess(w http.ResponseWriter, data any, meta *Meta) {
	WriteJSON(w, http.StatusOK, Response{Data: data, Meta: meta})
}

// WriteCreated writes a 201 Created JSON response.
func WriteCreated(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusCreated, Response{Data: data})
}

// WriteError writes an error JSON response.
func WriteError(w http.ResponseWriter, statusCode int, code, message string, details map[string]string) {
	WriteJSON(w, statusCode, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// WriteBadRequest writes a 400 Bad Request response.
func WriteBadRequest(w http.ResponseWriter, message string, details map[string]string) {
	WriteError(w, http.StatusBadRequest, "bad_request", message, details)
}

// WriteNotFound writes a 404 Not Found response.
func WriteNotFound(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusNotFound, "not_found", message, nil)
}

// WriteUnauthorized writes a 401 Unauthorized response.
func WriteUnauthorized(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusUnauthorized, "unauthorized", message, nil)
}

// WriteInternalError writes a 500 Internal Server Error response.
func WriteInternalError(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusInternalServerError, "internal_error", message, nil)
}

// WriteValidationError writes a 422 Unprocessable Entity response with field errors.
func WriteValidationError(w http.ResponseWriter, fieldErrors map[string]string) {
	WriteError(w, http.StatusUnprocessableEntity, "validation_error", "Validation failed", fieldErrors)
}

// StatusResponse contains API status information.
type StatusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// Status returns the API status.
func (h *Handler) Status(w http.ResponseWriter, _ *http.Request) {
	WriteSuccess(w, StatusResponse{
		Status:  "ok",
		Version: "v1",
	}, nil)
}

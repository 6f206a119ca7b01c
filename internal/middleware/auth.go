// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

// Package middleware provides HTTP middleware for authentication,
// rate limiting and request hardening.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/alexedwards/scs/v2"

	"github.com/fgacademy/fga-cms/internal/model"
	"github.com/fgacademy/fga-cms/internal/session"
)

// ContextKey is the type for request context keys set by this package.
type ContextKey string

// ContextKeyAdminUser is the context key holding the authenticated admin.
const ContextKeyAdminUser ContextKey = "admin_user"

// APIError represents a JSON error response.
type APIError struct {
	Error struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details,omitempty"`
	} `json:"error"`
}

// WriteAPIError writes a JSON error response.
func WriteAPIError(w http.ResponseWriter, statusCode int, code, message string, details map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	apiErr := APIError{}
	apiErr.Error.Code = code
	apiErr.Error.Message = message
	apiErr.Error.Details = details

	_ = json.NewEncoder(w).Encode(apiErr)
}

// RequireAdmin creates middleware that gates a route on an authenticated
// admin session. Unauthenticated requests get a 401 JSON error.
func RequireAdmin(sm *scs.SessionManager, adminEmail string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := session.GetIdentity(r.Context(), sm, adminEmail)
			if !ok {
				WriteAPIError(w, http.StatusUnauthorized, "unauthorized", "Authentication required", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyAdminUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAdminUser retrieves the authenticated admin from the request context.
// Returns nil if the request is unauthenticated.
func GetAdminUser(r *http.Request) *model.AdminUser {
	return AdminUserFromContext(r.Context())
}

// AdminUserFromContext retrieves the authenticated admin from a context.
// Returns nil if no admin identity is present.
func AdminUserFromContext(ctx context.Context) *model.AdminUser {
	user, ok := ctx.Value(ContextKeyAdminUser).(model.AdminUser)
	if !ok {
		return nil
	}
	return &user
}

// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/fgacademy/fga-cms/internal/middleware"
	"github.com/fgacademy/fga-cms/internal/model"
	"github.com/fgacademy/fga-cms/internal/session"
)

// LoginRequest is the request body for admin login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is the successful login payload.
type LoginResponse struct {
	User model.AdminUser `json:"user"`
}

// Login handles POST /admin/api/auth/login. Invalid email and invalid
// password produce the same response.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if !h.validateRequest(w, &req) {
		return
	}

	if locked, remaining := h.login.IsLocked(req.Email); locked {
		WriteError(w, http.StatusTooManyRequests, "account_locked",
			fmt.Sprintf("Too many failed attempts. Try again in %s.", remaining.Round(time.Second)), nil)
		return
	}

	user, ok := h.gate.Login(req.Email, req.Password)
	if !ok {
		locked, _ := h.login.RecordFailedAttempt(req.Email)
		if err := h.audit.LogWarning(r.Context(), model.AuditCategoryAuth, "failed login attempt", "", map[string]any{
			"email":  req.Email,
			"ip":     middleware.ClientIP(r),
			"locked": locked,
		}); err != nil {
			h.logger.Warn("failed to write audit entry", "error", err)
		}
		WriteUnauthorized(w, "Invalid email or password")
		return
	}

	h.login.RecordSuccessfulLogin(req.Email)

	if err := session.PutIdentity(r.Context(), h.sessions, *user); err != nil {
		h.logger.Error("failed to write session", "error", err)
		WriteInternalError(w, "Failed to establish session")
		return
	}

	if err := h.audit.LogInfo(r.Context(), model.AuditCategoryAuth, "admin logged in", user.Email, map[string]any{
		"ip": middleware.ClientIP(r),
	}); err != nil {
		h.logger.Warn("failed to write audit entry", "error", err)
	}

	WriteSuccess(w, LoginResponse{User: *user}, nil)
}

// Logout handles POST /admin/api/auth/logout. The session token is
// destroyed server-side.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	actor := ""
	if user := middleware.GetAdminUser(r); user != nil {
		actor = user.Email
	}

	if err := session.ClearIdentity(r.Context(), h.sessions); err != nil {
		h.logger.Error("failed to destroy session", "error", err)
		WriteInternalError(w, "Failed to log out")
		return
	}

	if actor != "" {
		if err := h.audit.LogInfo(r.Context(), model.AuditCategoryAuth, "admin logged out", actor, nil); err != nil {
			h.logger.Warn("failed to write audit entry", "error", err)
		}
	}

	WriteSuccess(w, map[string]string{"status": "logged_out"}, nil)
}

// Me handles GET /admin/api/auth/me, returning the session identity.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetAdminUser(r)
	if user == nil {
		WriteUnauthorized(w, "Authentication required")
		return
	}
	WriteSuccess(w, LoginResponse{User: *user}, nil)
}

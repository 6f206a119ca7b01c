// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fgacademy/fga-cms/internal/middleware"
	"github.com/fgacademy/fga-cms/internal/model"
	"github.com/fgacademy/fga-cms/internal/session"
	"github.com/fgacademy/fga-cms/internal/testutil"
)

const adminEmail = "admin@fga.local"

func TestRequireAdmin_Unauthenticated(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()
	sm := session.New(db, true)

	var called bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	handler := sm.LoadAndSave(middleware.RequireAdmin(sm, adminEmail)(next))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/api/staff", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called, "protected handler must not run without a session")
	assert.Contains(t, rec.Body.String(), "unauthorized")
}

func TestRequireAdmin_Authenticated(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()
	sm := session.New(db, true)

	user := model.AdminUser{Email: adminEmail, Name: "Administrator"}

	// First request logs in and sets the session cookie.
	login := sm.LoadAndSave(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, session.PutIdentity(r.Context(), sm, user))
	}))
	loginRec := httptest.NewRecorder()
	login.ServeHTTP(loginRec, httptest.NewRequest(http.MethodPost, "/admin/api/auth/login", nil))

	cookies := loginRec.Result().Cookies()
	require.NotEmpty(t, cookies, "login must set a session cookie")

	var got *model.AdminUser
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = middleware.GetAdminUser(r)
	})
	handler := sm.LoadAndSave(middleware.RequireAdmin(sm, adminEmail)(next))

	req := httptest.NewRequest(http.MethodGet, "/admin/api/staff", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, user, *got)
}

func TestSecurityHeaders(t *testing.T) {
	cfg := middleware.DefaultSecurityHeadersConfig(false)
	handler := middleware.SecurityHeaders(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Contains(t, rec.Header().Get("Strict-Transport-Security"), "max-age=31536000")
	assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "default-src 'none'")
}

func TestSecurityHeaders_DevSkipsHSTS(t *testing.T) {
	cfg := middleware.DefaultSecurityHeadersConfig(true)
	handler := middleware.SecurityHeaders(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Empty(t, rec.Header().Get("Strict-Transport-Security"))
}

func TestLoginProtection_Lockout(t *testing.T) {
	lp := middleware.NewLoginProtection(middleware.LoginProtectionConfig{
		MaxFailedAttempts: 3,
		LockoutDuration:   time.Minute,
		AttemptWindow:     time.Minute,
	})

	locked, _ := lp.RecordFailedAttempt(adminEmail)
	assert.False(t, locked)
	locked, _ = lp.RecordFailedAttempt(adminEmail)
	assert.False(t, locked)

	locked, dur := lp.RecordFailedAttempt(adminEmail)
	assert.True(t, locked, "third failure should lock")
	assert.Equal(t, time.Minute, dur)

	locked, remaining := lp.IsLocked(adminEmail)
	assert.True(t, locked)
	assert.Greater(t, remaining, time.Duration(0))
}

func TestLoginProtection_SuccessClearsTracking(t *testing.T) {
	lp := middleware.NewLoginProtection(middleware.DefaultLoginProtectionConfig())

	lp.RecordFailedAttempt(adminEmail)
	lp.RecordFailedAttempt(adminEmail)
	lp.RecordSuccessfulLogin(adminEmail)

	locked, _ := lp.IsLocked(adminEmail)
	assert.False(t, locked)
}

func TestTimeout(t *testing.T) {
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	})
	handler := middleware.Timeout(20 * time.Millisecond)(slow)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestTimeout_FastHandlerPassesThrough(t *testing.T) {
	handler := middleware.Timeout(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

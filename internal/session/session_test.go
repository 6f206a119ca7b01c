// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

package session

import (
	"context"
	"database/sql"
	"net/http"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/fgacademy/fga-cms/internal/model"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// Sessions table required by sqlite3store
	_, err = db.Exec(`
		CREATE TABLE sessions (
			token TEXT PRIMARY KEY,
			data BLOB NOT NULL,
			expiry REAL NOT NULL
		);
		CREATE INDEX sessions_expiry_idx ON sessions(expiry);
	`)
	if err != nil {
		t.Fatalf("failed to create sessions table: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })
	return db
}

func sessionContext(t *testing.T, sm *scs.SessionManager) context.Context {
	t.Helper()
	ctx, err := sm.Load(context.Background(), "")
	if err != nil {
		t.Fatalf("loading session: %v", err)
	}
	return ctx
}

func TestNew_DevMode(t *testing.T) {
	db := setupTestDB(t)

	sm := New(db, true)

	if sm.Cookie.Secure {
		t.Error("expected Cookie.Secure = false in dev mode")
	}
	if sm.Cookie.Name == "__Host-session" {
		t.Error("expected default cookie name in dev mode")
	}
}

func TestNew_ProductionMode(t *testing.T) {
	db := setupTestDB(t)

	sm := New(db, false)

	if !sm.Cookie.Secure {
		t.Error("expected Cookie.Secure = true in production mode")
	}
	if sm.Cookie.Name != "__Host-session" {
		t.Errorf("expected __Host-session cookie name, got %q", sm.Cookie.Name)
	}
	if sm.Cookie.Path != "/" {
		t.Errorf("expected Cookie.Path = '/', got %q", sm.Cookie.Path)
	}
}

func TestNew_SessionSettings(t *testing.T) {
	db := setupTestDB(t)

	sm := New(db, true)

	if sm.Lifetime != 24*time.Hour {
		t.Errorf("Lifetime = %v, want 24h", sm.Lifetime)
	}
	if !sm.Cookie.HttpOnly {
		t.Error("expected Cookie.HttpOnly = true")
	}
	if sm.Cookie.SameSite != http.SameSiteLaxMode {
		t.Errorf("expected SameSite = Lax, got %v", sm.Cookie.SameSite)
	}
	if sm.Store == nil {
		t.Error("expected Store to be initialized")
	}
}

func TestIdentityRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	sm := New(db, true)
	ctx := sessionContext(t, sm)

	user := model.AdminUser{Email: "jane.doe@fga.local", Name: "Jane Doe"}
	if err := PutIdentity(ctx, sm, user); err != nil {
		t.Fatalf("PutIdentity: %v", err)
	}

	got, ok := GetIdentity(ctx, sm, "admin@fga.local")
	if !ok {
		t.Fatal("expected identity to be present")
	}
	if got != user {
		t.Errorf("GetIdentity = %+v, want %+v", got, user)
	}
}

func TestIdentityLegacyMarker(t *testing.T) {
	db := setupTestDB(t)
	sm := New(db, true)
	ctx := sessionContext(t, sm)

	// Older deployments stored a bare flag instead of a JSON identity.
	sm.Put(ctx, identityKey, legacyMarker)

	got, ok := GetIdentity(ctx, sm, "jane.doe@fga.local")
	if !ok {
		t.Fatal("expected legacy marker to read as logged in")
	}
	if got.Email != "jane.doe@fga.local" {
		t.Errorf("Email = %q, want legacy identity from configured email", got.Email)
	}
	if got.Name != "Jane Doe" {
		t.Errorf("Name = %q, want %q", got.Name, "Jane Doe")
	}
}

func TestIdentityMalformedReadsAsLoggedOut(t *testing.T) {
	db := setupTestDB(t)
	sm := New(db, true)

	cases := []struct {
		name string
		raw  string
	}{
		{"not json", "{{{"},
		{"wrong shape", `["a","b"]`},
		{"missing email", `{"name":"Jane Doe"}`},
		{"missing name", `{"email":"jane@fga.local"}`},
		{"empty object", `{}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := sessionContext(t, sm)
			sm.Put(ctx, identityKey, tc.raw)

			if _, ok := GetIdentity(ctx, sm, "admin@fga.local"); ok {
				t.Errorf("raw %q should read as logged out", tc.raw)
			}
		})
	}
}

func TestIdentityAbsent(t *testing.T) {
	db := setupTestDB(t)
	sm := New(db, true)
	ctx := sessionContext(t, sm)

	if _, ok := GetIdentity(ctx, sm, "admin@fga.local"); ok {
		t.Error("fresh session should read as logged out")
	}
}

func TestClearIdentity(t *testing.T) {
	db := setupTestDB(t)
	sm := New(db, true)
	ctx := sessionContext(t, sm)

	user := model.AdminUser{Email: "admin@fga.local", Name: "Administrator"}
	if err := PutIdentity(ctx, sm, user); err != nil {
		t.Fatalf("PutIdentity: %v", err)
	}
	if err := ClearIdentity(ctx, sm); err != nil {
		t.Fatalf("ClearIdentity: %v", err)
	}

	if _, ok := GetIdentity(ctx, sm, "admin@fga.local"); ok {
		t.Error("expected identity to be gone after ClearIdentity")
	}
}

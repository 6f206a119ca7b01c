// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fgacademy/fga-cms/internal/auth"
	"github.com/fgacademy/fga-cms/internal/cache"
	"github.com/fgacademy/fga-cms/internal/middleware"
	"github.com/fgacademy/fga-cms/internal/notify"
	"github.com/fgacademy/fga-cms/internal/service"
	"github.com/fgacademy/fga-cms/internal/session"
	"github.com/fgacademy/fga-cms/internal/testutil"
)

const (
	testAdminEmail    = "admin@fga.local"
	testAdminPassword = "SecurePass123"
)

// testServer bundles a fully wired handler with its router for tests.
type testServer struct {
	db      *sql.DB
	handler *Handler
	router  chi.Router
}

// newTestServer builds a handler over a migrated temp database and mounts
// both route trees the way main does.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db, cleanup := testutil.TestDB(t)
	t.Cleanup(cleanup)

	logger := testutil.TestLoggerSilent()

	gate, err := auth.NewGate(testAdminEmail, testAdminPassword)
	if err != nil {
		t.Fatalf("NewGate() error = %v", err)
	}

	sessions := session.New(db, true)
	broker := notify.NewBroker(logger)

	snapshot := cache.NewContentSnapshot(filepath.Join(t.TempDir(), "snapshot.json"), logger)

	responseCache := cache.NewMemoryCache(cache.MemoryCacheOptions{DefaultTTL: time.Minute})
	t.Cleanup(func() { _ = responseCache.Close() })

	h := NewHandler(Deps{
		DB:       db,
		Logger:   logger,
		Gate:     gate,
		Sessions: sessions,
		Login:    middleware.NewLoginProtection(middleware.DefaultLoginProtectionConfig()),
		Snapshot: snapshot,
		Broker:   broker,
		Feed:     notify.NewFeed(db),
		Audit:    service.NewAuditService(db),
		Cache:    responseCache,
	})

	r := chi.NewRouter()
	r.Route("/api/v1", h.PublicRoutes)
	r.Route("/admin/api", func(r chi.Router) {
		r.Use(sessions.LoadAndSave)
		h.AdminRoutes(r)
	})

	return &testServer{db: db, handler: h, router: r}
}

// do executes a request against the test router.
func (ts *testServer) do(t *testing.T, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

// login authenticates as the test admin and returns the session cookie.
func (ts *testServer) login(t *testing.T) *http.Cookie {
	t.Helper()

	rec := ts.do(t, http.MethodPost, "/admin/api/auth/login", LoginRequest{
		Email:    testAdminEmail,
		Password: testAdminPassword,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, body = %s", rec.Code, rec.Body.String())
	}

	for _, c := range rec.Result().Cookies() {
		if c.Name == "session" {
			return c
		}
	}
	t.Fatal("login response did not set a session cookie")
	return nil
}

// decodeData unmarshals the data field of a success envelope into out.
func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()

	var envelope struct {
		Data json.RawMessage `json:"data"`
		Meta *Meta           `json:"meta"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal envelope: %v (body: %s)", err, rec.Body.String())
	}
	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			t.Fatalf("unmarshal data: %v (data: %s)", err, envelope.Data)
		}
	}
}

// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fgacademy/fga-cms/internal/model"
	"github.com/fgacademy/fga-cms/internal/store"
	"github.com/fgacademy/fga-cms/internal/testutil"
)

func TestStatus(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/v1/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var status StatusResponse
	decodeData(t, rec, &status)
	assert.Equal(t, "ok", status.Status)
	assert.Equal(t, "v1", status.Version)
}

func TestAdminRoutesRequireSession(t *testing.T) {
	ts := newTestServer(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/admin/api/news"},
		{http.MethodPost, "/admin/api/programs"},
		{http.MethodGet, "/admin/api/inquiries/contact"},
		{http.MethodGet, "/admin/api/audit"},
	}
	for _, p := range paths {
		rec := ts.do(t, p.method, p.path, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", p.method, p.path)
	}
}

func TestLoginLogout(t *testing.T) {
	ts := newTestServer(t)

	// Wrong password and unknown email produce the same response
	rec := ts.do(t, http.MethodPost, "/admin/api/auth/login", LoginRequest{
		Email: testAdminEmail, Password: "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	wrongPass := rec.Body.String()

	rec = ts.do(t, http.MethodPost, "/admin/api/auth/login", LoginRequest{
		Email: "nobody@fga.local", Password: testAdminPassword,
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, wrongPass, rec.Body.String())

	cookie := ts.login(t)

	rec = ts.do(t, http.MethodGet, "/admin/api/auth/me", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var me LoginResponse
	decodeData(t, rec, &me)
	assert.Equal(t, testAdminEmail, me.User.Email)
	assert.Equal(t, "Admin", me.User.Name)

	rec = ts.do(t, http.MethodPost, "/admin/api/auth/logout", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodGet, "/admin/api/auth/me", nil, cookie)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProgramCRUD(t *testing.T) {
	ts := newTestServer(t)
	cookie := ts.login(t)

	rec := ts.do(t, http.MethodPost, "/admin/api/programs", ProgramRequest{
		Name:        "Primary School",
		Description: "Grades 1 through 6",
		AgeRange:    "6-11 years",
		Icon:        "book",
		Features:    []string{"Literacy", "Numeracy"},
	}, cookie)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created model.AcademicProgram
	decodeData(t, rec, &created)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, int64(0), created.OrderIndex)

	// Second create appends to the display order
	rec = ts.do(t, http.MethodPost, "/admin/api/programs", ProgramRequest{
		Name:        "Junior High School",
		Description: "Grades 7 through 9",
		AgeRange:    "12-14 years",
	}, cookie)
	require.Equal(t, http.StatusCreated, rec.Code)
	var second model.AcademicProgram
	decodeData(t, rec, &second)
	assert.Equal(t, int64(1), second.OrderIndex)

	// Update in place keeps the id
	rec = ts.do(t, http.MethodPut, "/admin/api/programs/"+created.ID, ProgramRequest{
		Name:        "Primary School",
		Description: "Grades 1 through 6, revised curriculum",
		AgeRange:    "6-11 years",
		OrderIndex:  created.OrderIndex,
	}, cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// Public list sees both
	rec = ts.do(t, http.MethodGet, "/api/v1/programs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var programs []model.AcademicProgram
	decodeData(t, rec, &programs)
	require.Len(t, programs, 2)
	assert.Equal(t, "Grades 1 through 6, revised curriculum", programs[0].Description)

	// Delete requires confirmation before any store call
	rec = ts.do(t, http.MethodDelete, "/admin/api/programs/"+created.ID, nil, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(t, http.MethodDelete, "/admin/api/programs/"+created.ID+"?confirm=true", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/programs", nil)
	decodeData(t, rec, &programs)
	assert.Len(t, programs, 1)
}

func TestValidationErrors(t *testing.T) {
	ts := newTestServer(t)
	cookie := ts.login(t)

	rec := ts.do(t, http.MethodPost, "/admin/api/staff", StaffRequest{
		Name: "Kwame Mensah",
		// position missing
	}, cookie)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, "validation_error", errResp.Error.Code)
	assert.Contains(t, errResp.Error.Details, "position")
}

func TestSiteContentUpsertSanitizesHTML(t *testing.T) {
	ts := newTestServer(t)
	cookie := ts.login(t)

	rec := ts.do(t, http.MethodPut, "/admin/api/content", SiteContentRequest{
		Section: "about",
		Key:     "history_intro",
		Value:   `<p>Founded in 1998.</p><script>alert("x")</script>`,
		Type:    model.ContentTypeHTML,
	}, cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var content model.SiteContent
	decodeData(t, rec, &content)
	assert.Contains(t, content.Value, "<p>Founded in 1998.</p>")
	assert.NotContains(t, content.Value, "<script>")

	// Upsert on the same key updates in place
	rec = ts.do(t, http.MethodPut, "/admin/api/content", SiteContentRequest{
		Section: "about",
		Key:     "history_intro",
		Value:   "Founded in 1998.",
		Type:    model.ContentTypeText,
	}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated model.SiteContent
	decodeData(t, rec, &updated)
	assert.Equal(t, content.ID, updated.ID)
}

func TestSeededPublicContent(t *testing.T) {
	ts := newTestServer(t)

	ctx := context.Background()
	require.NoError(t, store.New(ts.db).Seed(ctx, testutil.TestLoggerSilent()))

	rec := ts.do(t, http.MethodGet, "/api/v1/content?section=contact_info", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var content []model.SiteContent
	decodeData(t, rec, &content)
	assert.NotEmpty(t, content)

	rec = ts.do(t, http.MethodGet, "/api/v1/news", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var posts []model.NewsPost
	decodeData(t, rec, &posts)
	require.Len(t, posts, 2)
	// Newest first
	assert.True(t, posts[0].PublishedDate > posts[1].PublishedDate)
}

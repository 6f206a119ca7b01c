// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fgacademy/fga-cms/internal/model"
)

func TestNewsSlugGeneration(t *testing.T) {
	ts := newTestServer(t)
	cookie := ts.login(t)

	rec := ts.do(t, http.MethodPost, "/admin/api/news", NewsRequest{
		Title:         "Sports Day 2026: Ágility & Teamwork!",
		Excerpt:       "Highlights from this year's sports day.",
		Content:       "A **great** day for everyone.",
		PublishedDate: "2026-03-14",
	}, cookie)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var post model.NewsPost
	decodeData(t, rec, &post)
	assert.Equal(t, "sports-day-2026-agility-teamwork", post.Slug)

	// Same title again collides on the derived slug
	rec = ts.do(t, http.MethodPost, "/admin/api/news", NewsRequest{
		Title:         "Sports Day 2026: Ágility & Teamwork!",
		Excerpt:       "Duplicate.",
		Content:       "Duplicate.",
		PublishedDate: "2026-03-15",
	}, cookie)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Contains(t, errResp.Error.Details, "slug")

	// Updating the original under its own slug is not a collision
	rec = ts.do(t, http.MethodPut, "/admin/api/news/"+post.ID, NewsRequest{
		Title:         "Sports Day 2026: Ágility & Teamwork!",
		Slug:          post.Slug,
		Excerpt:       "Updated highlights.",
		Content:       "A **great** day for everyone.",
		PublishedDate: "2026-03-14",
	}, cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestNewsRejectsInvalidSlug(t *testing.T) {
	ts := newTestServer(t)
	cookie := ts.login(t)

	rec := ts.do(t, http.MethodPost, "/admin/api/news", NewsRequest{
		Title:         "Open House",
		Slug:          "Open House!",
		Excerpt:       "Visit us.",
		Content:       "Doors open at nine.",
		PublishedDate: "2026-01-10",
	}, cookie)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGetNewsRendersMarkdown(t *testing.T) {
	ts := newTestServer(t)
	cookie := ts.login(t)

	rec := ts.do(t, http.MethodPost, "/admin/api/news", NewsRequest{
		Title:         "New Science Lab",
		Excerpt:       "Our lab opens next term.",
		Content:       "The lab has **twelve** workstations.\n\n<script>alert(1)</script>",
		PublishedDate: "2026-02-01",
	}, cookie)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/news/new-science-lab", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var detail NewsResponse
	decodeData(t, rec, &detail)
	assert.Contains(t, detail.ContentHTML, "<strong>twelve</strong>")
	assert.NotContains(t, detail.ContentHTML, "<script>")

	rec = ts.do(t, http.MethodGet, "/api/v1/news/no-such-post", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewsPagination(t *testing.T) {
	ts := newTestServer(t)
	cookie := ts.login(t)

	titles := []string{"First Post", "Second Post", "Third Post"}
	for i, title := range titles {
		rec := ts.do(t, http.MethodPost, "/admin/api/news", NewsRequest{
			Title:         title,
			Excerpt:       "e",
			Content:       "c",
			PublishedDate: "2026-01-0" + string(rune('1'+i)),
		}, cookie)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := ts.do(t, http.MethodGet, "/api/v1/news?page=2&per_page=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 2, resp.Meta.Page)
	assert.Equal(t, int64(3), resp.Meta.Total)
	assert.Equal(t, 2, resp.Meta.Pages)

	var posts []model.NewsPost
	decodeData(t, rec, &posts)
	require.Len(t, posts, 1)
	assert.Equal(t, "First Post", posts[0].Title)
}

func TestEventCRUD(t *testing.T) {
	ts := newTestServer(t)
	cookie := ts.login(t)

	rec := ts.do(t, http.MethodPost, "/admin/api/events", EventRequest{
		Title:       "Parent Teacher Conference",
		Description: "Term two progress reviews.",
		EventDate:   "2026-04-20",
		Location:    "Main Hall",
	}, cookie)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var event model.Event
	decodeData(t, rec, &event)
	require.NotEmpty(t, event.ID)

	rec = ts.do(t, http.MethodGet, "/api/v1/events", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var events []model.Event
	decodeData(t, rec, &events)
	require.Len(t, events, 1)
	assert.Equal(t, "Main Hall", events[0].Location)

	rec = ts.do(t, http.MethodDelete, "/admin/api/events/"+event.ID+"?confirm=true", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
}

// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/yuin/goldmark"

	"github.com/fgacademy/fga-cms/internal/model"
	"github.com/fgacademy/fga-cms/internal/service"
	"github.com/fgacademy/fga-cms/internal/store"
	"github.com/fgacademy/fga-cms/internal/util"
)

// NewsResponse is a news post with its markdown body rendered to
// sanitized HTML.
type NewsResponse struct {
	model.NewsPost
	ContentHTML string `json:"content_html,omitempty"`
}

// NewsRequest is the payload for creating or updating a news post.
type NewsRequest struct {
	ID            string `json:"id"`
	Title         string `json:"title" validate:"required,max=300"`
	Slug          string `json:"slug"`
	Excerpt       string `json:"excerpt" validate:"required"`
	Content       string `json:"content" validate:"required"`
	ImageURL      string `json:"image_url" validate:"omitempty,url"`
	PublishedDate string `json:"published_date" validate:"required,datetime=2006-01-02"`
}

// renderMarkdown converts a markdown body into sanitized HTML.
func renderMarkdown(content string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(content), &buf); err != nil {
		return "", err
	}
	return htmlSanitizer.Sanitize(buf.String()), nil
}

func (h *Handler) newsManager() *service.Manager[model.NewsPost] {
	return &service.Manager[model.NewsPost]{
		Name: "news_posts",
		ID:   func(p model.NewsPost) string { return p.ID },
		Insert: func(ctx context.Context, p model.NewsPost) (model.NewsPost, error) {
			return h.queries.CreateNewsPost(ctx, store.CreateNewsPostParams{
				Title:         p.Title,
				Slug:          p.Slug,
				Excerpt:       p.Excerpt,
				Content:       p.Content,
				ImageURL:      p.ImageURL,
				PublishedDate: p.PublishedDate,
			})
		},
		Update: func(ctx context.Context, p model.NewsPost) error {
			return h.queries.UpdateNewsPost(ctx, store.UpdateNewsPostParams{
				ID:            p.ID,
				Title:         p.Title,
				Slug:          p.Slug,
				Excerpt:       p.Excerpt,
				Content:       p.Content,
				ImageURL:      p.ImageURL,
				PublishedDate: p.PublishedDate,
			})
		},
		Delete:   h.queries.DeleteNewsPost,
		OnChange: h.publishedContentChange("news_posts"),
	}
}

func (h *Handler) eventManager() *service.Manager[model.Event] {
	return &service.Manager[model.Event]{
		Name: "events",
		ID:   func(e model.Event) string { return e.ID },
		Insert: func(ctx context.Context, e model.Event) (model.Event, error) {
			return h.queries.CreateEvent(ctx, store.CreateEventParams{
				Title:       e.Title,
				Description: e.Description,
				EventDate:   e.EventDate,
				Location:    e.Location,
				ImageURL:    e.ImageURL,
			})
		},
		Update: func(ctx context.Context, e model.Event) error {
			return h.queries.UpdateEvent(ctx, store.UpdateEventParams{
				ID:          e.ID,
				Title:       e.Title,
				Description: e.Description,
				EventDate:   e.EventDate,
				Location:    e.Location,
				ImageURL:    e.ImageURL,
			})
		},
		Delete:   h.queries.DeleteEvent,
		OnChange: h.publishedContentChange("events"),
	}
}

// publishedContentChange audits the mutation and rebuilds the public
// content snapshot. News and events are the only collections served from
// the snapshot when the store is unavailable.
func (h *Handler) publishedContentChange(collection string) func(ctx context.Context, action, id string) {
	audited := h.contentChange(collection)
	return func(ctx context.Context, action, id string) {
		audited(ctx, action, id)
		if h.refreshSnapshot == nil {
			return
		}
		if err := h.refreshSnapshot(ctx); err != nil {
			h.logger.Error("failed to refresh content snapshot",
				"collection", collection,
				"error", err,
			)
		}
	}
}

// ListNews handles GET /api/v1/news with page/per_page pagination. If the
// store read fails, the content snapshot serves a degraded response.
func (h *Handler) ListNews(w http.ResponseWriter, r *http.Request) {
	page := ParsePageParam(r)
	perPage := ParsePerPageParam(r, 10, 50)

	posts, err := h.queries.ListNewsPosts(r.Context())
	if err != nil {
		h.logger.Error("news read failed, serving snapshot", "error", err)
		h.serveNewsSnapshot(w)
		return
	}

	total := int64(len(posts))
	start := (page - 1) * perPage
	if start > len(posts) {
		start = len(posts)
	}
	end := start + perPage
	if end > len(posts) {
		end = len(posts)
	}

	WriteSuccess(w, posts[start:end], &Meta{
		Total:   total,
		Page:    page,
		PerPage: perPage,
		Pages:   totalPages(total, perPage),
	})
}

func (h *Handler) serveNewsSnapshot(w http.ResponseWriter) {
	WriteSuccess(w, h.snapshot.News(), nil)
}

// GetNews handles GET /api/v1/news/{slug}, returning the post with its
// rendered body.
func (h *Handler) GetNews(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	post, err := h.queries.GetNewsPostBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "News post not found")
			return
		}
		WriteInternalError(w, "Failed to load news post")
		return
	}

	html, err := renderMarkdown(post.Content)
	if err != nil {
		h.logger.Error("failed to render news post", "slug", slug, "error", err)
		WriteInternalError(w, "Failed to render news post")
		return
	}

	WriteSuccess(w, NewsResponse{NewsPost: post, ContentHTML: html}, nil)
}

// ListNewsAdmin handles GET /admin/api/news, returning the full collection.
func (h *Handler) ListNewsAdmin(w http.ResponseWriter, r *http.Request) {
	posts, err := h.queries.ListNewsPosts(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list news posts")
		return
	}
	WriteSuccess(w, posts, nil)
}

// SaveNews handles POST /admin/api/news and PUT /admin/api/news/{id}.
// An empty slug is derived from the title; slugs must be unique across
// all other posts.
func (h *Handler) SaveNews(w http.ResponseWriter, r *http.Request) {
	var req NewsRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if id := chi.URLParam(r, "id"); id != "" {
		req.ID = id
	}
	if !h.validateRequest(w, &req) {
		return
	}

	if req.Slug == "" {
		req.Slug = util.Slugify(req.Title)
	}
	if !util.IsValidSlug(req.Slug) {
		WriteValidationError(w, map[string]string{"slug": "Invalid slug format (use lowercase letters, numbers, and hyphens)"})
		return
	}

	exists, err := h.queries.NewsSlugExists(r.Context(), req.Slug, req.ID)
	if err != nil {
		WriteInternalError(w, "Failed to check slug")
		return
	}
	if exists {
		WriteValidationError(w, map[string]string{"slug": "Slug already exists"})
		return
	}

	saved, err := h.newsManager().Save(r.Context(), model.NewsPost{
		ID:            req.ID,
		Title:         req.Title,
		Slug:          req.Slug,
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		ImageURL:      req.ImageURL,
		PublishedDate: req.PublishedDate,
	})
	if err != nil {
		writeSaveError(w, "news post", err)
		return
	}

	if req.ID == "" {
		WriteCreated(w, saved)
		return
	}
	WriteSuccess(w, saved, nil)
}

// DeleteNews handles DELETE /admin/api/news/{id}.
func (h *Handler) DeleteNews(w http.ResponseWriter, r *http.Request) {
	deleteRecord(w, r, "news post", h.newsManager().Remove)
}

// EventRequest is the payload for creating or updating an event.
type EventRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title" validate:"required,max=300"`
	Description string `json:"description" validate:"required"`
	EventDate   string `json:"event_date" validate:"required,datetime=2006-01-02"`
	Location    string `json:"location" validate:"required,max=300"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
}

// ListEvents handles GET /api/v1/events and GET /admin/api/events. If the
// store read fails on the public path, the content snapshot serves a
// degraded response.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.queries.ListEvents(r.Context())
	if err != nil {
		h.logger.Error("events read failed, serving snapshot", "error", err)
		WriteSuccess(w, h.snapshot.Events(), nil)
		return
	}
	WriteSuccess(w, events, nil)
}

// SaveEvent handles POST /admin/api/events and PUT /admin/api/events/{id}.
func (h *Handler) SaveEvent(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if id := chi.URLParam(r, "id"); id != "" {
		req.ID = id
	}
	if !h.validateRequest(w, &req) {
		return
	}

	saved, err := h.eventManager().Save(r.Context(), model.Event{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		EventDate:   req.EventDate,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		writeSaveError(w, "event", err)
		return
	}

	if req.ID == "" {
		WriteCreated(w, saved)
		return
	}
	WriteSuccess(w, saved, nil)
}

// DeleteEvent handles DELETE /admin/api/events/{id}.
func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	deleteRecord(w, r, "event", h.eventManager().Remove)
}

// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fgacademy/fga-cms/internal/model"
	"github.com/fgacademy/fga-cms/internal/service"
	"github.com/fgacademy/fga-cms/internal/store"
)

// GalleryItemRequest is the payload for creating or updating a gallery item.
type GalleryItemRequest struct {
	ID        string `json:"id"`
	Title     string `json:"title" validate:"required,max=200"`
	MediaURL  string `json:"media_url" validate:"required,url"`
	MediaType string `json:"media_type" validate:"required,oneof=photo video"`
	Category  string `json:"category" validate:"required,max=100"`
}

func (h *Handler) galleryManager() *service.Manager[model.GalleryItem] {
	return &service.Manager[model.GalleryItem]{
		Name: "gallery_items",
		ID:   func(g model.GalleryItem) string { return g.ID },
		Insert: func(ctx context.Context, g model.GalleryItem) (model.GalleryItem, error) {
			return h.queries.CreateGalleryItem(ctx, store.CreateGalleryItemParams{
				Title:     g.Title,
				MediaURL:  g.MediaURL,
				MediaType: g.MediaType,
				Category:  g.Category,
			})
		},
		Update: func(ctx context.Context, g model.GalleryItem) error {
			return h.queries.UpdateGalleryItem(ctx, store.UpdateGalleryItemParams{
				ID:        g.ID,
				Title:     g.Title,
				MediaURL:  g.MediaURL,
				MediaType: g.MediaType,
				Category:  g.Category,
			})
		},
		Delete:   h.queries.DeleteGalleryItem,
		OnChange: h.contentChange("gallery_items"),
	}
}

// ListGallery handles GET /api/v1/gallery and GET /admin/api/gallery.
// Optional media_type and category query parameters filter the result.
func (h *Handler) ListGallery(w http.ResponseWriter, r *http.Request) {
	items, err := h.queries.ListGalleryItems(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list gallery items")
		return
	}

	mediaType := r.URL.Query().Get("media_type")
	category := r.URL.Query().Get("category")
	if mediaType != "" || category != "" {
		filtered := make([]model.GalleryItem, 0, len(items))
		for _, item := range items {
			if mediaType != "" && item.MediaType != mediaType {
				continue
			}
			if category != "" && item.Category != category {
				continue
			}
			filtered = append(filtered, item)
		}
		items = filtered
	}

	WriteSuccess(w, items, nil)
}

// SaveGalleryItem handles POST /admin/api/gallery and PUT /admin/api/gallery/{id}.
func (h *Handler) SaveGalleryItem(w http.ResponseWriter, r *http.Request) {
	var req GalleryItemRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if id := chi.URLParam(r, "id"); id != "" {
		req.ID = id
	}
	if !h.validateRequest(w, &req) {
		return
	}

	saved, err := h.galleryManager().Save(r.Context(), model.GalleryItem{
		ID:        req.ID,
		Title:     req.Title,
		MediaURL:  req.MediaURL,
		MediaType: req.MediaType,
		Category:  req.Category,
	})
	if err != nil {
		writeSaveError(w, "gallery item", err)
		return
	}

	if req.ID == "" {
		WriteCreated(w, saved)
		return
	}
	WriteSuccess(w, saved, nil)
}

// DeleteGalleryItem handles DELETE /admin/api/gallery/{id}.
func (h *Handler) DeleteGalleryItem(w http.ResponseWriter, r *http.Request) {
	deleteRecord(w, r, "gallery item", h.galleryManager().Remove)
}

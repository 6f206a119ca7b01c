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

// HomepageResponse bundles everything the public homepage renders in one
// request.
type HomepageResponse struct {
	Slides   []model.CarouselSlide   `json:"slides"`
	Stats    []model.HomepageStat    `json:"stats"`
	Features []model.HomepageFeature `json:"features"`
}

// Homepage handles GET /api/v1/homepage.
func (h *Handler) Homepage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	slides, err := h.queries.ListCarouselSlides(ctx)
	if err != nil {
		WriteInternalError(w, "Failed to load homepage content")
		return
	}
	stats, err := h.queries.ListHomepageStats(ctx)
	if err != nil {
		WriteInternalError(w, "Failed to load homepage content")
		return
	}
	features, err := h.queries.ListHomepageFeatures(ctx)
	if err != nil {
		WriteInternalError(w, "Failed to load homepage content")
		return
	}

	WriteSuccess(w, HomepageResponse{
		Slides:   slides,
		Stats:    stats,
		Features: features,
	}, nil)
}

// SlideRequest is the payload for creating or updating a carousel slide.
type SlideRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url" validate:"required,url"`
	OrderIndex  int64  `json:"order_index"`
}

func (h *Handler) slideManager() *service.Manager[model.CarouselSlide] {
	return &service.Manager[model.CarouselSlide]{
		Name: "carousel_slides",
		ID:   func(s model.CarouselSlide) string { return s.ID },
		Insert: func(ctx context.Context, s model.CarouselSlide) (model.CarouselSlide, error) {
			return h.queries.CreateCarouselSlide(ctx, store.CreateCarouselSlideParams{
				Title:       s.Title,
				Description: s.Description,
				ImageURL:    s.ImageURL,
			})
		},
		Update: func(ctx context.Context, s model.CarouselSlide) error {
			return h.queries.UpdateCarouselSlide(ctx, store.UpdateCarouselSlideParams{
				ID:          s.ID,
				Title:       s.Title,
				Description: s.Description,
				ImageURL:    s.ImageURL,
				OrderIndex:  s.OrderIndex,
			})
		},
		Delete:   h.queries.DeleteCarouselSlide,
		OnChange: h.contentChange("carousel_slides"),
	}
}

// ListSlides handles GET /admin/api/slides.
func (h *Handler) ListSlides(w http.ResponseWriter, r *http.Request) {
	slides, err := h.queries.ListCarouselSlides(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list slides")
		return
	}
	WriteSuccess(w, slides, nil)
}

// SaveSlide handles POST /admin/api/slides and PUT /admin/api/slides/{id}.
func (h *Handler) SaveSlide(w http.ResponseWriter, r *http.Request) {
	var req SlideRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if id := chi.URLParam(r, "id"); id != "" {
		req.ID = id
	}
	if !h.validateRequest(w, &req) {
		return
	}

	saved, err := h.slideManager().Save(r.Context(), model.CarouselSlide{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		OrderIndex:  req.OrderIndex,
	})
	if err != nil {
		writeSaveError(w, "slide", err)
		return
	}

	if req.ID == "" {
		WriteCreated(w, saved)
		return
	}
	WriteSuccess(w, saved, nil)
}

// DeleteSlide handles DELETE /admin/api/slides/{id}.
func (h *Handler) DeleteSlide(w http.ResponseWriter, r *http.Request) {
	deleteRecord(w, r, "slide", h.slideManager().Remove)
}

// StatRequest is the payload for creating or updating a homepage stat.
type StatRequest struct {
	ID         string `json:"id"`
	Value      string `json:"value" validate:"required,max=50"`
	Label      string `json:"label" validate:"required,max=100"`
	OrderIndex int64  `json:"order_index"`
}

func (h *Handler) statManager() *service.Manager[model.HomepageStat] {
	return &service.Manager[model.HomepageStat]{
		Name: "homepage_stats",
		ID:   func(s model.HomepageStat) string { return s.ID },
		Insert: func(ctx context.Context, s model.HomepageStat) (model.HomepageStat, error) {
			return h.queries.CreateHomepageStat(ctx, store.CreateHomepageStatParams{
				Value: s.Value,
				Label: s.Label,
			})
		},
		Update: func(ctx context.Context, s model.HomepageStat) error {
			return h.queries.UpdateHomepageStat(ctx, store.UpdateHomepageStatParams{
				ID:         s.ID,
				Value:      s.Value,
				Label:      s.Label,
				OrderIndex: s.OrderIndex,
			})
		},
		Delete:   h.queries.DeleteHomepageStat,
		OnChange: h.contentChange("homepage_stats"),
	}
}

// ListStats handles GET /admin/api/stats.
func (h *Handler) ListStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.queries.ListHomepageStats(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list stats")
		return
	}
	WriteSuccess(w, stats, nil)
}

// SaveStat handles POST /admin/api/stats and PUT /admin/api/stats/{id}.
func (h *Handler) SaveStat(w http.ResponseWriter, r *http.Request) {
	var req StatRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if id := chi.URLParam(r, "id"); id != "" {
		req.ID = id
	}
	if !h.validateRequest(w, &req) {
		return
	}

	saved, err := h.statManager().Save(r.Context(), model.HomepageStat{
		ID:         req.ID,
		Value:      req.Value,
		Label:      req.Label,
		OrderIndex: req.OrderIndex,
	})
	if err != nil {
		writeSaveError(w, "stat", err)
		return
	}

	if req.ID == "" {
		WriteCreated(w, saved)
		return
	}
	WriteSuccess(w, saved, nil)
}

// DeleteStat handles DELETE /admin/api/stats/{id}.
func (h *Handler) DeleteStat(w http.ResponseWriter, r *http.Request) {
	deleteRecord(w, r, "stat", h.statManager().Remove)
}

// FeatureRequest is the payload for creating or updating a homepage feature.
type FeatureRequest struct {
	ID          string `json:"id"`
	Icon        string `json:"icon" validate:"max=100"`
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"required"`
	OrderIndex  int64  `json:"order_index"`
}

func (h *Handler) featureManager() *service.Manager[model.HomepageFeature] {
	return &service.Manager[model.HomepageFeature]{
		Name: "homepage_features",
		ID:   func(f model.HomepageFeature) string { return f.ID },
		Insert: func(ctx context.Context, f model.HomepageFeature) (model.HomepageFeature, error) {
			return h.queries.CreateHomepageFeature(ctx, store.CreateHomepageFeatureParams{
				Icon:        f.Icon,
				Title:       f.Title,
				Description: f.Description,
			})
		},
		Update: func(ctx context.Context, f model.HomepageFeature) error {
			return h.queries.UpdateHomepageFeature(ctx, store.UpdateHomepageFeatureParams{
				ID:          f.ID,
				Icon:        f.Icon,
				Title:       f.Title,
				Description: f.Description,
				OrderIndex:  f.OrderIndex,
			})
		},
		Delete:   h.queries.DeleteHomepageFeature,
		OnChange: h.contentChange("homepage_features"),
	}
}

// ListFeatures handles GET /admin/api/features.
func (h *Handler) ListFeatures(w http.ResponseWriter, r *http.Request) {
	features, err := h.queries.ListHomepageFeatures(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list features")
		return
	}
	WriteSuccess(w, features, nil)
}

// SaveFeature handles POST /admin/api/features and PUT /admin/api/features/{id}.
func (h *Handler) SaveFeature(w http.ResponseWriter, r *http.Request) {
	var req FeatureRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if id := chi.URLParam(r, "id"); id != "" {
		req.ID = id
	}
	if !h.validateRequest(w, &req) {
		return
	}

	saved, err := h.featureManager().Save(r.Context(), model.HomepageFeature{
		ID:          req.ID,
		Icon:        req.Icon,
		Title:       req.Title,
		Description: req.Description,
		OrderIndex:  req.OrderIndex,
	})
	if err != nil {
		writeSaveError(w, "feature", err)
		return
	}

	if req.ID == "" {
		WriteCreated(w, saved)
		return
	}
	WriteSuccess(w, saved, nil)
}

// DeleteFeature handles DELETE /admin/api/features/{id}.
func (h *Handler) DeleteFeature(w http.ResponseWriter, r *http.Request) {
	deleteRecord(w, r, "feature", h.featureManager().Remove)
}

// ValueRequest is the payload for creating or updating a core value.
type ValueRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"required"`
	Icon        string `json:"icon" validate:"max=100"`
	OrderIndex  int64  `json:"order_index"`
}

func (h *Handler) valueManager() *service.Manager[model.CoreValue] {
	return &service.Manager[model.CoreValue]{
		Name: "core_values",
		ID:   func(v model.CoreValue) string { return v.ID },
		Insert: func(ctx context.Context, v model.CoreValue) (model.CoreValue, error) {
			return h.queries.CreateCoreValue(ctx, store.CreateCoreValueParams{
				Title:       v.Title,
				Description: v.Description,
				Icon:        v.Icon,
			})
		},
		Update: func(ctx context.Context, v model.CoreValue) error {
			return h.queries.UpdateCoreValue(ctx, store.UpdateCoreValueParams{
				ID:          v.ID,
				Title:       v.Title,
				Description: v.Description,
				Icon:        v.Icon,
				OrderIndex:  v.OrderIndex,
			})
		},
		Delete:   h.queries.DeleteCoreValue,
		OnChange: h.contentChange("core_values"),
	}
}

// ListValues handles GET /api/v1/values and GET /admin/api/values.
func (h *Handler) ListValues(w http.ResponseWriter, r *http.Request) {
	values, err := h.queries.ListCoreValues(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list core values")
		return
	}
	WriteSuccess(w, values, nil)
}

// SaveValue handles POST /admin/api/values and PUT /admin/api/values/{id}.
func (h *Handler) SaveValue(w http.ResponseWriter, r *http.Request) {
	var req ValueRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if id := chi.URLParam(r, "id"); id != "" {
		req.ID = id
	}
	if !h.validateRequest(w, &req) {
		return
	}

	saved, err := h.valueManager().Save(r.Context(), model.CoreValue{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		OrderIndex:  req.OrderIndex,
	})
	if err != nil {
		writeSaveError(w, "core value", err)
		return
	}

	if req.ID == "" {
		WriteCreated(w, saved)
		return
	}
	WriteSuccess(w, saved, nil)
}

// DeleteValue handles DELETE /admin/api/values/{id}.
func (h *Handler) DeleteValue(w http.ResponseWriter, r *http.Request) {
	deleteRecord(w, r, "core value", h.valueManager().Remove)
}

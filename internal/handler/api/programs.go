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

// ProgramRequest is the payload for creating or updating an academic
// program. An empty ID creates; a non-empty ID updates in place.
type ProgramRequest struct {
	ID          string   `json:"id"`
	Name        string   `json:"name" validate:"required,max=200"`
	Description string   `json:"description" validate:"required"`
	AgeRange    string   `json:"age_range" validate:"required,max=100"`
	Icon        string   `json:"icon" validate:"max=100"`
	ColorFrom   string   `json:"color_from" validate:"max=50"`
	ColorTo     string   `json:"color_to" validate:"max=50"`
	BgColorFrom string   `json:"bg_color_from" validate:"max=50"`
	BgColorTo   string   `json:"bg_color_to" validate:"max=50"`
	Features    []string `json:"features"`
	Curriculum  []string `json:"curriculum"`
	OrderIndex  int64    `json:"order_index"`
}

func (h *Handler) programManager() *service.Manager[model.AcademicProgram] {
	return &service.Manager[model.AcademicProgram]{
		Name: "academic_programs",
		ID:   func(p model.AcademicProgram) string { return p.ID },
		Insert: func(ctx context.Context, p model.AcademicProgram) (model.AcademicProgram, error) {
			return h.queries.CreateAcademicProgram(ctx, store.CreateAcademicProgramParams{
				Name:        p.Name,
				Description: p.Description,
				AgeRange:    p.AgeRange,
				Icon:        p.Icon,
				ColorFrom:   p.ColorFrom,
				ColorTo:     p.ColorTo,
				BgColorFrom: p.BgColorFrom,
				BgColorTo:   p.BgColorTo,
				Features:    p.Features,
				Curriculum:  p.Curriculum,
			})
		},
		Update: func(ctx context.Context, p model.AcademicProgram) error {
			return h.queries.UpdateAcademicProgram(ctx, store.UpdateAcademicProgramParams{
				ID:          p.ID,
				Name:        p.Name,
				Description: p.Description,
				AgeRange:    p.AgeRange,
				Icon:        p.Icon,
				ColorFrom:   p.ColorFrom,
				ColorTo:     p.ColorTo,
				BgColorFrom: p.BgColorFrom,
				BgColorTo:   p.BgColorTo,
				Features:    p.Features,
				Curriculum:  p.Curriculum,
				OrderIndex:  p.OrderIndex,
			})
		},
		Delete:   h.queries.DeleteAcademicProgram,
		OnChange: h.contentChange("academic_programs"),
	}
}

// ListPrograms handles GET /api/v1/programs and GET /admin/api/programs.
func (h *Handler) ListPrograms(w http.ResponseWriter, r *http.Request) {
	programs, err := h.queries.ListAcademicPrograms(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list programs")
		return
	}
	WriteSuccess(w, programs, nil)
}

// SaveProgram handles POST /admin/api/programs and PUT /admin/api/programs/{id}.
func (h *Handler) SaveProgram(w http.ResponseWriter, r *http.Request) {
	var req ProgramRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if id := chi.URLParam(r, "id"); id != "" {
		req.ID = id
	}
	if !h.validateRequest(w, &req) {
		return
	}

	saved, err := h.programManager().Save(r.Context(), model.AcademicProgram{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		AgeRange:    req.AgeRange,
		Icon:        req.Icon,
		ColorFrom:   req.ColorFrom,
		ColorTo:     req.ColorTo,
		BgColorFrom: req.BgColorFrom,
		BgColorTo:   req.BgColorTo,
		Features:    req.Features,
		Curriculum:  req.Curriculum,
		OrderIndex:  req.OrderIndex,
	})
	if err != nil {
		writeSaveError(w, "program", err)
		return
	}

	if req.ID == "" {
		WriteCreated(w, saved)
		return
	}
	WriteSuccess(w, saved, nil)
}

// DeleteProgram handles DELETE /admin/api/programs/{id}.
func (h *Handler) DeleteProgram(w http.ResponseWriter, r *http.Request) {
	deleteRecord(w, r, "program", h.programManager().Remove)
}

// FacilityRequest is the payload for creating or updating a facility.
type FacilityRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"required"`
	Icon        string `json:"icon" validate:"max=100"`
	OrderIndex  int64  `json:"order_index"`
}

func (h *Handler) facilityManager() *service.Manager[model.AcademicFacility] {
	return &service.Manager[model.AcademicFacility]{
		Name: "academic_facilities",
		ID:   func(f model.AcademicFacility) string { return f.ID },
		Insert: func(ctx context.Context, f model.AcademicFacility) (model.AcademicFacility, error) {
			return h.queries.CreateAcademicFacility(ctx, store.CreateAcademicFacilityParams{
				Title:       f.Title,
				Description: f.Description,
				Icon:        f.Icon,
			})
		},
		Update: func(ctx context.Context, f model.AcademicFacility) error {
			return h.queries.UpdateAcademicFacility(ctx, store.UpdateAcademicFacilityParams{
				ID:          f.ID,
				Title:       f.Title,
				Description: f.Description,
				Icon:        f.Icon,
				OrderIndex:  f.OrderIndex,
			})
		},
		Delete:   h.queries.DeleteAcademicFacility,
		OnChange: h.contentChange("academic_facilities"),
	}
}

// ListFacilities handles GET /api/v1/facilities and GET /admin/api/facilities.
func (h *Handler) ListFacilities(w http.ResponseWriter, r *http.Request) {
	facilities, err := h.queries.ListAcademicFacilities(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list facilities")
		return
	}
	WriteSuccess(w, facilities, nil)
}

// SaveFacility handles POST /admin/api/facilities and PUT /admin/api/facilities/{id}.
func (h *Handler) SaveFacility(w http.ResponseWriter, r *http.Request) {
	var req FacilityRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if id := chi.URLParam(r, "id"); id != "" {
		req.ID = id
	}
	if !h.validateRequest(w, &req) {
		return
	}

	saved, err := h.facilityManager().Save(r.Context(), model.AcademicFacility{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		OrderIndex:  req.OrderIndex,
	})
	if err != nil {
		writeSaveError(w, "facility", err)
		return
	}

	if req.ID == "" {
		WriteCreated(w, saved)
		return
	}
	WriteSuccess(w, saved, nil)
}

// DeleteFacility handles DELETE /admin/api/facilities/{id}.
func (h *Handler) DeleteFacility(w http.ResponseWriter, r *http.Request) {
	deleteRecord(w, r, "facility", h.facilityManager().Remove)
}

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

// StaffRequest is the payload for creating or updating a staff profile.
type StaffRequest struct {
	ID         string `json:"id"`
	Name       string `json:"name" validate:"required,max=200"`
	Position   string `json:"position" validate:"required,max=200"`
	ImageURL   string `json:"image_url" validate:"omitempty,url"`
	Bio        string `json:"bio"`
	OrderIndex int64  `json:"order_index"`
}

func (h *Handler) staffManager() *service.Manager[model.StaffMember] {
	return &service.Manager[model.StaffMember]{
		Name: "staff_members",
		ID:   func(m model.StaffMember) string { return m.ID },
		Insert: func(ctx context.Context, m model.StaffMember) (model.StaffMember, error) {
			return h.queries.CreateStaffMember(ctx, store.CreateStaffMemberParams{
				Name:     m.Name,
				Position: m.Position,
				ImageURL: m.ImageURL,
				Bio:      m.Bio,
			})
		},
		Update: func(ctx context.Context, m model.StaffMember) error {
			return h.queries.UpdateStaffMember(ctx, store.UpdateStaffMemberParams{
				ID:         m.ID,
				Name:       m.Name,
				Position:   m.Position,
				ImageURL:   m.ImageURL,
				Bio:        m.Bio,
				OrderIndex: m.OrderIndex,
			})
		},
		Delete:   h.queries.DeleteStaffMember,
		OnChange: h.contentChange("staff_members"),
	}
}

// ListStaff handles GET /api/v1/staff and GET /admin/api/staff.
func (h *Handler) ListStaff(w http.ResponseWriter, r *http.Request) {
	staff, err := h.queries.ListStaffMembers(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list staff")
		return
	}
	WriteSuccess(w, staff, nil)
}

// SaveStaff handles POST /admin/api/staff and PUT /admin/api/staff/{id}.
func (h *Handler) SaveStaff(w http.ResponseWriter, r *http.Request) {
	var req StaffRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if id := chi.URLParam(r, "id"); id != "" {
		req.ID = id
	}
	if !h.validateRequest(w, &req) {
		return
	}

	saved, err := h.staffManager().Save(r.Context(), model.StaffMember{
		ID:         req.ID,
		Name:       req.Name,
		Position:   req.Position,
		ImageURL:   req.ImageURL,
		Bio:        req.Bio,
		OrderIndex: req.OrderIndex,
	})
	if err != nil {
		writeSaveError(w, "staff member", err)
		return
	}

	if req.ID == "" {
		WriteCreated(w, saved)
		return
	}
	WriteSuccess(w, saved, nil)
}

// DeleteStaff handles DELETE /admin/api/staff/{id}.
func (h *Handler) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	deleteRecord(w, r, "staff member", h.staffManager().Remove)
}

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

// AdmissionsResponse bundles the Admissions page content in one request.
type AdmissionsResponse struct {
	Steps     []model.AdmissionStep    `json:"steps"`
	Documents []model.RequiredDocument `json:"documents"`
}

// Admissions handles GET /api/v1/admissions.
func (h *Handler) Admissions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	steps, err := h.queries.ListAdmissionSteps(ctx)
	if err != nil {
		WriteInternalError(w, "Failed to load admissions content")
		return
	}
	documents, err := h.queries.ListRequiredDocuments(ctx)
	if err != nil {
		WriteInternalError(w, "Failed to load admissions content")
		return
	}

	WriteSuccess(w, AdmissionsResponse{
		Steps:     steps,
		Documents: documents,
	}, nil)
}

// StepRequest is the payload for creating or updating an admission step.
type StepRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"required"`
	Icon        string `json:"icon" validate:"max=100"`
	OrderIndex  int64  `json:"order_index"`
}

func (h *Handler) stepManager() *service.Manager[model.AdmissionStep] {
	return &service.Manager[model.AdmissionStep]{
		Name: "admission_steps",
		ID:   func(s model.AdmissionStep) string { return s.ID },
		Insert: func(ctx context.Context, s model.AdmissionStep) (model.AdmissionStep, error) {
			return h.queries.CreateAdmissionStep(ctx, store.CreateAdmissionStepParams{
				Title:       s.Title,
				Description: s.Description,
				Icon:        s.Icon,
			})
		},
		Update: func(ctx context.Context, s model.AdmissionStep) error {
			return h.queries.UpdateAdmissionStep(ctx, store.UpdateAdmissionStepParams{
				ID:          s.ID,
				Title:       s.Title,
				Description: s.Description,
				Icon:        s.Icon,
				OrderIndex:  s.OrderIndex,
			})
		},
		Delete:   h.queries.DeleteAdmissionStep,
		OnChange: h.contentChange("admission_steps"),
	}
}

// ListSteps handles GET /admin/api/steps.
func (h *Handler) ListSteps(w http.ResponseWriter, r *http.Request) {
	steps, err := h.queries.ListAdmissionSteps(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list admission steps")
		return
	}
	WriteSuccess(w, steps, nil)
}

// SaveStep handles POST /admin/api/steps and PUT /admin/api/steps/{id}.
func (h *Handler) SaveStep(w http.ResponseWriter, r *http.Request) {
	var req StepRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if id := chi.URLParam(r, "id"); id != "" {
		req.ID = id
	}
	if !h.validateRequest(w, &req) {
		return
	}

	saved, err := h.stepManager().Save(r.Context(), model.AdmissionStep{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		OrderIndex:  req.OrderIndex,
	})
	if err != nil {
		writeSaveError(w, "admission step", err)
		return
	}

	if req.ID == "" {
		WriteCreated(w, saved)
		return
	}
	WriteSuccess(w, saved, nil)
}

// DeleteStep handles DELETE /admin/api/steps/{id}.
func (h *Handler) DeleteStep(w http.ResponseWriter, r *http.Request) {
	deleteRecord(w, r, "admission step", h.stepManager().Remove)
}

// DocumentRequest is the payload for creating or updating a required document.
type DocumentRequest struct {
	ID           string `json:"id"`
	DocumentName string `json:"document_name" validate:"required,max=200"`
	OrderIndex   int64  `json:"order_index"`
}

func (h *Handler) documentManager() *service.Manager[model.RequiredDocument] {
	return &service.Manager[model.RequiredDocument]{
		Name: "required_documents",
		ID:   func(d model.RequiredDocument) string { return d.ID },
		Insert: func(ctx context.Context, d model.RequiredDocument) (model.RequiredDocument, error) {
			return h.queries.CreateRequiredDocument(ctx, store.CreateRequiredDocumentParams{
				DocumentName: d.DocumentName,
			})
		},
		Update: func(ctx context.Context, d model.RequiredDocument) error {
			return h.queries.UpdateRequiredDocument(ctx, store.UpdateRequiredDocumentParams{
				ID:           d.ID,
				DocumentName: d.DocumentName,
				OrderIndex:   d.OrderIndex,
			})
		},
		Delete:   h.queries.DeleteRequiredDocument,
		OnChange: h.contentChange("required_documents"),
	}
}

// ListDocuments handles GET /admin/api/documents.
func (h *Handler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	documents, err := h.queries.ListRequiredDocuments(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list required documents")
		return
	}
	WriteSuccess(w, documents, nil)
}

// SaveDocument handles POST /admin/api/documents and PUT /admin/api/documents/{id}.
func (h *Handler) SaveDocument(w http.ResponseWriter, r *http.Request) {
	var req DocumentRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if id := chi.URLParam(r, "id"); id != "" {
		req.ID = id
	}
	if !h.validateRequest(w, &req) {
		return
	}

	saved, err := h.documentManager().Save(r.Context(), model.RequiredDocument{
		ID:           req.ID,
		DocumentName: req.DocumentName,
		OrderIndex:   req.OrderIndex,
	})
	if err != nil {
		writeSaveError(w, "document", err)
		return
	}

	if req.ID == "" {
		WriteCreated(w, saved)
		return
	}
	WriteSuccess(w, saved, nil)
}

// DeleteDocument handles DELETE /admin/api/documents/{id}.
func (h *Handler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	deleteRecord(w, r, "document", h.documentManager().Remove)
}

// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fgacademy/fga-cms/internal/middleware"
	"github.com/fgacademy/fga-cms/internal/model"
	"github.com/fgacademy/fga-cms/internal/service"
	"github.com/fgacademy/fga-cms/internal/store"
)

// ContactInquiryRequest is the public contact form payload.
type ContactInquiryRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"max=50"`
	Message string `json:"message" validate:"required,max=5000"`
}

// AdmissionInquiryRequest is the public admissions form payload.
type AdmissionInquiryRequest struct {
	ParentName  string `json:"parent_name" validate:"required,max=200"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"max=50"`
	StudentName string `json:"student_name" validate:"required,max=200"`
	StudentAge  string `json:"student_age" validate:"max=20"`
	GradeLevel  string `json:"grade_level" validate:"required,max=100"`
	Message     string `json:"message" validate:"max=5000"`
}

// StatusRequest updates an inquiry's review status. Any status may be set
// from any other.
type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new read responded"`
}

// SubmitContactInquiry handles POST /api/v1/inquiries/contact.
func (h *Handler) SubmitContactInquiry(w http.ResponseWriter, r *http.Request) {
	var req ContactInquiryRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if !h.validateRequest(w, &req) {
		return
	}

	inq, err := h.queries.CreateContactInquiry(r.Context(), store.CreateContactInquiryParams{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		WriteInternalError(w, "Failed to submit inquiry")
		return
	}

	h.broker.Publish("created", "contact_inquiries", inq.ID)
	if err := h.audit.LogInfo(r.Context(), model.AuditCategoryInquiry, "contact inquiry received", "", map[string]any{
		"inquiry_id": inq.ID,
	}); err != nil {
		h.logger.Warn("failed to write audit entry", "error", err)
	}

	WriteCreated(w, inq)
}

// SubmitAdmissionInquiry handles POST /api/v1/inquiries/admissions.
func (h *Handler) SubmitAdmissionInquiry(w http.ResponseWriter, r *http.Request) {
	var req AdmissionInquiryRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if !h.validateRequest(w, &req) {
		return
	}

	inq, err := h.queries.CreateAdmissionInquiry(r.Context(), store.CreateAdmissionInquiryParams{
		ParentName:  req.ParentName,
		Email:       req.Email,
		Phone:       req.Phone,
		StudentName: req.StudentName,
		StudentAge:  req.StudentAge,
		GradeLevel:  req.GradeLevel,
		Message:     req.Message,
	})
	if err != nil {
		WriteInternalError(w, "Failed to submit inquiry")
		return
	}

	h.broker.Publish("created", "admission_inquiries", inq.ID)
	if err := h.audit.LogInfo(r.Context(), model.AuditCategoryInquiry, "admission inquiry received", "", map[string]any{
		"inquiry_id": inq.ID,
	}); err != nil {
		h.logger.Warn("failed to write audit entry", "error", err)
	}

	WriteCreated(w, inq)
}

// ListContactInquiries handles GET /admin/api/inquiries/contact with an
// optional status filter.
func (h *Handler) ListContactInquiries(w http.ResponseWriter, r *http.Request) {
	inquiries, err := h.queries.ListContactInquiries(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list inquiries")
		return
	}

	if status := r.URL.Query().Get("status"); status != "" {
		filtered := make([]model.ContactInquiry, 0, len(inquiries))
		for _, inq := range inquiries {
			if inq.Status == status {
				filtered = append(filtered, inq)
			}
		}
		inquiries = filtered
	}

	WriteSuccess(w, inquiries, nil)
}

// ListAdmissionInquiries handles GET /admin/api/inquiries/admissions with
// an optional status filter.
func (h *Handler) ListAdmissionInquiries(w http.ResponseWriter, r *http.Request) {
	inquiries, err := h.queries.ListAdmissionInquiries(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list inquiries")
		return
	}

	if status := r.URL.Query().Get("status"); status != "" {
		filtered := make([]model.AdmissionInquiry, 0, len(inquiries))
		for _, inq := range inquiries {
			if inq.Status == status {
				filtered = append(filtered, inq)
			}
		}
		inquiries = filtered
	}

	WriteSuccess(w, inquiries, nil)
}

// UpdateContactInquiryStatus handles PUT /admin/api/inquiries/contact/{id}/status.
func (h *Handler) UpdateContactInquiryStatus(w http.ResponseWriter, r *http.Request) {
	h.updateInquiryStatus(w, r, h.queries.UpdateContactInquiryStatus)
}

// UpdateAdmissionInquiryStatus handles PUT /admin/api/inquiries/admissions/{id}/status.
func (h *Handler) UpdateAdmissionInquiryStatus(w http.ResponseWriter, r *http.Request) {
	h.updateInquiryStatus(w, r, h.queries.UpdateAdmissionInquiryStatus)
}

func (h *Handler) updateInquiryStatus(w http.ResponseWriter, r *http.Request,
	update func(ctx context.Context, id, status string) error) {

	var req StatusRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if !h.validateRequest(w, &req) {
		return
	}

	id := chi.URLParam(r, "id")
	if err := update(r.Context(), id, req.Status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "Inquiry not found")
			return
		}
		WriteInternalError(w, "Failed to update inquiry")
		return
	}

	h.feed.MarkRead(id)

	WriteSuccess(w, map[string]string{"id": id, "status": req.Status}, nil)
}

// DeleteContactInquiry handles DELETE /admin/api/inquiries/contact/{id}.
func (h *Handler) DeleteContactInquiry(w http.ResponseWriter, r *http.Request) {
	deleteRecord(w, r, "inquiry", h.contactInquiryRemover())
}

// DeleteAdmissionInquiry handles DELETE /admin/api/inquiries/admissions/{id}.
func (h *Handler) DeleteAdmissionInquiry(w http.ResponseWriter, r *http.Request) {
	deleteRecord(w, r, "inquiry", h.admissionInquiryRemover())
}

func (h *Handler) contactInquiryRemover() func(ctx context.Context, id string, confirmed bool) error {
	mgr := &service.Manager[model.ContactInquiry]{
		Name:     "contact_inquiries",
		ID:       func(i model.ContactInquiry) string { return i.ID },
		Delete:   h.queries.DeleteContactInquiry,
		OnChange: h.contentChange("contact_inquiries"),
	}
	return mgr.Remove
}

func (h *Handler) admissionInquiryRemover() func(ctx context.Context, id string, confirmed bool) error {
	mgr := &service.Manager[model.AdmissionInquiry]{
		Name:     "admission_inquiries",
		ID:       func(i model.AdmissionInquiry) string { return i.ID },
		Delete:   h.queries.DeleteAdmissionInquiry,
		OnChange: h.contentChange("admission_inquiries"),
	}
	return mgr.Remove
}

// ExportContactInquiries handles GET /admin/api/inquiries/contact/export,
// streaming the collection as CSV.
func (h *Handler) ExportContactInquiries(w http.ResponseWriter, r *http.Request) {
	inquiries, err := h.queries.ListContactInquiries(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to export inquiries")
		return
	}

	filename := "contact-inquiries-" + time.Now().UTC().Format(model.DateLayout) + ".csv"
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"Name", "Email", "Phone", "Message", "Status", "Date"})
	for _, inq := range inquiries {
		_ = cw.Write([]string{
			inq.Name,
			inq.Email,
			inq.Phone,
			inq.Message,
			inq.Status,
			inq.CreatedAt.UTC().Format(model.DateLayout),
		})
	}
	cw.Flush()

	h.exportAudit(r, "contact_inquiries", len(inquiries))
}

// ExportAdmissionInquiries handles GET /admin/api/inquiries/admissions/export.
func (h *Handler) ExportAdmissionInquiries(w http.ResponseWriter, r *http.Request) {
	inquiries, err := h.queries.ListAdmissionInquiries(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to export inquiries")
		return
	}

	filename := "admission-inquiries-" + time.Now().UTC().Format(model.DateLayout) + ".csv"
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"Parent Name", "Email", "Phone", "Student Name", "Student Age", "Grade Level", "Message", "Status", "Date"})
	for _, inq := range inquiries {
		_ = cw.Write([]string{
			inq.ParentName,
			inq.Email,
			inq.Phone,
			inq.StudentName,
			inq.StudentAge,
			inq.GradeLevel,
			inq.Message,
			inq.Status,
			inq.CreatedAt.UTC().Format(model.DateLayout),
		})
	}
	cw.Flush()

	h.exportAudit(r, "admission_inquiries", len(inquiries))
}

func (h *Handler) exportAudit(r *http.Request, collection string, count int) {
	actor := ""
	if user := middleware.GetAdminUser(r); user != nil {
		actor = user.Email
	}
	if err := h.audit.LogInfo(r.Context(), model.AuditCategoryInquiry, collection+" exported", actor, map[string]any{
		"count": count,
	}); err != nil {
		h.logger.Warn("failed to write audit entry", "error", err)
	}
}

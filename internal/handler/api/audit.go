// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
)

// ListAuditEvents handles GET /admin/api/audit with page/per_page
// pagination, newest entries first.
func (h *Handler) ListAuditEvents(w http.ResponseWriter, r *http.Request) {
	page := ParsePageParam(r)
	perPage := ParsePerPageParam(r, 50, 200)
	offset := int64((page - 1) * perPage)

	events, err := h.queries.ListAuditEvents(r.Context(), int64(perPage), offset)
	if err != nil {
		WriteInternalError(w, "Failed to list audit events")
		return
	}
	total, err := h.queries.CountAuditEvents(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list audit events")
		return
	}

	WriteSuccess(w, events, &Meta{
		Total:   total,
		Page:    page,
		PerPage: perPage,
		Pages:   totalPages(total, perPage),
	})
}

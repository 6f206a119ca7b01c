// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fgacademy/fga-cms/internal/notify"
)

// NotificationFeedResponse is the admin notification feed payload.
type NotificationFeedResponse struct {
	Notifications []notify.Notification `json:"notifications"`
	UnreadCount   int                   `json:"unread_count"`
}

// Notifications handles GET /admin/api/notifications, returning the merged
// feed of recent contact and admission inquiries.
func (h *Handler) Notifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.feed.Latest(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to load notifications")
		return
	}
	unread, err := h.feed.UnreadCount(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to load notifications")
		return
	}

	WriteSuccess(w, NotificationFeedResponse{
		Notifications: notifications,
		UnreadCount:   unread,
	}, nil)
}

// MarkNotificationRead handles POST /admin/api/notifications/{id}/read.
func (h *Handler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		WriteBadRequest(w, "Missing notification ID", nil)
		return
	}
	h.feed.MarkRead(id)
	WriteSuccess(w, map[string]string{"status": "read", "id": id}, nil)
}

// MarkAllNotificationsRead handles POST /admin/api/notifications/read-all.
func (h *Handler) MarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	if err := h.feed.MarkAllRead(r.Context()); err != nil {
		WriteInternalError(w, "Failed to mark notifications read")
		return
	}
	WriteSuccess(w, map[string]string{"status": "read"}, nil)
}

// NotificationStream handles GET /admin/api/notifications/stream, an SSE
// stream of new inquiry events. Reconnecting clients replay missed events
// via the Last-Event-ID header.
func (h *Handler) NotificationStream() http.HandlerFunc {
	return h.broker.SSEHandler()
}

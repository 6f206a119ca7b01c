// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fgacademy/fga-cms/internal/middleware"
)

// PublicRoutes mounts the public site API under the given router. GET
// responses are cached; mutations through the admin API invalidate.
func (h *Handler) PublicRoutes(r chi.Router) {
	r.Use(h.CacheResponses)

	r.Get("/status", h.Status)

	r.Get("/homepage", h.Homepage)
	r.Get("/programs", h.ListPrograms)
	r.Get("/facilities", h.ListFacilities)
	r.Get("/values", h.ListValues)
	r.Get("/staff", h.ListStaff)
	r.Get("/admissions", h.Admissions)
	r.Get("/gallery", h.ListGallery)
	r.Get("/news", h.ListNews)
	r.Get("/news/{slug}", h.GetNews)
	r.Get("/events", h.ListEvents)
	r.Get("/content", h.ListSiteContent)

	r.Post("/inquiries/contact", h.SubmitContactInquiry)
	r.Post("/inquiries/admissions", h.SubmitAdmissionInquiry)
}

// AdminRoutes mounts the admin portal API under the given router. Every
// route except login sits behind the session gate.
func (h *Handler) AdminRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.login.Middleware())
		r.Post("/auth/login", h.Login)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin(h.sessions, h.gate.AdminEmail()))

		r.Post("/auth/logout", h.Logout)
		r.Get("/auth/me", h.Me)

		collections := []struct {
			path   string
			list   http.HandlerFunc
			save   http.HandlerFunc
			remove http.HandlerFunc
		}{
			{"/programs", h.ListPrograms, h.SaveProgram, h.DeleteProgram},
			{"/facilities", h.ListFacilities, h.SaveFacility, h.DeleteFacility},
			{"/slides", h.ListSlides, h.SaveSlide, h.DeleteSlide},
			{"/stats", h.ListStats, h.SaveStat, h.DeleteStat},
			{"/features", h.ListFeatures, h.SaveFeature, h.DeleteFeature},
			{"/values", h.ListValues, h.SaveValue, h.DeleteValue},
			{"/staff", h.ListStaff, h.SaveStaff, h.DeleteStaff},
			{"/steps", h.ListSteps, h.SaveStep, h.DeleteStep},
			{"/documents", h.ListDocuments, h.SaveDocument, h.DeleteDocument},
			{"/gallery", h.ListGallery, h.SaveGalleryItem, h.DeleteGalleryItem},
			{"/news", h.ListNewsAdmin, h.SaveNews, h.DeleteNews},
			{"/events", h.ListEvents, h.SaveEvent, h.DeleteEvent},
		}
		for _, c := range collections {
			r.Get(c.path, c.list)
			r.Post(c.path, c.save)
			r.Put(c.path+"/{id}", c.save)
			r.Delete(c.path+"/{id}", c.remove)
		}

		r.Get("/content", h.ListSiteContent)
		r.Put("/content", h.UpsertSiteContent)
		r.Delete("/content/{key}", h.DeleteSiteContent)

		r.Route("/inquiries", func(r chi.Router) {
			r.Get("/contact", h.ListContactInquiries)
			r.Get("/contact/export", h.ExportContactInquiries)
			r.Put("/contact/{id}/status", h.UpdateContactInquiryStatus)
			r.Delete("/contact/{id}", h.DeleteContactInquiry)

			r.Get("/admissions", h.ListAdmissionInquiries)
			r.Get("/admissions/export", h.ExportAdmissionInquiries)
			r.Put("/admissions/{id}/status", h.UpdateAdmissionInquiryStatus)
			r.Delete("/admissions/{id}", h.DeleteAdmissionInquiry)
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", h.Notifications)
			r.Get("/stream", h.NotificationStream())
			r.Post("/read-all", h.MarkAllNotificationsRead)
			r.Post("/{id}/read", h.MarkNotificationRead)
		})

		r.Get("/audit", h.ListAuditEvents)

		r.Get("/cache", h.CacheStats)
		r.Post("/cache/clear", h.ClearCache)
	})
}

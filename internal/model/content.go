// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Site content value types
const (
	ContentTypeText     = "text"
	ContentTypeTextarea = "textarea"
	ContentTypeHTML     = "html"
	ContentTypeURL      = "url"
	ContentTypeJSON     = "json"
)

// ValidContentType reports whether t is a known site content value type.
func ValidContentType(t string) bool {
	switch t {
	case ContentTypeText, ContentTypeTextarea, ContentTypeHTML, ContentTypeURL, ContentTypeJSON:
		return true
	}
	return false
}

// SiteContent is a generic keyed text field (mission statement, contact
// phone, page intro copy). Key is unique across the table; writes upsert
// on it.
type SiteContent struct {
	ID        string    `json:"id"`
	Section   string    `json:"section"`
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	Type      string    `json:"type"`
	UpdatedAt time.Time `json:"updated_at"`
}

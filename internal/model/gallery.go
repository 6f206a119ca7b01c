// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Gallery media types
const (
	MediaTypePhoto = "photo"
	MediaTypeVideo = "video"
)

// ValidMediaType reports whether t is a known gallery media type.
func ValidMediaType(t string) bool {
	return t == MediaTypePhoto || t == MediaTypeVideo
}

// GalleryItem is a photo or video entry in the public gallery. Media is
// referenced by external URL; there is no upload pipeline.
type GalleryItem struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	MediaURL  string    `json:"media_url"`
	MediaType string    `json:"media_type"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

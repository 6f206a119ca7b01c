// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// AcademicProgram represents one program level (Creche through JHS) shown on
// the Academics page. Features and Curriculum are stored as JSON arrays.
type AcademicProgram struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	AgeRange    string    `json:"age_range"`
	Icon        string    `json:"icon"`
	ColorFrom   string    `json:"color_from,omitempty"`
	ColorTo     string    `json:"color_to,omitempty"`
	BgColorFrom string    `json:"bg_color_from,omitempty"`
	BgColorTo   string    `json:"bg_color_to,omitempty"`
	Features    []string  `json:"features"`
	Curriculum  []string  `json:"curriculum,omitempty"`
	OrderIndex  int64     `json:"order_index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AcademicFacility represents a campus facility card on the Academics page.
type AcademicFacility struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	OrderIndex  int64     `json:"order_index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

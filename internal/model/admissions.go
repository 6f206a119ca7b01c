// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// AdmissionStep is one step of the enrollment process.
type AdmissionStep struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	OrderIndex  int64     `json:"order_index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RequiredDocument is a document applicants must submit.
type RequiredDocument struct {
	ID           string    `json:"id"`
	DocumentName string    `json:"document_name"`
	OrderIndex   int64     `json:"order_index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Audit event levels
const (
	AuditLevelInfo    = "info"
	AuditLevelWarning = "warning"
	AuditLevelError   = "error"
)

// Audit event categories
const (
	AuditCategoryAuth    = "auth"
	AuditCategoryContent = "content"
	AuditCategoryInquiry = "inquiry"
	AuditCategorySystem  = "system"
)

// AuditEvent is one admin-portal audit log entry.
type AuditEvent struct {
	ID        int64     `json:"id"`
	Level     string    `json:"level"`
	Category  string    `json:"category"`
	Message   string    `json:"message"`
	Actor     string    `json:"actor,omitempty"` // admin email, empty for system events
	Metadata  string    `json:"metadata"`        // JSON object
	CreatedAt time.Time `json:"created_at"`
}

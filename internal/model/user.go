// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines the flat content records served by the site and
// managed through the admin portal, along with their status constants.
package model

// AdminUser is the authenticated admin identity kept in the session.
// It is never persisted to a content table.
type AdminUser struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

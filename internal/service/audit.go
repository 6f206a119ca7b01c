// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service provides business logic shared by the HTTP handlers,
// including the audit trail and the generic collection manager.
package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"time"

	"github.com/fgacademy/fga-cms/internal/model"
	"github.com/fgacademy/fga-cms/internal/store"
)

// AuditService records admin and system activity to the audit trail.
type AuditService struct {
	queries *store.Queries
}

// NewAuditService creates a new AuditService.
func NewAuditService(db *sql.DB) *AuditService {
	return &AuditService{
		queries: store.New(db),
	}
}

// LogEvent creates a new audit trail entry.
func (s *AuditService) LogEvent(ctx context.Context, level, category, message, actor string, metadata map[string]any) error {
	metadataJSON := "{}"
	if metadata != nil {
		jsonBytes, err := json.Marshal(metadata)
		if err == nil {
			metadataJSON = string(jsonBytes)
		}
	}

	_, err := s.queries.CreateAuditEvent(ctx, store.CreateAuditEventParams{
		Level:     level,
		Category:  category,
		Message:   message,
		Actor:     actor,
		Metadata:  metadataJSON,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		log.Printf("Failed to log audit event: %v", err)
		return err
	}

	return nil
}

// LogInfo logs an info-level entry.
func (s *AuditService) LogInfo(ctx context.Context, category, message, actor string, metadata map[string]any) error {
	return s.LogEvent(ctx, model.AuditLevelInfo, category, message, actor, metadata)
}

// LogWarning logs a warning-level entry.
func (s *AuditService) LogWarning(ctx context.Context, category, message, actor string, metadata map[string]any) error {
	return s.LogEvent(ctx, model.AuditLevelWarning, category, message, actor, metadata)
}

// LogError logs an error-level entry.
func (s *AuditService) LogError(ctx context.Context, category, message, actor string, metadata map[string]any) error {
	return s.LogEvent(ctx, model.AuditLevelError, category, message, actor, metadata)
}

// List returns audit entries, newest first.
func (s *AuditService) List(ctx context.Context, limit, offset int64) ([]model.AuditEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.queries.ListAuditEvents(ctx, limit, offset)
}

// Prune deletes entries older than the retention window.
func (s *AuditService) Prune(ctx context.Context, retentionDays int) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays)
	return s.queries.PruneAuditEvents(ctx, cutoff)
}

// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/fgacademy/fga-cms/internal/model"
)

// CreateAuditEventParams holds one audit log entry.
type CreateAuditEventParams struct {
	Level     string
	Category  string
	Message   string
	Actor     string
	Metadata  string
	CreatedAt time.Time
}

// CreateAuditEvent appends an entry to the audit log.
func (q *Queries) CreateAuditEvent(ctx context.Context, arg CreateAuditEventParams) (int64, error) {
	if arg.CreatedAt.IsZero() {
		arg.CreatedAt = time.Now().UTC()
	}
	if arg.Metadata == "" {
		arg.Metadata = "{}"
	}

	res, err := q.db.ExecContext(ctx, `
		INSERT INTO audit_events (level, category, message, actor, metadata, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		arg.Level, arg.Category, arg.Message, arg.Actor, arg.Metadata, arg.CreatedAt)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListAuditEvents returns audit entries, newest first.
func (q *Queries) ListAuditEvents(ctx context.Context, limit, offset int64) ([]model.AuditEvent, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT id, level, category, message, actor, metadata, created_at
		FROM audit_events ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`,
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []model.AuditEvent{}
	for rows.Next() {
		var e model.AuditEvent
		if err := rows.Scan(&e.ID, &e.Level, &e.Category, &e.Message,
			&e.Actor, &e.Metadata, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// CountAuditEvents returns the total number of audit entries.
func (q *Queries) CountAuditEvents(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM audit_events`).Scan(&count)
	return count, err
}

// PruneAuditEvents deletes entries older than the cutoff and reports how
// many were removed.
func (q *Queries) PruneAuditEvents(ctx context.Context, before time.Time) (int64, error) {
	res, err := q.db.ExecContext(ctx, `DELETE FROM audit_events WHERE created_at < ?`, before)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

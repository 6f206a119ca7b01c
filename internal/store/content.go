// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/fgacademy/fga-cms/internal/model"
)

// UpsertSiteContentParams holds one keyed site text field.
type UpsertSiteContentParams struct {
	Section string
	Key     string
	Value   string
	Type    string
}

// UpsertSiteContent inserts or updates a site content field, keyed by the
// unique content key.
func (q *Queries) UpsertSiteContent(ctx context.Context, arg UpsertSiteContentParams) (model.SiteContent, error) {
	c := model.SiteContent{
		ID:        newID(),
		Section:   arg.Section,
		Key:       arg.Key,
		Value:     arg.Value,
		Type:      arg.Type,
		UpdatedAt: time.Now().UTC(),
	}

	err := q.db.QueryRowContext(ctx, `
		INSERT INTO site_content (id, section, key, value, type, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			section = excluded.section,
			value = excluded.value,
			type = excluded.type,
			updated_at = excluded.updated_at
		RETURNING id`,
		c.ID, c.Section, c.Key, c.Value, c.Type, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		return model.SiteContent{}, err
	}
	return c, nil
}

// GetSiteContentByKey fetches one content field.
func (q *Queries) GetSiteContentByKey(ctx context.Context, key string) (model.SiteContent, error) {
	var c model.SiteContent
	err := q.db.QueryRowContext(ctx, `
		SELECT id, section, key, value, type, updated_at
		FROM site_content WHERE key = ?`, key).
		Scan(&c.ID, &c.Section, &c.Key, &c.Value, &c.Type, &c.UpdatedAt)
	return c, err
}

// DeleteSiteContent removes a content field by key.
func (q *Queries) DeleteSiteContent(ctx context.Context, key string) error {
	return rowsAffected(q.db.ExecContext(ctx, `DELETE FROM site_content WHERE key = ?`, key))
}

// ListSiteContent returns all content fields grouped by section.
func (q *Queries) ListSiteContent(ctx context.Context) ([]model.SiteContent, error) {
	return q.listSiteContent(ctx, "")
}

// ListSiteContentBySection returns the content fields of one section.
func (q *Queries) ListSiteContentBySection(ctx context.Context, section string) ([]model.SiteContent, error) {
	return q.listSiteContent(ctx, section)
}

func (q *Queries) listSiteContent(ctx context.Context, section string) ([]model.SiteContent, error) {
	query := `SELECT id, section, key, value, type, updated_at FROM site_content`
	args := []any{}
	if section != "" {
		query += ` WHERE section = ?`
		args = append(args, section)
	}
	query += ` ORDER BY section ASC, key ASC`

	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fields := []model.SiteContent{}
	for rows.Next() {
		var c model.SiteContent
		if err := rows.Scan(&c.ID, &c.Section, &c.Key, &c.Value, &c.Type, &c.UpdatedAt); err != nil {
			return nil, err
		}
		fields = append(fields, c)
	}
	return fields, rows.Err()
}

// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/fgacademy/fga-cms/internal/model"
)

// CreateGalleryItemParams holds the fields for a new gallery entry.
type CreateGalleryItemParams struct {
	Title     string
	MediaURL  string
	MediaType string
	Category  string
}

// CreateGalleryItem inserts a gallery entry.
func (q *Queries) CreateGalleryItem(ctx context.Context, arg CreateGalleryItemParams) (model.GalleryItem, error) {
	item := model.GalleryItem{
		ID:        newID(),
		Title:     arg.Title,
		MediaURL:  arg.MediaURL,
		MediaType: arg.MediaType,
		Category:  arg.Category,
		CreatedAt: time.Now().UTC(),
	}

	_, err := q.db.ExecContext(ctx, `
		INSERT INTO gallery_items (id, title, media_url, media_type, category, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		item.ID, item.Title, item.MediaURL, item.MediaType, item.Category, item.CreatedAt)
	if err != nil {
		return model.GalleryItem{}, err
	}
	return item, nil
}

// UpdateGalleryItemParams holds the full record for an update keyed by ID.
type UpdateGalleryItemParams struct {
	ID        string
	Title     string
	MediaURL  string
	MediaType string
	Category  string
}

// UpdateGalleryItem performs a full-record update keyed by id.
func (q *Queries) UpdateGalleryItem(ctx context.Context, arg UpdateGalleryItemParams) error {
	return rowsAffected(q.db.ExecContext(ctx, `
		UPDATE gallery_items SET title = ?, media_url = ?, media_type = ?, category = ? WHERE id = ?`,
		arg.Title, arg.MediaURL, arg.MediaType, arg.Category, arg.ID))
}

// DeleteGalleryItem deletes a gallery entry by id.
func (q *Queries) DeleteGalleryItem(ctx context.Context, id string) error {
	return rowsAffected(q.db.ExecContext(ctx, `DELETE FROM gallery_items WHERE id = ?`, id))
}

// ListGalleryItems returns all gallery entries, newest first.
func (q *Queries) ListGalleryItems(ctx context.Context) ([]model.GalleryItem, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT id, title, media_url, media_type, category, created_at
		FROM gallery_items ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []model.GalleryItem{}
	for rows.Next() {
		var item model.GalleryItem
		if err := rows.Scan(&item.ID, &item.Title, &item.MediaURL,
			&item.MediaType, &item.Category, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

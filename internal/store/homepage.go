// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/fgacademy/fga-cms/internal/model"
)

// CreateCarouselSlideParams holds the fields for a new carousel slide.
type CreateCarouselSlideParams struct {
	Title       string
	Description string
	ImageURL    string
}

// CreateCarouselSlide inserts a slide at the end of the display order.
func (q *Queries) CreateCarouselSlide(ctx context.Context, arg CreateCarouselSlideParams) (model.CarouselSlide, error) {
	s := model.CarouselSlide{
		ID:          newID(),
		Title:       arg.Title,
		Description: arg.Description,
		ImageURL:    arg.ImageURL,
		CreatedAt:   time.Now().UTC(),
	}
	s.UpdatedAt = s.CreatedAt

	err := q.db.QueryRowContext(ctx, `
		INSERT INTO carousel_slides (id, title, description, image_url, order_index, created_at, updated_at)
		VALUES (?, ?, ?, ?, (SELECT COALESCE(MAX(order_index) + 1, 0) FROM carousel_slides), ?, ?)
		RETURNING order_index`,
		s.ID, s.Title, s.Description, s.ImageURL, s.CreatedAt, s.UpdatedAt,
	).Scan(&s.OrderIndex)
	if err != nil {
		return model.CarouselSlide{}, err
	}
	return s, nil
}

// UpdateCarouselSlideParams holds the full record for an update keyed by ID.
type UpdateCarouselSlideParams struct {
	ID          string
	Title       string
	Description string
	ImageURL    string
	OrderIndex  int64
}

// UpdateCarouselSlide performs a full-record update keyed by id.
func (q *Queries) UpdateCarouselSlide(ctx context.Context, arg UpdateCarouselSlideParams) error {
	return rowsAffected(q.db.ExecContext(ctx, `
		UPDATE carousel_slides
		SET title = ?, description = ?, image_url = ?, order_index = ?, updated_at = ?
		WHERE id = ?`,
		arg.Title, arg.Description, arg.ImageURL, arg.OrderIndex, time.Now().UTC(), arg.ID))
}

// DeleteCarouselSlide deletes a slide by id.
func (q *Queries) DeleteCarouselSlide(ctx context.Context, id string) error {
	return rowsAffected(q.db.ExecContext(ctx, `DELETE FROM carousel_slides WHERE id = ?`, id))
}

// ListCarouselSlides returns all slides ordered for display.
func (q *Queries) ListCarouselSlides(ctx context.Context) ([]model.CarouselSlide, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT id, title, description, image_url, order_index, created_at, updated_at
		FROM carousel_slides ORDER BY order_index ASC, created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	slides := []model.CarouselSlide{}
	for rows.Next() {
		var s model.CarouselSlide
		if err := rows.Scan(&s.ID, &s.Title, &s.Description, &s.ImageURL,
			&s.OrderIndex, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		slides = append(slides, s)
	}
	return slides, rows.Err()
}

// CreateHomepageStatParams holds the fields for a new homepage stat.
type CreateHomepageStatParams struct {
	Value string
	Label string
}

// CreateHomepageStat inserts a stat at the end of the display order.
func (q *Queries) CreateHomepageStat(ctx context.Context, arg CreateHomepageStatParams) (model.HomepageStat, error) {
	s := model.HomepageStat{
		ID:        newID(),
		Value:     arg.Value,
		Label:     arg.Label,
		CreatedAt: time.Now().UTC(),
	}
	s.UpdatedAt = s.CreatedAt

	err := q.db.QueryRowContext(ctx, `
		INSERT INTO homepage_stats (id, value, label, order_index, created_at, updated_at)
		VALUES (?, ?, ?, (SELECT COALESCE(MAX(order_index) + 1, 0) FROM homepage_stats), ?, ?)
		RETURNING order_index`,
		s.ID, s.Value, s.Label, s.CreatedAt, s.UpdatedAt,
	).Scan(&s.OrderIndex)
	if err != nil {
		return model.HomepageStat{}, err
	}
	return s, nil
}

// UpdateHomepageStatParams holds the full record for an update keyed by ID.
type UpdateHomepageStatParams struct {
	ID         string
	Value      string
	Label      string
	OrderIndex int64
}

// UpdateHomepageStat performs a full-record update keyed by id.
func (q *Queries) UpdateHomepageStat(ctx context.Context, arg UpdateHomepageStatParams) error {
	return rowsAffected(q.db.ExecContext(ctx, `
		UPDATE homepage_stats SET value = ?, label = ?, order_index = ?, updated_at = ? WHERE id = ?`,
		arg.Value, arg.Label, arg.OrderIndex, time.Now().UTC(), arg.ID))
}

// DeleteHomepageStat deletes a stat by id.
func (q *Queries) DeleteHomepageStat(ctx context.Context, id string) error {
	return rowsAffected(q.db.ExecContext(ctx, `DELETE FROM homepage_stats WHERE id = ?`, id))
}

// ListHomepageStats returns all stats ordered for display.
func (q *Queries) ListHomepageStats(ctx context.Context) ([]model.HomepageStat, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT id, value, label, order_index, created_at, updated_at
		FROM homepage_stats ORDER BY order_index ASC, created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []model.HomepageStat{}
	for rows.Next() {
		var s model.HomepageStat
		if err := rows.Scan(&s.ID, &s.Value, &s.Label, &s.OrderIndex, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

// CreateHomepageFeatureParams holds the fields for a new homepage feature.
type CreateHomepageFeatureParams struct {
	Icon        string
	Title       string
	Description string
}

// CreateHomepageFeature inserts a feature at the end of the display order.
func (q *Queries) CreateHomepageFeature(ctx context.Context, arg CreateHomepageFeatureParams) (model.HomepageFeature, error) {
	f := model.HomepageFeature{
		ID:          newID(),
		Icon:        arg.Icon,
		Title:       arg.Title,
		Description: arg.Description,
		CreatedAt:   time.Now().UTC(),
	}
	f.UpdatedAt = f.CreatedAt

	err := q.db.QueryRowContext(ctx, `
		INSERT INTO homepage_features (id, icon, title, description, order_index, created_at, updated_at)
		VALUES (?, ?, ?, ?, (SELECT COALESCE(MAX(order_index) + 1, 0) FROM homepage_features), ?, ?)
		RETURNING order_index`,
		f.ID, f.Icon, f.Title, f.Description, f.CreatedAt, f.UpdatedAt,
	).Scan(&f.OrderIndex)
	if err != nil {
		return model.HomepageFeature{}, err
	}
	return f, nil
}

// UpdateHomepageFeatureParams holds the full record for an update keyed by ID.
type UpdateHomepageFeatureParams struct {
	ID          string
	Icon        string
	Title       string
	Description string
	OrderIndex  int64
}

// UpdateHomepageFeature performs a full-record update keyed by id.
func (q *Queries) UpdateHomepageFeature(ctx context.Context, arg UpdateHomepageFeatureParams) error {
	return rowsAffected(q.db.ExecContext(ctx, `
		UPDATE homepage_features
		SET icon = ?, title = ?, description = ?, order_index = ?, updated_at = ?
		WHERE id = ?`,
		arg.Icon, arg.Title, arg.Description, arg.OrderIndex, time.Now().UTC(), arg.ID))
}

// DeleteHomepageFeature deletes a feature by id.
func (q *Queries) DeleteHomepageFeature(ctx context.Context, id string) error {
	return rowsAffected(q.db.ExecContext(ctx, `DELETE FROM homepage_features WHERE id = ?`, id))
}

// ListHomepageFeatures returns all features ordered for display.
func (q *Queries) ListHomepageFeatures(ctx context.Context) ([]model.HomepageFeature, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT id, icon, title, description, order_index, created_at, updated_at
		FROM homepage_features ORDER BY order_index ASC, created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	features := []model.HomepageFeature{}
	for rows.Next() {
		var f model.HomepageFeature
		if err := rows.Scan(&f.ID, &f.Icon, &f.Title, &f.Description,
			&f.OrderIndex, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		features = append(features, f)
	}
	return features, rows.Err()
}

// CreateCoreValueParams holds the fields for a new core value.
type CreateCoreValueParams struct {
	Title       string
	Description string
	Icon        string
}

// CreateCoreValue inserts a core value at the end of the display order.
func (q *Queries) CreateCoreValue(ctx context.Context, arg CreateCoreValueParams) (model.CoreValue, error) {
	v := model.CoreValue{
		ID:          newID(),
		Title:       arg.Title,
		Description: arg.Description,
		Icon:        arg.Icon,
		CreatedAt:   time.Now().UTC(),
	}
	v.UpdatedAt = v.CreatedAt

	err := q.db.QueryRowContext(ctx, `
		INSERT INTO core_values (id, title, description, icon, order_index, created_at, updated_at)
		VALUES (?, ?, ?, ?, (SELECT COALESCE(MAX(order_index) + 1, 0) FROM core_values), ?, ?)
		RETURNING order_index`,
		v.ID, v.Title, v.Description, v.Icon, v.CreatedAt, v.UpdatedAt,
	).Scan(&v.OrderIndex)
	if err != nil {
		return model.CoreValue{}, err
	}
	return v, nil
}

// UpdateCoreValueParams holds the full record for an update keyed by ID.
type UpdateCoreValueParams struct {
	ID          string
	Title       string
	Description string
	Icon        string
	OrderIndex  int64
}

// UpdateCoreValue performs a full-record update keyed by id.
func (q *Queries) UpdateCoreValue(ctx context.Context, arg UpdateCoreValueParams) error {
	return rowsAffected(q.db.ExecContext(ctx, `
		UPDATE core_values
		SET title = ?, description = ?, icon = ?, order_index = ?, updated_at = ?
		WHERE id = ?`,
		arg.Title, arg.Description, arg.Icon, arg.OrderIndex, time.Now().UTC(), arg.ID))
}

// DeleteCoreValue deletes a core value by id.
func (q *Queries) DeleteCoreValue(ctx context.Context, id string) error {
	return rowsAffected(q.db.ExecContext(ctx, `DELETE FROM core_values WHERE id = ?`, id))
}

// ListCoreValues returns all core values ordered for display.
func (q *Queries) ListCoreValues(ctx context.Context) ([]model.CoreValue, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT id, title, description, icon, order_index, created_at, updated_at
		FROM core_values ORDER BY order_index ASC, created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := []model.CoreValue{}
	for rows.Next() {
		var v model.CoreValue
		if err := rows.Scan(&v.ID, &v.Title, &v.Description, &v.Icon,
			&v.OrderIndex, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

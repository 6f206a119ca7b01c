// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/fgacademy/fga-cms/internal/model"
)

// CreateNewsPostParams holds the fields for a new news post.
type CreateNewsPostParams struct {
	Title         string
	Slug          string
	Excerpt       string
	Content       string
	ImageURL      string
	PublishedDate string
}

// CreateNewsPost inserts a news post.
func (q *Queries) CreateNewsPost(ctx context.Context, arg CreateNewsPostParams) (model.NewsPost, error) {
	p := model.NewsPost{
		ID:            newID(),
		Title:         arg.Title,
		Slug:          arg.Slug,
		Excerpt:       arg.Excerpt,
		Content:       arg.Content,
		ImageURL:      arg.ImageURL,
		PublishedDate: arg.PublishedDate,
		CreatedAt:     time.Now().UTC(),
	}
	p.UpdatedAt = p.CreatedAt

	_, err := q.db.ExecContext(ctx, `
		INSERT INTO news_posts (id, title, slug, excerpt, content, image_url, published_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Title, p.Slug, p.Excerpt, p.Content, nullString(p.ImageURL),
		p.PublishedDate, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return model.NewsPost{}, err
	}
	return p, nil
}

// UpdateNewsPostParams holds the full record for an update keyed by ID.
type UpdateNewsPostParams struct {
	ID            string
	Title         string
	Slug          string
	Excerpt       string
	Content       string
	ImageURL      string
	PublishedDate string
}

// UpdateNewsPost performs a full-record update keyed by id.
func (q *Queries) UpdateNewsPost(ctx context.Context, arg UpdateNewsPostParams) error {
	return rowsAffected(q.db.ExecContext(ctx, `
		UPDATE news_posts
		SET title = ?, slug = ?, excerpt = ?, content = ?, image_url = ?, published_date = ?, updated_at = ?
		WHERE id = ?`,
		arg.Title, arg.Slug, arg.Excerpt, arg.Content, nullString(arg.ImageURL),
		arg.PublishedDate, time.Now().UTC(), arg.ID))
}

// DeleteNewsPost deletes a news post by id.
func (q *Queries) DeleteNewsPost(ctx context.Context, id string) error {
	return rowsAffected(q.db.ExecContext(ctx, `DELETE FROM news_posts WHERE id = ?`, id))
}

// GetNewsPostByID fetches one news post.
func (q *Queries) GetNewsPostByID(ctx context.Context, id string) (model.NewsPost, error) {
	row := q.db.QueryRowContext(ctx, `
		SELECT id, title, slug, excerpt, content, image_url, published_date, created_at, updated_at
		FROM news_posts WHERE id = ?`, id)
	return scanNewsPost(row)
}

// GetNewsPostBySlug fetches one news post by slug.
func (q *Queries) GetNewsPostBySlug(ctx context.Context, slug string) (model.NewsPost, error) {
	row := q.db.QueryRowContext(ctx, `
		SELECT id, title, slug, excerpt, content, image_url, published_date, created_at, updated_at
		FROM news_posts WHERE slug = ?`, slug)
	return scanNewsPost(row)
}

// NewsSlugExists reports whether a post other than excludeID uses the slug.
func (q *Queries) NewsSlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	var count int64
	err := q.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM news_posts WHERE slug = ? AND id != ?`, slug, excludeID).Scan(&count)
	return count > 0, err
}

// CountEvents returns the total number of events.
func (q *Queries) CountEvents(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&count)
	return count, err
}

// ListNewsPosts returns all posts, most recently published first.
func (q *Queries) ListNewsPosts(ctx context.Context) ([]model.NewsPost, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT id, title, slug, excerpt, content, image_url, published_date, created_at, updated_at
		FROM news_posts ORDER BY published_date DESC, created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []model.NewsPost{}
	for rows.Next() {
		p, err := scanNewsPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func scanNewsPost(row rowScanner) (model.NewsPost, error) {
	var p model.NewsPost
	var imageURL sql.NullString
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content,
		&imageURL, &p.PublishedDate, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return model.NewsPost{}, err
	}
	p.ImageURL = imageURL.String
	return p, nil
}

// CreateEventParams holds the fields for a new event.
type CreateEventParams struct {
	Title       string
	Description string
	EventDate   string
	Location    string
	ImageURL    string
}

// CreateEvent inserts an event.
func (q *Queries) CreateEvent(ctx context.Context, arg CreateEventParams) (model.Event, error) {
	e := model.Event{
		ID:          newID(),
		Title:       arg.Title,
		Description: arg.Description,
		EventDate:   arg.EventDate,
		Location:    arg.Location,
		ImageURL:    arg.ImageURL,
		CreatedAt:   time.Now().UTC(),
	}
	e.UpdatedAt = e.CreatedAt

	_, err := q.db.ExecContext(ctx, `
		INSERT INTO events (id, title, description, event_date, location, image_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Title, e.Description, e.EventDate, e.Location, nullString(e.ImageURL),
		e.CreatedAt, e.UpdatedAt)
	if err != nil {
		return model.Event{}, err
	}
	return e, nil
}

// UpdateEventParams holds the full record for an update keyed by ID.
type UpdateEventParams struct {
	ID          string
	Title       string
	Description string
	EventDate   string
	Location    string
	ImageURL    string
}

// UpdateEvent performs a full-record update keyed by id.
func (q *Queries) UpdateEvent(ctx context.Context, arg UpdateEventParams) error {
	return rowsAffected(q.db.ExecContext(ctx, `
		UPDATE events
		SET title = ?, description = ?, event_date = ?, location = ?, image_url = ?, updated_at = ?
		WHERE id = ?`,
		arg.Title, arg.Description, arg.EventDate, arg.Location, nullString(arg.ImageURL),
		time.Now().UTC(), arg.ID))
}

// DeleteEvent deletes an event by id.
func (q *Queries) DeleteEvent(ctx context.Context, id string) error {
	return rowsAffected(q.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id))
}

// GetEventByID fetches one event.
func (q *Queries) GetEventByID(ctx context.Context, id string) (model.Event, error) {
	row := q.db.QueryRowContext(ctx, `
		SELECT id, title, description, event_date, location, image_url, created_at, updated_at
		FROM events WHERE id = ?`, id)
	return scanEvent(row)
}

// ListEvents returns all events, soonest first.
func (q *Queries) ListEvents(ctx context.Context) ([]model.Event, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT id, title, description, event_date, location, image_url, created_at, updated_at
		FROM events ORDER BY event_date ASC, created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []model.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func scanEvent(row rowScanner) (model.Event, error) {
	var e model.Event
	var imageURL sql.NullString
	err := row.Scan(&e.ID, &e.Title, &e.Description, &e.EventDate,
		&e.Location, &imageURL, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return model.Event{}, err
	}
	e.ImageURL = imageURL.String
	return e, nil
}

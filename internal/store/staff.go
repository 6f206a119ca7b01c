// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/fgacademy/fga-cms/internal/model"
)

// CreateStaffMemberParams holds the fields for a new staff profile.
type CreateStaffMemberParams struct {
	Name     string
	Position string
	ImageURL string
	Bio      string
}

// CreateStaffMember inserts a staff profile at the end of the display order.
func (q *Queries) CreateStaffMember(ctx context.Context, arg CreateStaffMemberParams) (model.StaffMember, error) {
	m := model.StaffMember{
		ID:        newID(),
		Name:      arg.Name,
		Position:  arg.Position,
		ImageURL:  arg.ImageURL,
		Bio:       arg.Bio,
		CreatedAt: time.Now().UTC(),
	}
	m.UpdatedAt = m.CreatedAt

	err := q.db.QueryRowContext(ctx, `
		INSERT INTO staff_members (id, name, position, image_url, bio, order_index, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, (SELECT COALESCE(MAX(order_index) + 1, 0) FROM staff_members), ?, ?)
		RETURNING order_index`,
		m.ID, m.Name, m.Position, m.ImageURL, m.Bio, m.CreatedAt, m.UpdatedAt,
	).Scan(&m.OrderIndex)
	if err != nil {
		return model.StaffMember{}, err
	}
	return m, nil
}

// UpdateStaffMemberParams holds the full record for an update keyed by ID.
type UpdateStaffMemberParams struct {
	ID         string
	Name       string
	Position   string
	ImageURL   string
	Bio        string
	OrderIndex int64
}

// UpdateStaffMember performs a full-record update keyed by id.
func (q *Queries) UpdateStaffMember(ctx context.Context, arg UpdateStaffMemberParams) error {
	return rowsAffected(q.db.ExecContext(ctx, `
		UPDATE staff_members
		SET name = ?, position = ?, image_url = ?, bio = ?, order_index = ?, updated_at = ?
		WHERE id = ?`,
		arg.Name, arg.Position, arg.ImageURL, arg.Bio, arg.OrderIndex, time.Now().UTC(), arg.ID))
}

// DeleteStaffMember deletes a staff profile by id. Nothing references staff
// by id, so no cascade is needed.
func (q *Queries) DeleteStaffMember(ctx context.Context, id string) error {
	return rowsAffected(q.db.ExecContext(ctx, `DELETE FROM staff_members WHERE id = ?`, id))
}

// GetStaffMemberByID fetches one staff profile.
func (q *Queries) GetStaffMemberByID(ctx context.Context, id string) (model.StaffMember, error) {
	var m model.StaffMember
	err := q.db.QueryRowContext(ctx, `
		SELECT id, name, position, image_url, bio, order_index, created_at, updated_at
		FROM staff_members WHERE id = ?`, id).
		Scan(&m.ID, &m.Name, &m.Position, &m.ImageURL, &m.Bio,
			&m.OrderIndex, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

// ListStaffMembers returns all staff profiles ordered for display.
func (q *Queries) ListStaffMembers(ctx context.Context) ([]model.StaffMember, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT id, name, position, image_url, bio, order_index, created_at, updated_at
		FROM staff_members ORDER BY order_index ASC, created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []model.StaffMember{}
	for rows.Next() {
		var m model.StaffMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Position, &m.ImageURL, &m.Bio,
			&m.OrderIndex, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

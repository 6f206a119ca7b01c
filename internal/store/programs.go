// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/fgacademy/fga-cms/internal/model"
)

// CreateAcademicProgramParams holds the fields for a new academic program.
type CreateAcademicProgramParams struct {
	Name        string
	Description string
	AgeRange    string
	Icon        string
	ColorFrom   string
	ColorTo     string
	BgColorFrom string
	BgColorTo   string
	Features    []string
	Curriculum  []string
}

// CreateAcademicProgram inserts a program at the end of the display order.
// The order index is assigned inside the INSERT so concurrent creators
// cannot collide.
func (q *Queries) CreateAcademicProgram(ctx context.Context, arg CreateAcademicProgramParams) (model.AcademicProgram, error) {
	p := model.AcademicProgram{
		ID:          newID(),
		Name:        arg.Name,
		Description: arg.Description,
		AgeRange:    arg.AgeRange,
		Icon:        arg.Icon,
		ColorFrom:   arg.ColorFrom,
		ColorTo:     arg.ColorTo,
		BgColorFrom: arg.BgColorFrom,
		BgColorTo:   arg.BgColorTo,
		Features:    arg.Features,
		Curriculum:  arg.Curriculum,
		CreatedAt:   time.Now().UTC(),
	}
	p.UpdatedAt = p.CreatedAt

	err := q.db.QueryRowContext(ctx, `
		INSERT INTO academic_programs (id, name, description, age_range, icon,
			color_from, color_to, bg_color_from, bg_color_to, features, curriculum,
			order_index, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?,
			(SELECT COALESCE(MAX(order_index) + 1, 0) FROM academic_programs), ?, ?)
		RETURNING order_index`,
		p.ID, p.Name, p.Description, p.AgeRange, p.Icon,
		p.ColorFrom, p.ColorTo, p.BgColorFrom, p.BgColorTo,
		marshalStrings(p.Features), marshalStrings(p.Curriculum),
		p.CreatedAt, p.UpdatedAt,
	).Scan(&p.OrderIndex)
	if err != nil {
		return model.AcademicProgram{}, err
	}
	return p, nil
}

// UpdateAcademicProgramParams holds the full record for an update keyed by ID.
type UpdateAcademicProgramParams struct {
	ID          string
	Name        string
	Description string
	AgeRange    string
	Icon        string
	ColorFrom   string
	ColorTo     string
	BgColorFrom string
	BgColorTo   string
	Features    []string
	Curriculum  []string
	OrderIndex  int64
}

// UpdateAcademicProgram performs a full-record update keyed by id.
func (q *Queries) UpdateAcademicProgram(ctx context.Context, arg UpdateAcademicProgramParams) error {
	return rowsAffected(q.db.ExecContext(ctx, `
		UPDATE academic_programs
		SET name = ?, description = ?, age_range = ?, icon = ?,
			color_from = ?, color_to = ?, bg_color_from = ?, bg_color_to = ?,
			features = ?, curriculum = ?, order_index = ?, updated_at = ?
		WHERE id = ?`,
		arg.Name, arg.Description, arg.AgeRange, arg.Icon,
		arg.ColorFrom, arg.ColorTo, arg.BgColorFrom, arg.BgColorTo,
		marshalStrings(arg.Features), marshalStrings(arg.Curriculum),
		arg.OrderIndex, time.Now().UTC(), arg.ID))
}

// DeleteAcademicProgram deletes a program by id.
func (q *Queries) DeleteAcademicProgram(ctx context.Context, id string) error {
	return rowsAffected(q.db.ExecContext(ctx, `DELETE FROM academic_programs WHERE id = ?`, id))
}

// GetAcademicProgramByID fetches one program.
func (q *Queries) GetAcademicProgramByID(ctx context.Context, id string) (model.AcademicProgram, error) {
	row := q.db.QueryRowContext(ctx, `
		SELECT id, name, description, age_range, icon, color_from, color_to,
			bg_color_from, bg_color_to, features, curriculum, order_index,
			created_at, updated_at
		FROM academic_programs WHERE id = ?`, id)
	return scanAcademicProgram(row)
}

// ListAcademicPrograms returns all programs ordered for display.
func (q *Queries) ListAcademicPrograms(ctx context.Context) ([]model.AcademicProgram, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT id, name, description, age_range, icon, color_from, color_to,
			bg_color_from, bg_color_to, features, curriculum, order_index,
			created_at, updated_at
		FROM academic_programs ORDER BY order_index ASC, created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	programs := []model.AcademicProgram{}
	for rows.Next() {
		p, err := scanAcademicProgram(rows)
		if err != nil {
			return nil, err
		}
		programs = append(programs, p)
	}
	return programs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAcademicProgram(row rowScanner) (model.AcademicProgram, error) {
	var p model.AcademicProgram
	var features, curriculum string
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.AgeRange, &p.Icon,
		&p.ColorFrom, &p.ColorTo, &p.BgColorFrom, &p.BgColorTo,
		&features, &curriculum, &p.OrderIndex, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return model.AcademicProgram{}, err
	}
	p.Features = unmarshalStrings(features)
	p.Curriculum = unmarshalStrings(curriculum)
	return p, nil
}

// CreateAcademicFacilityParams holds the fields for a new facility.
type CreateAcademicFacilityParams struct {
	Title       string
	Description string
	Icon        string
}

// CreateAcademicFacility inserts a facility at the end of the display order.
func (q *Queries) CreateAcademicFacility(ctx context.Context, arg CreateAcademicFacilityParams) (model.AcademicFacility, error) {
	f := model.AcademicFacility{
		ID:          newID(),
		Title:       arg.Title,
		Description: arg.Description,
		Icon:        arg.Icon,
		CreatedAt:   time.Now().UTC(),
	}
	f.UpdatedAt = f.CreatedAt

	err := q.db.QueryRowContext(ctx, `
		INSERT INTO academic_facilities (id, title, description, icon, order_index, created_at, updated_at)
		VALUES (?, ?, ?, ?, (SELECT COALESCE(MAX(order_index) + 1, 0) FROM academic_facilities), ?, ?)
		RETURNING order_index`,
		f.ID, f.Title, f.Description, f.Icon, f.CreatedAt, f.UpdatedAt,
	).Scan(&f.OrderIndex)
	if err != nil {
		return model.AcademicFacility{}, err
	}
	return f, nil
}

// UpdateAcademicFacilityParams holds the full record for an update keyed by ID.
type UpdateAcademicFacilityParams struct {
	ID          string
	Title       string
	Description string
	Icon        string
	OrderIndex  int64
}

// UpdateAcademicFacility performs a full-record update keyed by id.
func (q *Queries) UpdateAcademicFacility(ctx context.Context, arg UpdateAcademicFacilityParams) error {
	return rowsAffected(q.db.ExecContext(ctx, `
		UPDATE academic_facilities
		SET title = ?, description = ?, icon = ?, order_index = ?, updated_at = ?
		WHERE id = ?`,
		arg.Title, arg.Description, arg.Icon, arg.OrderIndex, time.Now().UTC(), arg.ID))
}

// DeleteAcademicFacility deletes a facility by id.
func (q *Queries) DeleteAcademicFacility(ctx context.Context, id string) error {
	return rowsAffected(q.db.ExecContext(ctx, `DELETE FROM academic_facilities WHERE id = ?`, id))
}

// ListAcademicFacilities returns all facilities ordered for display.
func (q *Queries) ListAcademicFacilities(ctx context.Context) ([]model.AcademicFacility, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT id, title, description, icon, order_index, created_at, updated_at
		FROM academic_facilities ORDER BY order_index ASC, created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	facilities := []model.AcademicFacility{}
	for rows.Next() {
		var f model.AcademicFacility
		if err := rows.Scan(&f.ID, &f.Title, &f.Description, &f.Icon,
			&f.OrderIndex, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		facilities = append(facilities, f)
	}
	return facilities, rows.Err()
}

// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/fgacademy/fga-cms/internal/model"
)

// CreateAdmissionStepParams holds the fields for a new admission step.
type CreateAdmissionStepParams struct {
	Title       string
	Description string
	Icon        string
}

// CreateAdmissionStep inserts a step at the end of the display order.
func (q *Queries) CreateAdmissionStep(ctx context.Context, arg CreateAdmissionStepParams) (model.AdmissionStep, error) {
	s := model.AdmissionStep{
		ID:          newID(),
		Title:       arg.Title,
		Description: arg.Description,
		Icon:        arg.Icon,
		CreatedAt:   time.Now().UTC(),
	}
	s.UpdatedAt = s.CreatedAt

	err := q.db.QueryRowContext(ctx, `
		INSERT INTO admission_steps (id, title, description, icon, order_index, created_at, updated_at)
		VALUES (?, ?, ?, ?, (SELECT COALESCE(MAX(order_index) + 1, 0) FROM admission_steps), ?, ?)
		RETURNING order_index`,
		s.ID, s.Title, s.Description, s.Icon, s.CreatedAt, s.UpdatedAt,
	).Scan(&s.OrderIndex)
	if err != nil {
		return model.AdmissionStep{}, err
	}
	return s, nil
}

// UpdateAdmissionStepParams holds the full record for an update keyed by ID.
type UpdateAdmissionStepParams struct {
	ID          string
	Title       string
	Description string
	Icon        string
	OrderIndex  int64
}

// UpdateAdmissionStep performs a full-record update keyed by id.
func (q *Queries) UpdateAdmissionStep(ctx context.Context, arg UpdateAdmissionStepParams) error {
	return rowsAffected(q.db.ExecContext(ctx, `
		UPDATE admission_steps
		SET title = ?, description = ?, icon = ?, order_index = ?, updated_at = ?
		WHERE id = ?`,
		arg.Title, arg.Description, arg.Icon, arg.OrderIndex, time.Now().UTC(), arg.ID))
}

// DeleteAdmissionStep deletes a step by id.
func (q *Queries) DeleteAdmissionStep(ctx context.Context, id string) error {
	return rowsAffected(q.db.ExecContext(ctx, `DELETE FROM admission_steps WHERE id = ?`, id))
}

// ListAdmissionSteps returns all steps ordered for display.
func (q *Queries) ListAdmissionSteps(ctx context.Context) ([]model.AdmissionStep, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT id, title, description, icon, order_index, created_at, updated_at
		FROM admission_steps ORDER BY order_index ASC, created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	steps := []model.AdmissionStep{}
	for rows.Next() {
		var s model.AdmissionStep
		if err := rows.Scan(&s.ID, &s.Title, &s.Description, &s.Icon,
			&s.OrderIndex, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		steps = append(steps, s)
	}
	return steps, rows.Err()
}

// CreateRequiredDocumentParams holds the fields for a new required document.
type CreateRequiredDocumentParams struct {
	DocumentName string
}

// CreateRequiredDocument inserts a document at the end of the display order.
func (q *Queries) CreateRequiredDocument(ctx context.Context, arg CreateRequiredDocumentParams) (model.RequiredDocument, error) {
	d := model.RequiredDocument{
		ID:           newID(),
		DocumentName: arg.DocumentName,
		CreatedAt:    time.Now().UTC(),
	}
	d.UpdatedAt = d.CreatedAt

	err := q.db.QueryRowContext(ctx, `
		INSERT INTO required_documents (id, document_name, order_index, created_at, updated_at)
		VALUES (?, ?, (SELECT COALESCE(MAX(order_index) + 1, 0) FROM required_documents), ?, ?)
		RETURNING order_index`,
		d.ID, d.DocumentName, d.CreatedAt, d.UpdatedAt,
	).Scan(&d.OrderIndex)
	if err != nil {
		return model.RequiredDocument{}, err
	}
	return d, nil
}

// UpdateRequiredDocumentParams holds the full record for an update keyed by ID.
type UpdateRequiredDocumentParams struct {
	ID           string
	DocumentName string
	OrderIndex   int64
}

// UpdateRequiredDocument performs a full-record update keyed by id.
func (q *Queries) UpdateRequiredDocument(ctx context.Context, arg UpdateRequiredDocumentParams) error {
	return rowsAffected(q.db.ExecContext(ctx, `
		UPDATE required_documents SET document_name = ?, order_index = ?, updated_at = ? WHERE id = ?`,
		arg.DocumentName, arg.OrderIndex, time.Now().UTC(), arg.ID))
}

// DeleteRequiredDocument deletes a document by id.
func (q *Queries) DeleteRequiredDocument(ctx context.Context, id string) error {
	return rowsAffected(q.db.ExecContext(ctx, `DELETE FROM required_documents WHERE id = ?`, id))
}

// ListRequiredDocuments returns all documents ordered for display.
func (q *Queries) ListRequiredDocuments(ctx context.Context) ([]model.RequiredDocument, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT id, document_name, order_index, created_at, updated_at
		FROM required_documents ORDER BY order_index ASC, created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := []model.RequiredDocument{}
	for rows.Next() {
		var d model.RequiredDocument
		if err := rows.Scan(&d.ID, &d.DocumentName, &d.OrderIndex, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/fgacademy/fga-cms/internal/model"
)

// CreateContactInquiryParams holds a public contact form submission.
type CreateContactInquiryParams struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// CreateContactInquiry records a contact form submission with status "new".
func (q *Queries) CreateContactInquiry(ctx context.Context, arg CreateContactInquiryParams) (model.ContactInquiry, error) {
	inq := model.ContactInquiry{
		ID:        newID(),
		Name:      arg.Name,
		Email:     arg.Email,
		Phone:     arg.Phone,
		Message:   arg.Message,
		Status:    model.InquiryStatusNew,
		CreatedAt: time.Now().UTC(),
	}

	_, err := q.db.ExecContext(ctx, `
		INSERT INTO contact_inquiries (id, name, email, phone, message, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		inq.ID, inq.Name, inq.Email, inq.Phone, inq.Message, inq.Status, inq.CreatedAt)
	if err != nil {
		return model.ContactInquiry{}, err
	}
	return inq, nil
}

// UpdateContactInquiryStatus sets the status of one inquiry. The workflow is
// unrestricted: any status may replace any other.
func (q *Queries) UpdateContactInquiryStatus(ctx context.Context, id, status string) error {
	return rowsAffected(q.db.ExecContext(ctx,
		`UPDATE contact_inquiries SET status = ? WHERE id = ?`, status, id))
}

// DeleteContactInquiry deletes an inquiry by id.
func (q *Queries) DeleteContactInquiry(ctx context.Context, id string) error {
	return rowsAffected(q.db.ExecContext(ctx, `DELETE FROM contact_inquiries WHERE id = ?`, id))
}

// ListContactInquiries returns all contact inquiries, newest first.
func (q *Queries) ListContactInquiries(ctx context.Context) ([]model.ContactInquiry, error) {
	return q.listContactInquiries(ctx, 0)
}

// ListLatestContactInquiries returns the newest limit contact inquiries.
func (q *Queries) ListLatestContactInquiries(ctx context.Context, limit int64) ([]model.ContactInquiry, error) {
	return q.listContactInquiries(ctx, limit)
}

func (q *Queries) listContactInquiries(ctx context.Context, limit int64) ([]model.ContactInquiry, error) {
	query := `
		SELECT id, name, email, phone, message, status, created_at
		FROM contact_inquiries ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	inquiries := []model.ContactInquiry{}
	for rows.Next() {
		var inq model.ContactInquiry
		if err := rows.Scan(&inq.ID, &inq.Name, &inq.Email, &inq.Phone,
			&inq.Message, &inq.Status, &inq.CreatedAt); err != nil {
			return nil, err
		}
		inquiries = append(inquiries, inq)
	}
	return inquiries, rows.Err()
}

// CreateAdmissionInquiryParams holds a public admissions form submission.
type CreateAdmissionInquiryParams struct {
	ParentName  string
	Email       string
	Phone       string
	StudentName string
	StudentAge  string
	GradeLevel  string
	Message     string
}

// CreateAdmissionInquiry records an admissions form submission with status "new".
func (q *Queries) CreateAdmissionInquiry(ctx context.Context, arg CreateAdmissionInquiryParams) (model.AdmissionInquiry, error) {
	inq := model.AdmissionInquiry{
		ID:          newID(),
		ParentName:  arg.ParentName,
		Email:       arg.Email,
		Phone:       arg.Phone,
		StudentName: arg.StudentName,
		StudentAge:  arg.StudentAge,
		GradeLevel:  arg.GradeLevel,
		Message:     arg.Message,
		Status:      model.InquiryStatusNew,
		CreatedAt:   time.Now().UTC(),
	}

	_, err := q.db.ExecContext(ctx, `
		INSERT INTO admission_inquiries (id, parent_name, email, phone, student_name,
			student_age, grade_level, message, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inq.ID, inq.ParentName, inq.Email, inq.Phone, inq.StudentName,
		inq.StudentAge, inq.GradeLevel, inq.Message, inq.Status, inq.CreatedAt)
	if err != nil {
		return model.AdmissionInquiry{}, err
	}
	return inq, nil
}

// UpdateAdmissionInquiryStatus sets the status of one inquiry.
func (q *Queries) UpdateAdmissionInquiryStatus(ctx context.Context, id, status string) error {
	return rowsAffected(q.db.ExecContext(ctx,
		`UPDATE admission_inquiries SET status = ? WHERE id = ?`, status, id))
}

// DeleteAdmissionInquiry deletes an inquiry by id.
func (q *Queries) DeleteAdmissionInquiry(ctx context.Context, id string) error {
	return rowsAffected(q.db.ExecContext(ctx, `DELETE FROM admission_inquiries WHERE id = ?`, id))
}

// ListAdmissionInquiries returns all admission inquiries, newest first.
func (q *Queries) ListAdmissionInquiries(ctx context.Context) ([]model.AdmissionInquiry, error) {
	return q.listAdmissionInquiries(ctx, 0)
}

// ListLatestAdmissionInquiries returns the newest limit admission inquiries.
func (q *Queries) ListLatestAdmissionInquiries(ctx context.Context, limit int64) ([]model.AdmissionInquiry, error) {
	return q.listAdmissionInquiries(ctx, limit)
}

func (q *Queries) listAdmissionInquiries(ctx context.Context, limit int64) ([]model.AdmissionInquiry, error) {
	query := `
		SELECT id, parent_name, email, phone, student_name, student_age, grade_level,
			message, status, created_at
		FROM admission_inquiries ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	inquiries := []model.AdmissionInquiry{}
	for rows.Next() {
		var inq model.AdmissionInquiry
		if err := rows.Scan(&inq.ID, &inq.ParentName, &inq.Email, &inq.Phone,
			&inq.StudentName, &inq.StudentAge, &inq.GradeLevel,
			&inq.Message, &inq.Status, &inq.CreatedAt); err != nil {
			return nil, err
		}
		inquiries = append(inquiries, inq)
	}
	return inquiries, rows.Err()
}

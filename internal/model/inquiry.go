// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Inquiry statuses. The workflow is unrestricted: any status may be set
// from any other.
const (
	InquiryStatusNew       = "new"
	InquiryStatusRead      = "read"
	InquiryStatusResponded = "responded"
)

// ValidInquiryStatus reports whether s is a known inquiry status.
func ValidInquiryStatus(s string) bool {
	return s == InquiryStatusNew || s == InquiryStatusRead || s == InquiryStatusResponded
}

// ContactInquiry is a submission from the public contact form.
type ContactInquiry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// AdmissionInquiry is a submission from the public admissions form.
type AdmissionInquiry struct {
	ID          string    `json:"id"`
	ParentName  string    `json:"parent_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	StudentName string    `json:"student_name"`
	StudentAge  string    `json:"student_age"`
	GradeLevel  string    `json:"grade_level"`
	Message     string    `json:"message"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

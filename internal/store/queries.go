// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"
)

// Queries wraps a database handle with typed query methods, one set per
// content collection.
type Queries struct {
	db *sql.DB
}

// New creates a Queries instance over the given database.
func New(db *sql.DB) *Queries {
	return &Queries{db: db}
}

// newID returns a fresh opaque record identifier.
func newID() string {
	return uuid.NewString()
}

// marshalStrings encodes a string slice as a JSON array for TEXT columns.
// A nil slice encodes as "[]" so round-trips stay symmetric.
func marshalStrings(values []string) string {
	if len(values) == 0 {
		return "[]"
	}
	b, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// unmarshalStrings decodes a JSON array TEXT column; malformed data reads
// as empty rather than failing the row scan.
func unmarshalStrings(raw string) []string {
	if raw == "" || raw == "[]" {
		return nil
	}
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil
	}
	return values
}

// nullString maps an optional text field to its column representation:
// empty string stores as NULL.
func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// rowsAffected converts a driver result into sql.ErrNoRows when nothing
// matched, so delete-by-id and update-by-id surface missing records.
func rowsAffected(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

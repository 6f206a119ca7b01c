// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"errors"
)

// ErrNotConfirmed is returned by Manager.Remove when the caller has not
// confirmed the deletion. No store call is made in that case.
var ErrNotConfirmed = errors.New("deletion not confirmed")

// ErrMissingID is returned by Manager.Remove for an empty record id.
var ErrMissingID = errors.New("missing record id")

// Manager routes saves and deletes for one content collection. A record
// with an empty id is inserted; a record with an id is updated in place.
// Exactly one of the two store calls runs per Save.
type Manager[T any] struct {
	// Name identifies the collection in audit entries and change events.
	Name string

	// ID extracts the record id; empty means not yet persisted.
	ID func(record T) string

	// Insert persists a new record and returns it with its assigned fields.
	Insert func(ctx context.Context, record T) (T, error)

	// Update replaces a persisted record.
	Update func(ctx context.Context, record T) error

	// Delete removes a record by id.
	Delete func(ctx context.Context, id string) error

	// OnChange, if set, runs after every successful mutation. The action is
	// one of "created", "updated" or "deleted".
	OnChange func(ctx context.Context, action, id string)
}

// Save inserts the record when its id is empty, otherwise updates it.
func (m *Manager[T]) Save(ctx context.Context, record T) (T, error) {
	if m.ID(record) == "" {
		created, err := m.Insert(ctx, record)
		if err != nil {
			var zero T
			return zero, err
		}
		m.notify(ctx, "created", m.ID(created))
		return created, nil
	}

	if err := m.Update(ctx, record); err != nil {
		var zero T
		return zero, err
	}
	m.notify(ctx, "updated", m.ID(record))
	return record, nil
}

// Remove deletes the record with the given id. Unconfirmed removals are
// rejected before any store access.
func (m *Manager[T]) Remove(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}
	if id == "" {
		return ErrMissingID
	}
	if err := m.Delete(ctx, id); err != nil {
		return err
	}
	m.notify(ctx, "deleted", id)
	return nil
}

func (m *Manager[T]) notify(ctx context.Context, action, id string) {
	if m.OnChange != nil {
		m.OnChange(ctx, action, id)
	}
}

// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecord struct {
	ID    string
	Title string
}

// countingStore counts store calls so tests can assert exactly which
// operations ran.
type countingStore struct {
	inserts int
	updates int
	deletes int
	failAll bool
}

func (cs *countingStore) manager() *Manager[fakeRecord] {
	return &Manager[fakeRecord]{
		Name: "fake",
		ID:   func(r fakeRecord) string { return r.ID },
		Insert: func(ctx context.Context, r fakeRecord) (fakeRecord, error) {
			cs.inserts++
			if cs.failAll {
				return fakeRecord{}, errors.New("insert failed")
			}
			r.ID = "generated-id"
			return r, nil
		},
		Update: func(ctx context.Context, r fakeRecord) error {
			cs.updates++
			if cs.failAll {
				return errors.New("update failed")
			}
			return nil
		},
		Delete: func(ctx context.Context, id string) error {
			cs.deletes++
			if cs.failAll {
				return errors.New("delete failed")
			}
			return nil
		},
	}
}

func TestManagerSave_InsertWhenIDEmpty(t *testing.T) {
	cs := &countingStore{}
	m := cs.manager()

	saved, err := m.Save(context.Background(), fakeRecord{Title: "New Post"})
	require.NoError(t, err)

	assert.Equal(t, "generated-id", saved.ID)
	assert.Equal(t, 1, cs.inserts)
	assert.Equal(t, 0, cs.updates, "insert path must not touch update")
	assert.Equal(t, 0, cs.deletes)
}

func TestManagerSave_UpdateWhenIDPresent(t *testing.T) {
	cs := &countingStore{}
	m := cs.manager()

	saved, err := m.Save(context.Background(), fakeRecord{ID: "abc", Title: "Edited"})
	require.NoError(t, err)

	assert.Equal(t, "abc", saved.ID)
	assert.Equal(t, 0, cs.inserts, "update path must not touch insert")
	assert.Equal(t, 1, cs.updates)
}

func TestManagerRemove_RequiresConfirmation(t *testing.T) {
	cs := &countingStore{}
	m := cs.manager()

	err := m.Remove(context.Background(), "abc", false)
	assert.ErrorIs(t, err, ErrNotConfirmed)
	assert.Equal(t, 0, cs.deletes, "unconfirmed removal must make zero store calls")
	assert.Equal(t, 0, cs.inserts)
	assert.Equal(t, 0, cs.updates)
}

func TestManagerRemove_Confirmed(t *testing.T) {
	cs := &countingStore{}
	m := cs.manager()

	require.NoError(t, m.Remove(context.Background(), "abc", true))
	assert.Equal(t, 1, cs.deletes)
}

func TestManagerRemove_MissingID(t *testing.T) {
	cs := &countingStore{}
	m := cs.manager()

	err := m.Remove(context.Background(), "", true)
	assert.ErrorIs(t, err, ErrMissingID)
	assert.Equal(t, 0, cs.deletes)
}

func TestManagerOnChange(t *testing.T) {
	cs := &countingStore{}
	m := cs.manager()

	var actions []string
	m.OnChange = func(ctx context.Context, action, id string) {
		actions = append(actions, action+":"+id)
	}

	_, err := m.Save(context.Background(), fakeRecord{Title: "a"})
	require.NoError(t, err)
	_, err = m.Save(context.Background(), fakeRecord{ID: "x", Title: "b"})
	require.NoError(t, err)
	require.NoError(t, m.Remove(context.Background(), "x", true))

	assert.Equal(t, []string{"created:generated-id", "updated:x", "deleted:x"}, actions)
}

func TestManagerOnChange_NotFiredOnFailure(t *testing.T) {
	cs := &countingStore{failAll: true}
	m := cs.manager()

	fired := false
	m.OnChange = func(ctx context.Context, action, id string) { fired = true }

	_, err := m.Save(context.Background(), fakeRecord{Title: "a"})
	assert.Error(t, err)
	_, err = m.Save(context.Background(), fakeRecord{ID: "x"})
	assert.Error(t, err)
	assert.Error(t, m.Remove(context.Background(), "x", true))

	assert.False(t, fired, "failed mutations must not emit change events")
}

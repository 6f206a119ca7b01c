// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

package notify

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/fgacademy/fga-cms/internal/store"
)

// feedCap is the maximum number of notifications in the merged feed.
const feedCap = 20

// perSourceLimit is how many of each inquiry kind feed the merge.
const perSourceLimit = 10

// Kind of notification.
const (
	KindContact   = "contact"
	KindAdmission = "admission"
)

// Notification is one entry in the admin notification feed.
type Notification struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	Read      bool      `json:"read"`
}

// Feed builds the admin notification list from recent inquiries. Read state
// lives in memory only; a restart resets every entry to unread.
type Feed struct {
	queries *store.Queries

	mu   sync.RWMutex
	read map[string]bool
}

// NewFeed creates a notification feed over the given database.
func NewFeed(db *sql.DB) *Feed {
	return &Feed{
		queries: store.New(db),
		read:    make(map[string]bool),
	}
}

// Latest returns the newest contact and admission inquiries merged into a
// single feed, newest first, capped at twenty entries.
func (f *Feed) Latest(ctx context.Context) ([]Notification, error) {
	contact, err := f.queries.ListLatestContactInquiries(ctx, perSourceLimit)
	if err != nil {
		return nil, err
	}
	admission, err := f.queries.ListLatestAdmissionInquiries(ctx, perSourceLimit)
	if err != nil {
		return nil, err
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	items := make([]Notification, 0, len(contact)+len(admission))
	for _, inq := range contact {
		items = append(items, Notification{
			ID:        inq.ID,
			Kind:      KindContact,
			Title:     "New contact message",
			Message:   inq.Name + " sent a message",
			CreatedAt: inq.CreatedAt,
			Read:      f.read[inq.ID],
		})
	}
	for _, inq := range admission {
		items = append(items, Notification{
			ID:        inq.ID,
			Kind:      KindAdmission,
			Title:     "New admission inquiry",
			Message:   inq.ParentName + " asked about enrollment for " + inq.StudentName,
			CreatedAt: inq.CreatedAt,
			Read:      f.read[inq.ID],
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	if len(items) > feedCap {
		items = items[:feedCap]
	}
	return items, nil
}

// UnreadCount returns how many feed entries are unread.
func (f *Feed) UnreadCount(ctx context.Context) (int, error) {
	items, err := f.Latest(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, n := range items {
		if !n.Read {
			count++
		}
	}
	return count, nil
}

// MarkRead marks a single notification as read.
func (f *Feed) MarkRead(id string) {
	f.mu.Lock()
	f.read[id] = true
	f.mu.Unlock()
}

// MarkAllRead marks every current feed entry as read.
func (f *Feed) MarkAllRead(ctx context.Context) error {
	items, err := f.Latest(ctx)
	if err != nil {
		return err
	}

	f.mu.Lock()
	for _, n := range items {
		f.read[n.ID] = true
	}
	f.mu.Unlock()
	return nil
}

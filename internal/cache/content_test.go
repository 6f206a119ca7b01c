// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fgacademy/fga-cms/internal/testutil"
)

func snapshotPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "content.json")
}

func TestContentSnapshot_MissingFileUsesSeed(t *testing.T) {
	s := NewContentSnapshot(snapshotPath(t), testutil.TestLoggerSilent())

	news := s.News()
	if len(news) != 2 {
		t.Fatalf("expected 2 seed news posts, got %d", len(news))
	}
	if news[0].PublishedDate != "2025-10-15" {
		t.Errorf("seed news not sorted newest first: %q", news[0].PublishedDate)
	}

	events := s.Events()
	if len(events) != 2 {
		t.Fatalf("expected 2 seed events, got %d", len(events))
	}
	if events[0].EventDate != "2025-11-15" {
		t.Errorf("seed events not sorted soonest first: %q", events[0].EventDate)
	}
}

func TestContentSnapshot_CorruptFileUsesSeed(t *testing.T) {
	path := snapshotPath(t)
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewContentSnapshot(path, testutil.TestLoggerSilent())
	if len(s.News()) != 2 || len(s.Events()) != 2 {
		t.Error("corrupt file should fall back to seed data")
	}
}

func TestContentSnapshot_RefreshSortsAndPersists(t *testing.T) {
	path := snapshotPath(t)
	log := testutil.TestLoggerSilent()
	s := NewContentSnapshot(path, log)

	err := s.Refresh(
		[]SnapshotNews{
			{ID: "a", Title: "Old", Excerpt: "x", Content: "x", PublishedDate: "2025-01-01"},
			{ID: "b", Title: "New", Excerpt: "x", Content: "x", PublishedDate: "2026-06-01"},
		},
		[]SnapshotEvent{
			{ID: "e1", Title: "Later", Description: "x", EventDate: "2026-09-01", Location: "Hall"},
			{ID: "e2", Title: "Sooner", Description: "x", EventDate: "2026-07-01", Location: "Hall"},
		},
	)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	if got := s.News()[0].ID; got != "b" {
		t.Errorf("news[0] = %q, want newest post first", got)
	}
	if got := s.Events()[0].ID; got != "e2" {
		t.Errorf("events[0] = %q, want soonest event first", got)
	}

	// A fresh load from the same file sees the same data.
	reloaded := NewContentSnapshot(path, log)
	if len(reloaded.News()) != 2 || reloaded.News()[0].ID != "b" {
		t.Error("reloaded snapshot does not match persisted state")
	}
}

func TestContentSnapshot_RefreshSanitizes(t *testing.T) {
	path := snapshotPath(t)
	s := NewContentSnapshot(path, testutil.TestLoggerSilent())

	err := s.Refresh(
		[]SnapshotNews{{
			ID:            "a",
			Title:         "  Padded Title  ",
			Excerpt:       " padded ",
			Content:       "body ",
			ImageURL:      "   ",
			PublishedDate: "2026-01-01",
		}},
		nil,
	)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	got := s.News()[0]
	if got.Title != "Padded Title" || got.Excerpt != "padded" || got.Content != "body" {
		t.Errorf("fields not trimmed: %+v", got)
	}
	if got.ImageURL != "" {
		t.Errorf("blank image URL should normalize to empty, got %q", got.ImageURL)
	}

	// The persisted JSON must omit the absent image URL entirely.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var file map[string]any
	if err := json.Unmarshal(data, &file); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), `"imageUrl"`) {
		t.Error("empty imageUrl should be omitted from the snapshot file")
	}
}

func TestContentSnapshot_RefreshAssignsIDs(t *testing.T) {
	s := NewContentSnapshot(snapshotPath(t), testutil.TestLoggerSilent())

	err := s.Refresh(
		[]SnapshotNews{{Title: "x", Excerpt: "x", Content: "x", PublishedDate: "2026-01-01"}},
		[]SnapshotEvent{{Title: "x", Description: "x", EventDate: "2026-01-01", Location: "x"}},
	)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	newsID := s.News()[0].ID
	if !strings.HasPrefix(newsID, "news-") || strings.Count(newsID, "-") != 2 {
		t.Errorf("news id %q does not match prefix-time-random shape", newsID)
	}
	eventID := s.Events()[0].ID
	if !strings.HasPrefix(eventID, "event-") {
		t.Errorf("event id %q missing prefix", eventID)
	}
}

func TestGenerateID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := generateID("news")
		if seen[id] {
			t.Fatalf("duplicate id generated: %q", id)
		}
		seen[id] = true
	}
}

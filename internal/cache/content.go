// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"encoding/json"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// SnapshotNews is a news post as stored in the content snapshot file.
type SnapshotNews struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Excerpt       string `json:"excerpt"`
	Content       string `json:"content"`
	ImageURL      string `json:"imageUrl,omitempty"`
	PublishedDate string `json:"publishedDate"`
}

// SnapshotEvent is an event as stored in the content snapshot file.
type SnapshotEvent struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	EventDate   string `json:"eventDate"`
	Location    string `json:"location"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

type snapshotFile struct {
	News   []SnapshotNews  `json:"news"`
	Events []SnapshotEvent `json:"events"`
}

// seedSnapshot is the dataset served when no snapshot file exists yet and
// the database is unreachable, so a fresh install still renders pages.
var seedSnapshot = snapshotFile{
	News: []SnapshotNews{
		{
			ID:            "news-1",
			Title:         "New Science Laboratory Commissioned",
			Excerpt:       "Our modern science laboratory is now open, offering hands-on learning experiences for students across all levels.",
			Content:       "We are excited to announce the commissioning of our new science laboratory equipped with state-of-the-art apparatus. This facility will enable students from Creche to JHS to explore scientific concepts through practical experiments, fostering curiosity and innovation.",
			ImageURL:      "https://images.pexels.com/photos/3825571/pexels-photo-3825571.jpeg?auto=compress&cs=tinysrgb&w=800",
			PublishedDate: "2025-10-15",
		},
		{
			ID:            "news-2",
			Title:         "Fountain Gate Students Excel in BECE",
			Excerpt:       "Congratulations to our JHS graduates for achieving a 100% pass rate in the 2025 BECE examinations!",
			Content:       "The Fountain Gate Academy JHS class of 2025 has achieved outstanding results in the BECE examinations, with all students securing admission into top Category A senior high schools. Their success reflects the dedication of our teachers, students, and supportive parents.",
			ImageURL:      "https://images.pexels.com/photos/4449511/pexels-photo-4449511.jpeg?auto=compress&cs=tinysrgb&w=800",
			PublishedDate: "2025-09-28",
		},
	},
	Events: []SnapshotEvent{
		{
			ID:          "event-1",
			Title:       "Open House & Campus Tour",
			Description: "Prospective parents and students are invited to tour our facilities, meet teachers, and experience life at Fountain Gate Academy.",
			EventDate:   "2025-11-15",
			Location:    "Fountain Gate Academy Campus",
			ImageURL:    "https://images.pexels.com/photos/256395/pexels-photo-256395.jpeg?auto=compress&cs=tinysrgb&w=800",
		},
		{
			ID:          "event-2",
			Title:       "Cultural Day Celebration",
			Description: "A vibrant celebration of Ghanaian culture featuring performances, exhibitions, and traditional cuisine prepared by students.",
			EventDate:   "2026-01-20",
			Location:    "School Assembly Hall",
			ImageURL:    "https://images.pexels.com/photos/935985/pexels-photo-935985.jpeg?auto=compress&cs=tinysrgb&w=800",
		},
	},
}

// ContentSnapshot is a file-backed copy of the public news and events
// collections. The database is the source of truth; the snapshot is
// rewritten after every mutation and serves reads when the database is
// unavailable.
type ContentSnapshot struct {
	path string
	log  *slog.Logger

	mu     sync.RWMutex
	news   []SnapshotNews
	events []SnapshotEvent
}

// NewContentSnapshot loads the snapshot file at path. A missing, unreadable
// or unparseable file falls back to the seed dataset.
func NewContentSnapshot(path string, log *slog.Logger) *ContentSnapshot {
	s := &ContentSnapshot{path: path, log: log}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn("content snapshot unreadable, using seed data", "path", path, "error", err)
		}
		s.news = cloneNews(seedSnapshot.News)
		s.events = cloneEvents(seedSnapshot.Events)
		return s
	}

	var file snapshotFile
	if err := json.Unmarshal(data, &file); err != nil {
		log.Warn("content snapshot corrupt, using seed data", "path", path, "error", err)
		s.news = cloneNews(seedSnapshot.News)
		s.events = cloneEvents(seedSnapshot.Events)
		return s
	}

	s.news = file.News
	s.events = file.Events
	sortNews(s.news)
	sortEvents(s.events)
	return s
}

// News returns the snapshot's news posts, most recently published first.
func (s *ContentSnapshot) News() []SnapshotNews {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneNews(s.news)
}

// Events returns the snapshot's events, soonest first.
func (s *ContentSnapshot) Events() []SnapshotEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneEvents(s.events)
}

// Refresh replaces both collections, sanitizes and sorts them, and
// rewrites the snapshot file. Entries without an id get a generated one.
func (s *ContentSnapshot) Refresh(news []SnapshotNews, events []SnapshotEvent) error {
	news = cloneNews(news)
	events = cloneEvents(events)

	for i := range news {
		news[i] = sanitizeNews(news[i])
		if news[i].ID == "" {
			news[i].ID = generateID("news")
		}
	}
	for i := range events {
		events[i] = sanitizeEvent(events[i])
		if events[i].ID == "" {
			events[i].ID = generateID("event")
		}
	}

	sortNews(news)
	sortEvents(events)

	s.mu.Lock()
	s.news = news
	s.events = events
	s.mu.Unlock()

	return s.persist()
}

// persist writes the whole snapshot atomically.
func (s *ContentSnapshot) persist() error {
	s.mu.RLock()
	file := snapshotFile{News: s.news, Events: s.events}
	s.mu.RUnlock()

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".snapshot-*.json")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, s.path)
}

// sanitizeNews trims string fields and drops a blank image URL.
func sanitizeNews(n SnapshotNews) SnapshotNews {
	n.Title = strings.TrimSpace(n.Title)
	n.Excerpt = strings.TrimSpace(n.Excerpt)
	n.Content = strings.TrimSpace(n.Content)
	n.ImageURL = strings.TrimSpace(n.ImageURL)
	return n
}

// sanitizeEvent trims string fields and drops a blank image URL.
func sanitizeEvent(e SnapshotEvent) SnapshotEvent {
	e.Title = strings.TrimSpace(e.Title)
	e.Description = strings.TrimSpace(e.Description)
	e.Location = strings.TrimSpace(e.Location)
	e.ImageURL = strings.TrimSpace(e.ImageURL)
	return e
}

// sortNews orders posts by published date, newest first. Dates are ISO
// strings so byte order matches chronological order.
func sortNews(news []SnapshotNews) {
	sort.SliceStable(news, func(i, j int) bool {
		return news[i].PublishedDate > news[j].PublishedDate
	})
}

// sortEvents orders events by event date, soonest first.
func sortEvents(events []SnapshotEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].EventDate < events[j].EventDate
	})
}

// generateID builds an id like "news-mffqk3x2-k9d3xq": the prefix, the
// current time in base 36 and a random suffix.
func generateID(prefix string) string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	suffix := strconv.FormatInt(rand.Int63n(1<<31), 36)
	return prefix + "-" + ts + "-" + suffix
}

func cloneNews(news []SnapshotNews) []SnapshotNews {
	out := make([]SnapshotNews, len(news))
	copy(out, news)
	return out
}

func cloneEvents(events []SnapshotEvent) []SnapshotEvent {
	out := make([]SnapshotEvent, len(events))
	copy(out, events)
	return out
}

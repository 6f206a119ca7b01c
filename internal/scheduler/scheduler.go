// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

package scheduler

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/fgacademy/fga-cms/internal/cache"
	"github.com/fgacademy/fga-cms/internal/service"
	"github.com/fgacademy/fga-cms/internal/store"
)

// Scheduler runs recurring maintenance jobs: refreshing the public
// content snapshot and pruning old audit log entries.
type Scheduler struct {
	db            *sql.DB
	cron          *cron.Cron
	logger        *slog.Logger
	snapshot      *cache.ContentSnapshot
	audit         *service.AuditService
	retentionDays int
}

// New creates a new scheduler instance.
func New(db *sql.DB, logger *slog.Logger, snapshot *cache.ContentSnapshot, audit *service.AuditService, retentionDays int) *Scheduler {
	return &Scheduler{
		db:            db,
		cron:          cron.New(),
		logger:        logger,
		snapshot:      snapshot,
		audit:         audit,
		retentionDays: retentionDays,
	}
}

// Start registers the recurring jobs and begins the cron loop.
func (s *Scheduler) Start() error {
	// Refresh the content snapshot every 15 minutes
	_, err := s.cron.AddFunc("*/15 * * * *", func() {
		if err := s.refreshSnapshot(); err != nil {
			s.logger.Error("failed to refresh content snapshot", "error", err)
		}
	})
	if err != nil {
		return err
	}

	// Prune audit log daily at 03:30
	_, err = s.cron.AddFunc("30 3 * * *", func() {
		if err := s.pruneAuditLog(); err != nil {
			s.logger.Error("failed to prune audit log", "error", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()))
	return nil
}

// Stop gracefully stops the scheduler.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

// RefreshSnapshotNow rebuilds the content snapshot immediately. Handlers
// call this after a news or event write so the public site stays current
// without waiting for the next cron tick.
func (s *Scheduler) RefreshSnapshotNow(ctx context.Context) error {
	return s.refresh(ctx)
}

// refreshSnapshot rebuilds the public content snapshot from the database.
func (s *Scheduler) refreshSnapshot() error {
	return s.refresh(context.Background())
}

func (s *Scheduler) refresh(ctx context.Context) error {
	if s.snapshot == nil {
		return nil
	}
	queries := store.New(s.db)

	posts, err := queries.ListNewsPosts(ctx)
	if err != nil {
		return err
	}
	events, err := queries.ListEvents(ctx)
	if err != nil {
		return err
	}

	news := make([]cache.SnapshotNews, 0, len(posts))
	for _, p := range posts {
		news = append(news, cache.SnapshotNews{
			ID:            p.ID,
			Title:         p.Title,
			Excerpt:       p.Excerpt,
			Content:       p.Content,
			ImageURL:      p.ImageURL,
			PublishedDate: p.PublishedDate,
		})
	}
	snapEvents := make([]cache.SnapshotEvent, 0, len(events))
	for _, e := range events {
		snapEvents = append(snapEvents, cache.SnapshotEvent{
			ID:          e.ID,
			Title:       e.Title,
			Description: e.Description,
			EventDate:   e.EventDate,
			Location:    e.Location,
			ImageURL:    e.ImageURL,
		})
	}

	if err := s.snapshot.Refresh(news, snapEvents); err != nil {
		return err
	}

	s.logger.Debug("content snapshot refreshed",
		"news", len(news),
		"events", len(snapEvents),
	)
	return nil
}

// pruneAuditLog deletes audit entries older than the retention window.
func (s *Scheduler) pruneAuditLog() error {
	if s.audit == nil {
		return nil
	}
	ctx := context.Background()

	pruned, err := s.audit.Prune(ctx, s.retentionDays)
	if err != nil {
		return err
	}
	if pruned > 0 {
		s.logger.Info("pruned audit log entries",
			"count", pruned,
			"retention_days", s.retentionDays,
		)
	}
	return nil
}

// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fgacademy/fga-cms/internal/model"
)

// defaultSiteContent holds the site content fields a fresh install gets so
// every public page renders with real copy before an editor touches it.
var defaultSiteContent = []UpsertSiteContentParams{
	{Section: "mission", Key: "mission_text", Type: model.ContentTypeTextarea,
		Value: "To provide quality, holistic education that nurtures every child academically, morally and socially, preparing them to excel as responsible citizens and leaders."},
	{Section: "vision", Key: "vision_text", Type: model.ContentTypeTextarea,
		Value: "To be a leading educational institution recognized for academic excellence, strong values and the all-round development of every learner."},
	{Section: "history", Key: "history_paragraph_1", Type: model.ContentTypeTextarea,
		Value: "Fountain Gate Academy was founded with a simple conviction: every child deserves an education that opens doors."},
	{Section: "history", Key: "history_paragraph_2", Type: model.ContentTypeTextarea,
		Value: "From a single classroom, the school has grown into a full campus serving learners from Creche through Junior High School."},
	{Section: "history", Key: "history_paragraph_3", Type: model.ContentTypeTextarea,
		Value: "Today our graduates gain admission to top senior high schools across the country, carrying with them the values they learned here."},
	{Section: "welcome", Key: "welcome_heading", Type: model.ContentTypeText,
		Value: "Building Tomorrow's Leaders Today"},
	{Section: "welcome", Key: "welcome_paragraph_1", Type: model.ContentTypeTextarea,
		Value: "Welcome to Fountain Gate Academy, where academic excellence meets character formation in a safe and caring environment."},
	{Section: "welcome", Key: "welcome_paragraph_2", Type: model.ContentTypeTextarea,
		Value: "Our dedicated teachers guide every learner from their very first steps in Creche to their final term in Junior High School."},
	{Section: "welcome", Key: "welcome_image_url", Type: model.ContentTypeURL,
		Value: "https://images.pexels.com/photos/8617942/pexels-photo-8617942.jpeg?auto=compress&cs=tinysrgb&w=800"},
	{Section: "cta", Key: "cta_heading", Type: model.ContentTypeText,
		Value: "Ready to Join Our Community?"},
	{Section: "cta", Key: "cta_subheading", Type: model.ContentTypeTextarea,
		Value: "Enroll your child today and give them the foundation for a lifetime of learning."},
	{Section: "contact_info", Key: "address_line_1", Type: model.ContentTypeText, Value: "Fountain Gate Academy"},
	{Section: "contact_info", Key: "address_line_2", Type: model.ContentTypeText, Value: "P.O. Box 123"},
	{Section: "contact_info", Key: "address_line_3", Type: model.ContentTypeText, Value: "Accra, Ghana"},
	{Section: "contact_info", Key: "phone_primary", Type: model.ContentTypeText, Value: "+233 20 000 0000"},
	{Section: "contact_info", Key: "phone_secondary", Type: model.ContentTypeText, Value: "+233 24 000 0000"},
	{Section: "contact_info", Key: "email_primary", Type: model.ContentTypeText, Value: "info@fga.edu.gh"},
	{Section: "contact_info", Key: "email_secondary", Type: model.ContentTypeText, Value: "admissions@fga.edu.gh"},
	{Section: "contact_info", Key: "office_hours", Type: model.ContentTypeText, Value: "Mon-Fri: 7:30 AM - 4:30 PM"},
	{Section: "social", Key: "facebook_url", Type: model.ContentTypeURL, Value: ""},
	{Section: "social", Key: "twitter_url", Type: model.ContentTypeURL, Value: ""},
	{Section: "social", Key: "instagram_url", Type: model.ContentTypeURL, Value: ""},
	{Section: "social", Key: "youtube_url", Type: model.ContentTypeURL, Value: ""},
}

var seedNewsPosts = []CreateNewsPostParams{
	{
		Title:         "New Science Laboratory Commissioned",
		Slug:          "new-science-laboratory-commissioned",
		Excerpt:       "Our modern science laboratory is now open, offering hands-on learning experiences for students across all levels.",
		Content:       "We are excited to announce the commissioning of our new science laboratory equipped with state-of-the-art apparatus. This facility will enable students from Creche to JHS to explore scientific concepts through practical experiments, fostering curiosity and innovation.",
		ImageURL:      "https://images.pexels.com/photos/3825571/pexels-photo-3825571.jpeg?auto=compress&cs=tinysrgb&w=800",
		PublishedDate: "2025-10-15",
	},
	{
		Title:         "Fountain Gate Students Excel in BECE",
		Slug:          "fountain-gate-students-excel-in-bece",
		Excerpt:       "Congratulations to our JHS graduates for achieving a 100% pass rate in the 2025 BECE examinations!",
		Content:       "The Fountain Gate Academy JHS class of 2025 has achieved outstanding results in the BECE examinations, with all students securing admission into top Category A senior high schools. Their success reflects the dedication of our teachers, students, and supportive parents.",
		ImageURL:      "https://images.pexels.com/photos/4449511/pexels-photo-4449511.jpeg?auto=compress&cs=tinysrgb&w=800",
		PublishedDate: "2025-09-28",
	},
}

var seedEvents = []CreateEventParams{
	{
		Title:       "Open House & Campus Tour",
		Description: "Prospective parents and students are invited to tour our facilities, meet teachers, and experience life at Fountain Gate Academy.",
		EventDate:   "2025-11-15",
		Location:    "Fountain Gate Academy Campus",
		ImageURL:    "https://images.pexels.com/photos/256395/pexels-photo-256395.jpeg?auto=compress&cs=tinysrgb&w=800",
	},
	{
		Title:       "Cultural Day Celebration",
		Description: "A vibrant celebration of Ghanaian culture featuring performances, exhibitions, and traditional cuisine prepared by students.",
		EventDate:   "2026-01-20",
		Location:    "School Assembly Hall",
		ImageURL:    "https://images.pexels.com/photos/935985/pexels-photo-935985.jpeg?auto=compress&cs=tinysrgb&w=800",
	},
}

// Seed populates an empty install with default site content and starter
// news and events. It is idempotent: existing keys and slugs are left
// untouched, so re-running it against a populated database is a no-op.
func (q *Queries) Seed(ctx context.Context, log *slog.Logger) error {
	seeded := 0

	for _, c := range defaultSiteContent {
		_, err := q.GetSiteContentByKey(ctx, c.Key)
		if err == nil {
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("seed: check content key %q: %w", c.Key, err)
		}
		if _, err := q.UpsertSiteContent(ctx, c); err != nil {
			return fmt.Errorf("seed: content key %q: %w", c.Key, err)
		}
		seeded++
	}

	for _, p := range seedNewsPosts {
		exists, err := q.NewsSlugExists(ctx, p.Slug, "")
		if err != nil {
			return fmt.Errorf("seed: check news slug %q: %w", p.Slug, err)
		}
		if exists {
			continue
		}
		if _, err := q.CreateNewsPost(ctx, p); err != nil {
			return fmt.Errorf("seed: news %q: %w", p.Slug, err)
		}
		seeded++
	}

	count, err := q.CountEvents(ctx)
	if err != nil {
		return fmt.Errorf("seed: count events: %w", err)
	}
	if count == 0 {
		for _, e := range seedEvents {
			if _, err := q.CreateEvent(ctx, e); err != nil {
				return fmt.Errorf("seed: event %q: %w", e.Title, err)
			}
			seeded++
		}
	}

	if seeded > 0 {
		log.Info("seeded default content", "records", seeded)
	}
	return nil
}

// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

package store_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fgacademy/fga-cms/internal/model"
	"github.com/fgacademy/fga-cms/internal/store"
	"github.com/fgacademy/fga-cms/internal/testutil"
)

func TestSiteContentUpsert(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()
	q := store.New(db)
	ctx := context.Background()

	first, err := q.UpsertSiteContent(ctx, store.UpsertSiteContentParams{
		Section: "welcome",
		Key:     "welcome_heading",
		Value:   "Building Tomorrow's Leaders Today",
		Type:    model.ContentTypeText,
	})
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	second, err := q.UpsertSiteContent(ctx, store.UpsertSiteContentParams{
		Section: "welcome",
		Key:     "welcome_heading",
		Value:   "A Fresh Start Every Term",
		Type:    model.ContentTypeText,
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "upsert on the same key must keep the row identity")

	all, err := q.ListSiteContent(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "A Fresh Start Every Term", all[0].Value)

	got, err := q.GetSiteContentByKey(ctx, "welcome_heading")
	require.NoError(t, err)
	assert.Equal(t, "welcome", got.Section)
}

func TestAcademicProgramOrderIndex(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()
	q := store.New(db)
	ctx := context.Background()

	names := []string{"Creche", "Primary", "Junior High School"}
	for i, name := range names {
		p, err := q.CreateAcademicProgram(ctx, store.CreateAcademicProgramParams{
			Name:        name,
			Description: name + " program",
			AgeRange:    "varies",
			Features:    []string{"feature one", "feature two"},
			Curriculum:  []string{"English", "Mathematics"},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(i), p.OrderIndex, "order index is assigned server side")
	}

	list, err := q.ListAcademicPrograms(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, p := range list {
		assert.Equal(t, names[i], p.Name)
		assert.Equal(t, []string{"feature one", "feature two"}, p.Features)
		assert.Equal(t, []string{"English", "Mathematics"}, p.Curriculum)
	}

	// Deleting from the middle must not reshuffle; the next insert still
	// appends past the highest existing index.
	require.NoError(t, q.DeleteAcademicProgram(ctx, list[1].ID))
	p, err := q.CreateAcademicProgram(ctx, store.CreateAcademicProgramParams{
		Name: "Nursery", Description: "Nursery program", AgeRange: "3-4",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), p.OrderIndex)
}

func TestStaffMemberCRUD(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()
	q := store.New(db)
	ctx := context.Background()

	m, err := q.CreateStaffMember(ctx, store.CreateStaffMemberParams{
		Name:     "Ama Mensah",
		Position: "Headmistress",
		Bio:      "Twenty years in basic education.",
	})
	require.NoError(t, err)
	require.NotEmpty(t, m.ID)
	assert.Equal(t, int64(0), m.OrderIndex)

	err = q.UpdateStaffMember(ctx, store.UpdateStaffMemberParams{
		ID:         m.ID,
		Name:       "Ama Mensah",
		Position:   "Director of Studies",
		Bio:        m.Bio,
		OrderIndex: m.OrderIndex,
	})
	require.NoError(t, err)

	got, err := q.GetStaffMemberByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "Director of Studies", got.Position)

	require.NoError(t, q.DeleteStaffMember(ctx, m.ID))
	err = q.DeleteStaffMember(ctx, m.ID)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	list, err := q.ListStaffMembers(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NotNil(t, list)
}

func TestContactInquiryWorkflow(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()
	q := store.New(db)
	ctx := context.Background()

	inq, err := q.CreateContactInquiry(ctx, store.CreateContactInquiryParams{
		Name:    "Kofi Boateng",
		Email:   "kofi@example.com",
		Phone:   "+233 20 111 2222",
		Message: "What are your term dates?",
	})
	require.NoError(t, err)
	assert.Equal(t, model.InquiryStatusNew, inq.Status)

	// Status moves are unrestricted within the known set.
	require.NoError(t, q.UpdateContactInquiryStatus(ctx, inq.ID, model.InquiryStatusResponded))
	require.NoError(t, q.UpdateContactInquiryStatus(ctx, inq.ID, model.InquiryStatusNew))
	require.NoError(t, q.UpdateContactInquiryStatus(ctx, inq.ID, model.InquiryStatusRead))

	list, err := q.ListContactInquiries(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, model.InquiryStatusRead, list[0].Status)

	err = q.UpdateContactInquiryStatus(ctx, "no-such-id", model.InquiryStatusRead)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestListLatestInquiries(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()
	q := store.New(db)
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		_, err := q.CreateAdmissionInquiry(ctx, store.CreateAdmissionInquiryParams{
			ParentName:  "Parent",
			Email:       "parent@example.com",
			StudentName: "Student",
			GradeLevel:  "Primary 1",
		})
		require.NoError(t, err)
	}

	latest, err := q.ListLatestAdmissionInquiries(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, latest, 10)

	all, err := q.ListAdmissionInquiries(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 12)
}

func TestNewsPostSlug(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()
	q := store.New(db)
	ctx := context.Background()

	p1, err := q.CreateNewsPost(ctx, store.CreateNewsPostParams{
		Title:         "Sports Day Results",
		Slug:          "sports-day-results",
		Excerpt:       "Red house takes the trophy.",
		Content:       "Full results inside.",
		PublishedDate: "2026-02-10",
	})
	require.NoError(t, err)

	exists, err := q.NewsSlugExists(ctx, "sports-day-results", "")
	require.NoError(t, err)
	assert.True(t, exists)

	// The post itself is excluded when checking for a rename collision.
	exists, err = q.NewsSlugExists(ctx, "sports-day-results", p1.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	got, err := q.GetNewsPostBySlug(ctx, "sports-day-results")
	require.NoError(t, err)
	assert.Equal(t, p1.ID, got.ID)

	_, err = q.CreateNewsPost(ctx, store.CreateNewsPostParams{
		Title:         "Older Post",
		Slug:          "older-post",
		Excerpt:       "x",
		Content:       "x",
		PublishedDate: "2025-01-01",
	})
	require.NoError(t, err)

	list, err := q.ListNewsPosts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "sports-day-results", list[0].Slug, "newest published first")
}

func TestEventListOrder(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()
	q := store.New(db)
	ctx := context.Background()

	for _, d := range []string{"2026-05-01", "2026-03-15", "2026-04-20"} {
		_, err := q.CreateEvent(ctx, store.CreateEventParams{
			Title:       "Event " + d,
			Description: "d",
			EventDate:   d,
			Location:    "Campus",
		})
		require.NoError(t, err)
	}

	list, err := q.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "2026-03-15", list[0].EventDate)
	assert.Equal(t, "2026-05-01", list[2].EventDate, "soonest event first")
}

func TestGalleryItems(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()
	q := store.New(db)
	ctx := context.Background()

	item, err := q.CreateGalleryItem(ctx, store.CreateGalleryItemParams{
		Title:     "Cultural Day",
		MediaURL:  "https://example.com/photo.jpg",
		MediaType: model.MediaTypePhoto,
		Category:  "events",
	})
	require.NoError(t, err)

	err = q.UpdateGalleryItem(ctx, store.UpdateGalleryItemParams{
		ID:        item.ID,
		Title:     "Cultural Day 2026",
		MediaURL:  item.MediaURL,
		MediaType: model.MediaTypeVideo,
		Category:  item.Category,
	})
	require.NoError(t, err)

	list, err := q.ListGalleryItems(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, model.MediaTypeVideo, list[0].MediaType)
}

func TestSeedIsIdempotent(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()
	q := store.New(db)
	ctx := context.Background()
	log := testutil.TestLoggerSilent()

	require.NoError(t, q.Seed(ctx, log))

	content, err := q.ListSiteContent(ctx)
	require.NoError(t, err)
	firstContent := len(content)
	assert.Greater(t, firstContent, 0)

	news, err := q.ListNewsPosts(ctx)
	require.NoError(t, err)
	assert.Len(t, news, 2)

	events, err := q.ListEvents(ctx)
	require.NoError(t, err)
	assert.Len(t, events, 2)

	// A second run must not duplicate anything.
	require.NoError(t, q.Seed(ctx, log))

	content, err = q.ListSiteContent(ctx)
	require.NoError(t, err)
	assert.Len(t, content, firstContent)

	news, err = q.ListNewsPosts(ctx)
	require.NoError(t, err)
	assert.Len(t, news, 2)

	events, err = q.ListEvents(ctx)
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestAuditEvents(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()
	q := store.New(db)
	ctx := context.Background()

	old := time.Now().UTC().AddDate(0, 0, -120)
	_, err := q.CreateAuditEvent(ctx, store.CreateAuditEventParams{
		Level:     model.AuditLevelInfo,
		Category:  model.AuditCategoryAuth,
		Message:   "admin login",
		Actor:     "admin@fga.local",
		CreatedAt: old,
	})
	require.NoError(t, err)

	_, err = q.CreateAuditEvent(ctx, store.CreateAuditEventParams{
		Level:    model.AuditLevelWarning,
		Category: model.AuditCategorySystem,
		Message:  "snapshot refresh failed",
	})
	require.NoError(t, err)

	events, err := q.ListAuditEvents(ctx, 50, 0)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "snapshot refresh failed", events[0].Message, "newest first")

	pruned, err := q.PruneAuditEvents(ctx, time.Now().UTC().AddDate(0, 0, -90))
	require.NoError(t, err)
	assert.Equal(t, int64(1), pruned)

	count, err := q.CountAuditEvents(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

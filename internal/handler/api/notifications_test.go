// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationFeed(t *testing.T) {
	ts := newTestServer(t)
	cookie := ts.login(t)

	rec := ts.do(t, http.MethodGet, "/admin/api/notifications", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var feed NotificationFeedResponse
	decodeData(t, rec, &feed)
	assert.Empty(t, feed.Notifications)
	assert.Zero(t, feed.UnreadCount)

	rec = ts.do(t, http.MethodPost, "/api/v1/inquiries/contact", ContactInquiryRequest{
		Name: "Ama Owusu", Email: "ama@example.com", Message: "Hello",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = ts.do(t, http.MethodGet, "/admin/api/notifications", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeData(t, rec, &feed)
	require.Len(t, feed.Notifications, 1)
	assert.Equal(t, 1, feed.UnreadCount)
	assert.False(t, feed.Notifications[0].Read)

	id := feed.Notifications[0].ID
	rec = ts.do(t, http.MethodPost, "/admin/api/notifications/"+id+"/read", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodGet, "/admin/api/notifications", nil, cookie)
	decodeData(t, rec, &feed)
	require.Len(t, feed.Notifications, 1)
	assert.True(t, feed.Notifications[0].Read)
	assert.Zero(t, feed.UnreadCount)
}

func TestMarkAllNotificationsRead(t *testing.T) {
	ts := newTestServer(t)
	cookie := ts.login(t)

	for _, name := range []string{"Ama Owusu", "Kofi Asante"} {
		rec := ts.do(t, http.MethodPost, "/api/v1/inquiries/contact", ContactInquiryRequest{
			Name: name, Email: "parent@example.com", Message: "Hello",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := ts.do(t, http.MethodPost, "/admin/api/notifications/read-all", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var feed NotificationFeedResponse
	rec = ts.do(t, http.MethodGet, "/admin/api/notifications", nil, cookie)
	decodeData(t, rec, &feed)
	require.Len(t, feed.Notifications, 2)
	assert.Zero(t, feed.UnreadCount)
}

func TestStatusUpdateMarksNotificationRead(t *testing.T) {
	ts := newTestServer(t)
	cookie := ts.login(t)

	rec := ts.do(t, http.MethodPost, "/api/v1/inquiries/contact", ContactInquiryRequest{
		Name: "Ama Owusu", Email: "ama@example.com", Message: "Hello",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var feed NotificationFeedResponse
	rec = ts.do(t, http.MethodGet, "/admin/api/notifications", nil, cookie)
	decodeData(t, rec, &feed)
	require.Len(t, feed.Notifications, 1)
	id := feed.Notifications[0].ID

	rec = ts.do(t, http.MethodPut, "/admin/api/inquiries/contact/"+id+"/status", StatusRequest{
		Status: "read",
	}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodGet, "/admin/api/notifications", nil, cookie)
	decodeData(t, rec, &feed)
	require.Len(t, feed.Notifications, 1)
	assert.True(t, feed.Notifications[0].Read)
}

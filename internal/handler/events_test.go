// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/olegiv/portfolio-go/internal/model"
	"github.com/olegiv/portfolio-go/internal/store"
)

func createTestEvent(t *testing.T, h *Handler, message string, createdAt time.Time) {
	t.Helper()
	_, err := h.queries.CreateEvent(context.Background(), store.CreateEventParams{
		Level:     model.EventLevelWarning,
		Category:  model.EventCategoryAuth,
		Message:   message,
		Metadata:  "{}",
		CreatedAt: createdAt,
	})
	if err != nil {
		t.Fatalf("failed to create test event: %v", err)
	}
}

func TestListEventsNewestFirst(t *testing.T) {
	_, h := testSetup(t)
	now := time.Now()
	createTestEvent(t, h, "older", now.Add(-time.Hour))
	createTestEvent(t, h, "newer", now)

	w := executeHandler(t, h.ListEvents, newGetRequest(t, "/api/admin/events", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("ListEvents() status = %d, want %d", w.Code, http.StatusOK)
	}
	events, _ := unmarshalList[EventResponse](t, w)
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Message != "newer" {
		t.Errorf("first event = %q, want %q", events[0].Message, "newer")
	}
}

func TestListEventsLimit(t *testing.T) {
	_, h := testSetup(t)
	now := time.Now()
	for i := 0; i < 5; i++ {
		createTestEvent(t, h, "event", now.Add(time.Duration(i)*time.Second))
	}

	w := executeHandler(t, h.ListEvents, newGetRequest(t, "/api/admin/events?limit=3", nil))

	events, _ := unmarshalList[EventResponse](t, w)
	if len(events) != 3 {
		t.Errorf("got %d events, want 3", len(events))
	}
}

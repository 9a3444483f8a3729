// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"time"

	"github.com/olegiv/portfolio-go/internal/store"
)

// Event list limits
const (
	defaultEventLimit = 100
	maxEventLimit     = 500
)

// EventResponse represents an event log record in API responses.
type EventResponse struct {
	ID        int64     `json:"id"`
	Level     string    `json:"level"`
	Category  string    `json:"category"`
	Message   string    `json:"message"`
	UserID    *int64    `json:"user_id,omitempty"`
	Metadata  string    `json:"metadata,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func storeEventToResponse(e store.Event) EventResponse {
	resp := EventResponse{
		ID:        e.ID,
		Level:     e.Level,
		Category:  e.Category,
		Message:   e.Message,
		Metadata:  e.Metadata,
		CreatedAt: e.CreatedAt,
	}
	if e.UserID.Valid {
		resp.UserID = &e.UserID.Int64
	}
	return resp
}

// ListEvents handles GET /api/admin/events with an optional ?limit=,
// newest first.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	limit := ParseLimitParam(r, defaultEventLimit, maxEventLimit)

	events, err := h.queries.ListEvents(r.Context(), limit)
	if err != nil {
		WriteInternalError(w, "Failed to list events")
		return
	}

	responses := make([]EventResponse, 0, len(events))
	for _, e := range events {
		responses = append(responses, storeEventToResponse(e))
	}

	WriteSuccess(w, responses, &Meta{Total: int64(len(responses))})
}

// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/olegiv/portfolio-go/internal/store"
	"github.com/olegiv/portfolio-go/internal/util"
)

// AchievementResponse represents an achievement in API responses.
type AchievementResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        *string   `json:"date,omitempty"`
	ImageURL    *string   `json:"image_url,omitempty"`
	SortOrder   int64     `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
}

// AchievementRequest represents the request body for creating or updating an achievement.
type AchievementRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Date        *string `json:"date,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	SortOrder   int64   `json:"sort_order"`
}

func storeAchievementToResponse(a store.Achievement) AchievementResponse {
	resp := AchievementResponse{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		SortOrder:   a.SortOrder,
		CreatedAt:   a.CreatedAt,
	}
	if a.Date.Valid {
		resp.Date = &a.Date.String
	}
	if a.ImageURL.Valid {
		resp.ImageURL = &a.ImageURL.String
	}
	return resp
}

func (req AchievementRequest) validate() map[string]string {
	errs := make(map[string]string)
	if req.Title == "" {
		errs["title"] = "Title is required"
	}
	if req.Description == "" {
		errs["description"] = "Description is required"
	}
	return errs
}

// ListAchievements handles GET /api/achievements.
func (h *Handler) ListAchievements(w http.ResponseWriter, r *http.Request) {
	achievements, err := h.queries.ListAchievements(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list achievements")
		return
	}

	responses := make([]AchievementResponse, 0, len(achievements))
	for _, a := range achievements {
		responses = append(responses, storeAchievementToResponse(a))
	}

	WriteSuccess(w, responses, &Meta{Total: int64(len(responses))})
}

// GetAchievement handles GET /api/achievements/{id}.
func (h *Handler) GetAchievement(w http.ResponseWriter, r *http.Request) {
	achievement, ok := requireEntityByID(w, r, "achievement", func(id int64) (store.Achievement, error) {
		return h.queries.GetAchievementByID(r.Context(), id)
	})
	if !ok {
		return
	}
	WriteSuccess(w, storeAchievementToResponse(achievement), nil)
}

// CreateAchievement handles POST /api/admin/achievements.
func (h *Handler) CreateAchievement(w http.ResponseWriter, r *http.Request) {
	var req AchievementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		WriteValidationError(w, errs)
		return
	}

	achievement, err := h.queries.CreateAchievement(r.Context(), store.CreateAchievementParams{
		Title:       req.Title,
		Description: req.Description,
		Date:        util.NullStringFromPtr(req.Date),
		ImageURL:    util.NullStringFromPtr(req.ImageURL),
		SortOrder:   req.SortOrder,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		WriteInternalError(w, "Failed to create achievement")
		return
	}

	WriteCreated(w, storeAchievementToResponse(achievement))
}

// UpdateAchievement handles PUT /api/admin/achievements/{id}.
func (h *Handler) UpdateAchievement(w http.ResponseWriter, r *http.Request) {
	existing, ok := requireEntityByID(w, r, "achievement", func(id int64) (store.Achievement, error) {
		return h.queries.GetAchievementByID(r.Context(), id)
	})
	if !ok {
		return
	}

	var req AchievementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		WriteValidationError(w, errs)
		return
	}

	achievement, err := h.queries.UpdateAchievement(r.Context(), store.UpdateAchievementParams{
		Title:       req.Title,
		Description: req.Description,
		Date:        util.NullStringFromPtr(req.Date),
		ImageURL:    util.NullStringFromPtr(req.ImageURL),
		SortOrder:   req.SortOrder,
		ID:          existing.ID,
	})
	if err != nil {
		WriteInternalError(w, "Failed to update achievement")
		return
	}

	WriteSuccess(w, storeAchievementToResponse(achievement), nil)
}

// DeleteAchievement handles DELETE /api/admin/achievements/{id}.
func (h *Handler) DeleteAchievement(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid achievement ID", nil)
		return
	}

	if err := h.queries.DeleteAchievement(r.Context(), id); err != nil {
		WriteInternalError(w, "Failed to delete achievement")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

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

// HobbyResponse represents a hobby in API responses.
type HobbyResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	ImageURL    *string   `json:"image_url,omitempty"`
	SortOrder   int64     `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
}

// HobbyRequest represents the request body for creating or updating a hobby.
type HobbyRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	SortOrder   int64   `json:"sort_order"`
}

func storeHobbyToResponse(hb store.Hobby) HobbyResponse {
	resp := HobbyResponse{
		ID:        hb.ID,
		Name:      hb.Name,
		SortOrder: hb.SortOrder,
		CreatedAt: hb.CreatedAt,
	}
	if hb.Description.Valid {
		resp.Description = &hb.Description.String
	}
	if hb.ImageURL.Valid {
		resp.ImageURL = &hb.ImageURL.String
	}
	return resp
}

// ListHobbies handles GET /api/hobbies.
func (h *Handler) ListHobbies(w http.ResponseWriter, r *http.Request) {
	hobbies, err := h.queries.ListHobbies(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list hobbies")
		return
	}

	responses := make([]HobbyResponse, 0, len(hobbies))
	for _, hb := range hobbies {
		responses = append(responses, storeHobbyToResponse(hb))
	}

	WriteSuccess(w, responses, &Meta{Total: int64(len(responses))})
}

// GetHobby handles GET /api/hobbies/{id}.
func (h *Handler) GetHobby(w http.ResponseWriter, r *http.Request) {
	hobby, ok := requireEntityByID(w, r, "hobby", func(id int64) (store.Hobby, error) {
		return h.queries.GetHobbyByID(r.Context(), id)
	})
	if !ok {
		return
	}
	WriteSuccess(w, storeHobbyToResponse(hobby), nil)
}

// CreateHobby handles POST /api/admin/hobbies.
func (h *Handler) CreateHobby(w http.ResponseWriter, r *http.Request) {
	var req HobbyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}
	if req.Name == "" {
		WriteValidationError(w, map[string]string{"name": "Name is required"})
		return
	}

	hobby, err := h.queries.CreateHobby(r.Context(), store.CreateHobbyParams{
		Name:        req.Name,
		Description: util.NullStringFromPtr(req.Description),
		ImageURL:    util.NullStringFromPtr(req.ImageURL),
		SortOrder:   req.SortOrder,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		WriteInternalError(w, "Failed to create hobby")
		return
	}

	WriteCreated(w, storeHobbyToResponse(hobby))
}

// UpdateHobby handles PUT /api/admin/hobbies/{id}.
func (h *Handler) UpdateHobby(w http.ResponseWriter, r *http.Request) {
	existing, ok := requireEntityByID(w, r, "hobby", func(id int64) (store.Hobby, error) {
		return h.queries.GetHobbyByID(r.Context(), id)
	})
	if !ok {
		return
	}

	var req HobbyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}
	if req.Name == "" {
		WriteValidationError(w, map[string]string{"name": "Name is required"})
		return
	}

	hobby, err := h.queries.UpdateHobby(r.Context(), store.UpdateHobbyParams{
		Name:        req.Name,
		Description: util.NullStringFromPtr(req.Description),
		ImageURL:    util.NullStringFromPtr(req.ImageURL),
		SortOrder:   req.SortOrder,
		ID:          existing.ID,
	})
	if err != nil {
		WriteInternalError(w, "Failed to update hobby")
		return
	}

	WriteSuccess(w, storeHobbyToResponse(hobby), nil)
}

// DeleteHobby handles DELETE /api/admin/hobbies/{id}.
func (h *Handler) DeleteHobby(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid hobby ID", nil)
		return
	}

	if err := h.queries.DeleteHobby(r.Context(), id); err != nil {
		WriteInternalError(w, "Failed to delete hobby")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

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

// ExperienceResponse represents a work experience in API responses.
// StartDate and EndDate are display strings (e.g. "Jan 2023"), not
// parsed timestamps.
type ExperienceResponse struct {
	ID               int64     `json:"id"`
	Company          string    `json:"company"`
	Position         string    `json:"position"`
	Location         *string   `json:"location,omitempty"`
	StartDate        string    `json:"start_date"`
	EndDate          *string   `json:"end_date,omitempty"`
	Current          bool      `json:"current"`
	Description      string    `json:"description"`
	Responsibilities []string  `json:"responsibilities"`
	SortOrder        int64     `json:"sort_order"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ExperienceRequest represents the request body for creating or updating an experience.
type ExperienceRequest struct {
	Company          string   `json:"company"`
	Position         string   `json:"position"`
	Location         *string  `json:"location,omitempty"`
	StartDate        string   `json:"start_date"`
	EndDate          *string  `json:"end_date,omitempty"`
	Current          bool     `json:"current"`
	Description      string   `json:"description"`
	Responsibilities []string `json:"responsibilities"`
	SortOrder        int64    `json:"sort_order"`
}

func storeExperienceToResponse(e store.Experience) ExperienceResponse {
	resp := ExperienceResponse{
		ID:               e.ID,
		Company:          e.Company,
		Position:         e.Position,
		StartDate:        e.StartDate,
		Current:          e.Current,
		Description:      e.Description,
		Responsibilities: decodeStringList(e.Responsibilities),
		SortOrder:        e.SortOrder,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
	if e.Location.Valid {
		resp.Location = &e.Location.String
	}
	if e.EndDate.Valid {
		resp.EndDate = &e.EndDate.String
	}
	return resp
}

// decodeStringList parses a JSON string array stored as text. Malformed
// stored values degrade to an empty list rather than failing the response.
func decodeStringList(raw string) []string {
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil || items == nil {
		return []string{}
	}
	return items
}

// encodeStringList serializes a string list for text column storage.
// A nil list is stored as an empty JSON array.
func encodeStringList(items []string) string {
	if items == nil {
		items = []string{}
	}
	encoded, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(encoded)
}

func (req ExperienceRequest) validate() map[string]string {
	errs := make(map[string]string)
	if req.Company == "" {
		errs["company"] = "Company is required"
	}
	if req.Position == "" {
		errs["position"] = "Position is required"
	}
	if req.StartDate == "" {
		errs["start_date"] = "Start date is required"
	}
	return errs
}

// ListExperiences handles GET /api/experiences.
func (h *Handler) ListExperiences(w http.ResponseWriter, r *http.Request) {
	experiences, err := h.queries.ListExperiences(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list experiences")
		return
	}

	responses := make([]ExperienceResponse, 0, len(experiences))
	for _, e := range experiences {
		responses = append(responses, storeExperienceToResponse(e))
	}

	WriteSuccess(w, responses, &Meta{Total: int64(len(responses))})
}

// GetExperience handles GET /api/experiences/{id}.
func (h *Handler) GetExperience(w http.ResponseWriter, r *http.Request) {
	experience, ok := requireEntityByID(w, r, "experience", func(id int64) (store.Experience, error) {
		return h.queries.GetExperienceByID(r.Context(), id)
	})
	if !ok {
		return
	}
	WriteSuccess(w, storeExperienceToResponse(experience), nil)
}

// CreateExperience handles POST /api/admin/experiences.
func (h *Handler) CreateExperience(w http.ResponseWriter, r *http.Request) {
	var req ExperienceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		WriteValidationError(w, errs)
		return
	}

	now := time.Now()
	experience, err := h.queries.CreateExperience(r.Context(), store.CreateExperienceParams{
		Company:          req.Company,
		Position:         req.Position,
		Location:         util.NullStringFromPtr(req.Location),
		StartDate:        req.StartDate,
		EndDate:          util.NullStringFromPtr(req.EndDate),
		Current:          req.Current,
		Description:      req.Description,
		Responsibilities: encodeStringList(req.Responsibilities),
		SortOrder:        req.SortOrder,
		CreatedAt:        now,
		UpdatedAt:        now,
	})
	if err != nil {
		WriteInternalError(w, "Failed to create experience")
		return
	}

	WriteCreated(w, storeExperienceToResponse(experience))
}

// UpdateExperience handles PUT /api/admin/experiences/{id}.
func (h *Handler) UpdateExperience(w http.ResponseWriter, r *http.Request) {
	existing, ok := requireEntityByID(w, r, "experience", func(id int64) (store.Experience, error) {
		return h.queries.GetExperienceByID(r.Context(), id)
	})
	if !ok {
		return
	}

	var req ExperienceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		WriteValidationError(w, errs)
		return
	}

	experience, err := h.queries.UpdateExperience(r.Context(), store.UpdateExperienceParams{
		Company:          req.Company,
		Position:         req.Position,
		Location:         util.NullStringFromPtr(req.Location),
		StartDate:        req.StartDate,
		EndDate:          util.NullStringFromPtr(req.EndDate),
		Current:          req.Current,
		Description:      req.Description,
		Responsibilities: encodeStringList(req.Responsibilities),
		SortOrder:        req.SortOrder,
		UpdatedAt:        time.Now(),
		ID:               existing.ID,
	})
	if err != nil {
		WriteInternalError(w, "Failed to update experience")
		return
	}

	WriteSuccess(w, storeExperienceToResponse(experience), nil)
}

// DeleteExperience handles DELETE /api/admin/experiences/{id}.
func (h *Handler) DeleteExperience(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid experience ID", nil)
		return
	}

	if err := h.queries.DeleteExperience(r.Context(), id); err != nil {
		WriteInternalError(w, "Failed to delete experience")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

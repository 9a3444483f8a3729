// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/olegiv/portfolio-go/internal/model"
	"github.com/olegiv/portfolio-go/internal/store"
)

// SkillResponse represents a skill in API responses.
type SkillResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Proficiency int64     `json:"proficiency"`
	Featured    bool      `json:"featured"`
	SortOrder   int64     `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
}

// SkillRequest represents the request body for creating or updating a skill.
type SkillRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Proficiency int64  `json:"proficiency"`
	Featured    bool   `json:"featured"`
	SortOrder   int64  `json:"sort_order"`
}

func storeSkillToResponse(s store.Skill) SkillResponse {
	return SkillResponse{
		ID:          s.ID,
		Name:        s.Name,
		Category:    s.Category,
		Proficiency: s.Proficiency,
		Featured:    s.Featured,
		SortOrder:   s.SortOrder,
		CreatedAt:   s.CreatedAt,
	}
}

func (req SkillRequest) validate() map[string]string {
	errs := make(map[string]string)
	if req.Name == "" {
		errs["name"] = "Name is required"
	}
	if !model.IsValidSkillCategory(req.Category) {
		errs["category"] = "Unknown skill category"
	}
	if req.Proficiency < 0 || req.Proficiency > 100 {
		errs["proficiency"] = "Proficiency must be between 0 and 100"
	}
	return errs
}

// ListSkills handles GET /api/skills with an optional ?category= filter.
func (h *Handler) ListSkills(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var skills []store.Skill
	var err error

	if category := r.URL.Query().Get("category"); category != "" {
		if !model.IsValidSkillCategory(category) {
			WriteBadRequest(w, "Unknown skill category", nil)
			return
		}
		skills, err = h.queries.ListSkillsByCategory(ctx, category)
	} else {
		skills, err = h.queries.ListSkills(ctx)
	}
	if err != nil {
		WriteInternalError(w, "Failed to list skills")
		return
	}

	responses := make([]SkillResponse, 0, len(skills))
	for _, s := range skills {
		responses = append(responses, storeSkillToResponse(s))
	}

	WriteSuccess(w, responses, &Meta{Total: int64(len(responses))})
}

// GetSkill handles GET /api/skills/{id}.
func (h *Handler) GetSkill(w http.ResponseWriter, r *http.Request) {
	skill, ok := requireEntityByID(w, r, "skill", func(id int64) (store.Skill, error) {
		return h.queries.GetSkillByID(r.Context(), id)
	})
	if !ok {
		return
	}
	WriteSuccess(w, storeSkillToResponse(skill), nil)
}

// CreateSkill handles POST /api/admin/skills.
func (h *Handler) CreateSkill(w http.ResponseWriter, r *http.Request) {
	var req SkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		WriteValidationError(w, errs)
		return
	}

	skill, err := h.queries.CreateSkill(r.Context(), store.CreateSkillParams{
		Name:        req.Name,
		Category:    req.Category,
		Proficiency: req.Proficiency,
		Featured:    req.Featured,
		SortOrder:   req.SortOrder,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		WriteInternalError(w, "Failed to create skill")
		return
	}

	WriteCreated(w, storeSkillToResponse(skill))
}

// UpdateSkill handles PUT /api/admin/skills/{id}.
func (h *Handler) UpdateSkill(w http.ResponseWriter, r *http.Request) {
	existing, ok := requireEntityByID(w, r, "skill", func(id int64) (store.Skill, error) {
		return h.queries.GetSkillByID(r.Context(), id)
	})
	if !ok {
		return
	}

	var req SkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		WriteValidationError(w, errs)
		return
	}

	skill, err := h.queries.UpdateSkill(r.Context(), store.UpdateSkillParams{
		Name:        req.Name,
		Category:    req.Category,
		Proficiency: req.Proficiency,
		Featured:    req.Featured,
		SortOrder:   req.SortOrder,
		ID:          existing.ID,
	})
	if err != nil {
		WriteInternalError(w, "Failed to update skill")
		return
	}

	WriteSuccess(w, storeSkillToResponse(skill), nil)
}

// DeleteSkill handles DELETE /api/admin/skills/{id}.
func (h *Handler) DeleteSkill(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid skill ID", nil)
		return
	}

	if err := h.queries.DeleteSkill(r.Context(), id); err != nil {
		WriteInternalError(w, "Failed to delete skill")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListSkillCategories handles GET /api/skills/categories.
func (h *Handler) ListSkillCategories(w http.ResponseWriter, _ *http.Request) {
	WriteSuccess(w, model.SkillCategories, nil)
}

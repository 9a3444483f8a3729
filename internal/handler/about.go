// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/olegiv/portfolio-go/internal/store"
	"github.com/olegiv/portfolio-go/internal/util"
)

// AboutResponse represents the biography record in API responses.
type AboutResponse struct {
	ID              int64     `json:"id"`
	Headline        string    `json:"headline"`
	Bio             string    `json:"bio"`
	ProfileImageURL *string   `json:"profile_image_url,omitempty"`
	ResumeURL       *string   `json:"resume_url,omitempty"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// AboutRequest represents the request body for writing the biography record.
type AboutRequest struct {
	Headline        string  `json:"headline"`
	Bio             string  `json:"bio"`
	ProfileImageURL *string `json:"profile_image_url,omitempty"`
	ResumeURL       *string `json:"resume_url,omitempty"`
}

func storeAboutToResponse(a store.AboutInfo) AboutResponse {
	resp := AboutResponse{
		ID:        a.ID,
		Headline:  a.Headline,
		Bio:       a.Bio,
		UpdatedAt: a.UpdatedAt,
	}
	if a.ProfileImageURL.Valid {
		resp.ProfileImageURL = &a.ProfileImageURL.String
	}
	if a.ResumeURL.Valid {
		resp.ResumeURL = &a.ResumeURL.String
	}
	return resp
}

// GetAbout handles GET /api/about. Before the first write there is no
// record, which is reported as 404.
func (h *Handler) GetAbout(w http.ResponseWriter, r *http.Request) {
	about, err := h.queries.GetAboutInfo(r.Context())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "About info not found")
		} else {
			WriteInternalError(w, "Failed to retrieve about info")
		}
		return
	}
	WriteSuccess(w, storeAboutToResponse(about), nil)
}

// UpsertAbout handles POST /api/admin/about. The first write creates the
// single record; later writes update it in place.
func (h *Handler) UpsertAbout(w http.ResponseWriter, r *http.Request) {
	var req AboutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}

	validationErrors := make(map[string]string)
	if req.Headline == "" {
		validationErrors["headline"] = "Headline is required"
	}
	if req.Bio == "" {
		validationErrors["bio"] = "Bio is required"
	}
	if len(validationErrors) > 0 {
		WriteValidationError(w, validationErrors)
		return
	}

	about, err := h.queries.UpsertAboutInfo(r.Context(), store.UpsertAboutInfoParams{
		Headline:        req.Headline,
		Bio:             req.Bio,
		ProfileImageURL: util.NullStringFromPtr(req.ProfileImageURL),
		ResumeURL:       util.NullStringFromPtr(req.ResumeURL),
		UpdatedAt:       time.Now(),
	})
	if err != nil {
		WriteInternalError(w, "Failed to save about info")
		return
	}

	WriteSuccess(w, storeAboutToResponse(about), nil)
}

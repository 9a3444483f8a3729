// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/olegiv/portfolio-go/internal/store"
	"github.com/olegiv/portfolio-go/internal/util"
)

// SocialLinkResponse represents a social profile link in API responses.
type SocialLinkResponse struct {
	ID          int64   `json:"id"`
	Platform    string  `json:"platform"`
	URL         string  `json:"url"`
	DisplayName *string `json:"display_name,omitempty"`
	Active      bool    `json:"active"`
	SortOrder   int64   `json:"sort_order"`
}

// SocialLinkRequest represents the request body for creating or updating a social link.
type SocialLinkRequest struct {
	Platform    string  `json:"platform"`
	URL         string  `json:"url"`
	DisplayName *string `json:"display_name,omitempty"`
	Active      bool    `json:"active"`
	SortOrder   int64   `json:"sort_order"`
}

func storeSocialLinkToResponse(s store.SocialLink) SocialLinkResponse {
	resp := SocialLinkResponse{
		ID:        s.ID,
		Platform:  s.Platform,
		URL:       s.URL,
		Active:    s.Active,
		SortOrder: s.SortOrder,
	}
	if s.DisplayName.Valid {
		resp.DisplayName = &s.DisplayName.String
	}
	return resp
}

func (req SocialLinkRequest) validate() map[string]string {
	errs := make(map[string]string)
	if req.Platform == "" {
		errs["platform"] = "Platform is required"
	}
	if req.URL == "" {
		errs["url"] = "URL is required"
	} else if u, err := url.Parse(req.URL); err != nil || u.Scheme == "" || u.Host == "" {
		errs["url"] = "URL must be absolute"
	}
	return errs
}

// ListSocialLinks handles GET /api/social-links.
func (h *Handler) ListSocialLinks(w http.ResponseWriter, r *http.Request) {
	links, err := h.queries.ListSocialLinks(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list social links")
		return
	}

	responses := make([]SocialLinkResponse, 0, len(links))
	for _, s := range links {
		responses = append(responses, storeSocialLinkToResponse(s))
	}

	WriteSuccess(w, responses, &Meta{Total: int64(len(responses))})
}

// CreateSocialLink handles POST /api/admin/social-links.
func (h *Handler) CreateSocialLink(w http.ResponseWriter, r *http.Request) {
	var req SocialLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		WriteValidationError(w, errs)
		return
	}

	link, err := h.queries.CreateSocialLink(r.Context(), store.CreateSocialLinkParams{
		Platform:    req.Platform,
		URL:         req.URL,
		DisplayName: util.NullStringFromPtr(req.DisplayName),
		Active:      req.Active,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		WriteInternalError(w, "Failed to create social link")
		return
	}

	WriteCreated(w, storeSocialLinkToResponse(link))
}

// UpdateSocialLink handles PUT /api/admin/social-links/{id}.
func (h *Handler) UpdateSocialLink(w http.ResponseWriter, r *http.Request) {
	existing, ok := requireEntityByID(w, r, "social link", func(id int64) (store.SocialLink, error) {
		return h.queries.GetSocialLinkByID(r.Context(), id)
	})
	if !ok {
		return
	}

	var req SocialLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		WriteValidationError(w, errs)
		return
	}

	link, err := h.queries.UpdateSocialLink(r.Context(), store.UpdateSocialLinkParams{
		Platform:    req.Platform,
		URL:         req.URL,
		DisplayName: util.NullStringFromPtr(req.DisplayName),
		Active:      req.Active,
		SortOrder:   req.SortOrder,
		ID:          existing.ID,
	})
	if err != nil {
		WriteInternalError(w, "Failed to update social link")
		return
	}

	WriteSuccess(w, storeSocialLinkToResponse(link), nil)
}

// DeleteSocialLink handles DELETE /api/admin/social-links/{id}.
func (h *Handler) DeleteSocialLink(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid social link ID", nil)
		return
	}

	if err := h.queries.DeleteSocialLink(r.Context(), id); err != nil {
		WriteInternalError(w, "Failed to delete social link")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

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

// ProjectResponse represents a project in API responses.
type ProjectResponse struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Technologies string    `json:"technologies"`
	ImageURL     *string   `json:"image_url,omitempty"`
	ProjectURL   *string   `json:"project_url,omitempty"`
	GithubURL    *string   `json:"github_url,omitempty"`
	Featured     bool      `json:"featured"`
	SortOrder    int64     `json:"sort_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProjectRequest represents the request body for creating or updating a project.
type ProjectRequest struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Technologies string  `json:"technologies"`
	ImageURL     *string `json:"image_url,omitempty"`
	ProjectURL   *string `json:"project_url,omitempty"`
	GithubURL    *string `json:"github_url,omitempty"`
	Featured     bool    `json:"featured"`
	SortOrder    int64   `json:"sort_order"`
}

func storeProjectToResponse(p store.Project) ProjectResponse {
	resp := ProjectResponse{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Technologies: p.Technologies,
		Featured:     p.Featured,
		SortOrder:    p.SortOrder,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	if p.ImageURL.Valid {
		resp.ImageURL = &p.ImageURL.String
	}
	if p.ProjectURL.Valid {
		resp.ProjectURL = &p.ProjectURL.String
	}
	if p.GithubURL.Valid {
		resp.GithubURL = &p.GithubURL.String
	}
	return resp
}

func (req ProjectRequest) validate() map[string]string {
	errs := make(map[string]string)
	if req.Title == "" {
		errs["title"] = "Title is required"
	}
	if req.Description == "" {
		errs["description"] = "Description is required"
	}
	return errs
}

// ListProjects handles GET /api/projects.
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.queries.ListProjects(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list projects")
		return
	}

	responses := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, storeProjectToResponse(p))
	}

	WriteSuccess(w, responses, &Meta{Total: int64(len(responses))})
}

// GetProject handles GET /api/projects/{id}.
func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	project, ok := requireEntityByID(w, r, "project", func(id int64) (store.Project, error) {
		return h.queries.GetProjectByID(r.Context(), id)
	})
	if !ok {
		return
	}
	WriteSuccess(w, storeProjectToResponse(project), nil)
}

// CreateProject handles POST /api/admin/projects.
func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req ProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		WriteValidationError(w, errs)
		return
	}

	now := time.Now()
	project, err := h.queries.CreateProject(r.Context(), store.CreateProjectParams{
		Title:        req.Title,
		Description:  req.Description,
		Technologies: req.Technologies,
		ImageURL:     util.NullStringFromPtr(req.ImageURL),
		ProjectURL:   util.NullStringFromPtr(req.ProjectURL),
		GithubURL:    util.NullStringFromPtr(req.GithubURL),
		Featured:     req.Featured,
		SortOrder:    req.SortOrder,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		WriteInternalError(w, "Failed to create project")
		return
	}

	WriteCreated(w, storeProjectToResponse(project))
}

// UpdateProject handles PUT /api/admin/projects/{id}.
func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	existing, ok := requireEntityByID(w, r, "project", func(id int64) (store.Project, error) {
		return h.queries.GetProjectByID(r.Context(), id)
	})
	if !ok {
		return
	}

	var req ProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		WriteValidationError(w, errs)
		return
	}

	project, err := h.queries.UpdateProject(r.Context(), store.UpdateProjectParams{
		Title:        req.Title,
		Description:  req.Description,
		Technologies: req.Technologies,
		ImageURL:     util.NullStringFromPtr(req.ImageURL),
		ProjectURL:   util.NullStringFromPtr(req.ProjectURL),
		GithubURL:    util.NullStringFromPtr(req.GithubURL),
		Featured:     req.Featured,
		SortOrder:    req.SortOrder,
		UpdatedAt:    time.Now(),
		ID:           existing.ID,
	})
	if err != nil {
		WriteInternalError(w, "Failed to update project")
		return
	}

	WriteSuccess(w, storeProjectToResponse(project), nil)
}

// DeleteProject handles DELETE /api/admin/projects/{id}.
func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid project ID", nil)
		return
	}

	if err := h.queries.DeleteProject(r.Context(), id); err != nil {
		WriteInternalError(w, "Failed to delete project")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

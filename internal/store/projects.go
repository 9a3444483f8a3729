// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

const listProjects = `
SELECT id, title, description, technologies, image_url, project_url, github_url,
       featured, sort_order, created_at, updated_at
FROM projects
ORDER BY sort_order ASC
`

// ListProjects returns all projects ordered by sort order.
func (q *Queries) ListProjects(ctx context.Context) ([]Project, error) {
	rows, err := q.db.QueryContext(ctx, listProjects)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Project
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Technologies,
			&p.ImageURL, &p.ProjectURL, &p.GithubURL,
			&p.Featured, &p.SortOrder, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

const getProjectByID = `
SELECT id, title, description, technologies, image_url, project_url, github_url,
       featured, sort_order, created_at, updated_at
FROM projects WHERE id = ?
`

// GetProjectByID returns the project with the given ID.
func (q *Queries) GetProjectByID(ctx context.Context, id int64) (Project, error) {
	row := q.db.QueryRowContext(ctx, getProjectByID, id)
	var p Project
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Technologies,
		&p.ImageURL, &p.ProjectURL, &p.GithubURL,
		&p.Featured, &p.SortOrder, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

const createProject = `
INSERT INTO projects (title, description, technologies, image_url, project_url,
                      github_url, featured, sort_order, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id, title, description, technologies, image_url, project_url, github_url,
          featured, sort_order, created_at, updated_at
`

// CreateProjectParams holds parameters for CreateProject.
type CreateProjectParams struct {
	Title        string
	Description  string
	Technologies string
	ImageURL     sql.NullString
	ProjectURL   sql.NullString
	GithubURL    sql.NullString
	Featured     bool
	SortOrder    int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CreateProject inserts a new project and returns the created row.
func (q *Queries) CreateProject(ctx context.Context, arg CreateProjectParams) (Project, error) {
	row := q.db.QueryRowContext(ctx, createProject,
		arg.Title, arg.Description, arg.Technologies, arg.ImageURL, arg.ProjectURL,
		arg.GithubURL, arg.Featured, arg.SortOrder, arg.CreatedAt, arg.UpdatedAt)
	var p Project
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Technologies,
		&p.ImageURL, &p.ProjectURL, &p.GithubURL,
		&p.Featured, &p.SortOrder, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

const updateProject = `
UPDATE projects
SET title = ?, description = ?, technologies = ?, image_url = ?, project_url = ?,
    github_url = ?, featured = ?, sort_order = ?, updated_at = ?
WHERE id = ?
RETURNING id, title, description, technologies, image_url, project_url, github_url,
          featured, sort_order, created_at, updated_at
`

// UpdateProjectParams holds parameters for UpdateProject.
type UpdateProjectParams struct {
	Title        string
	Description  string
	Technologies string
	ImageURL     sql.NullString
	ProjectURL   sql.NullString
	GithubURL    sql.NullString
	Featured     bool
	SortOrder    int64
	UpdatedAt    time.Time
	ID           int64
}

// UpdateProject updates a project and returns the updated row.
func (q *Queries) UpdateProject(ctx context.Context, arg UpdateProjectParams) (Project, error) {
	row := q.db.QueryRowContext(ctx, updateProject,
		arg.Title, arg.Description, arg.Technologies, arg.ImageURL, arg.ProjectURL,
		arg.GithubURL, arg.Featured, arg.SortOrder, arg.UpdatedAt, arg.ID)
	var p Project
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Technologies,
		&p.ImageURL, &p.ProjectURL, &p.GithubURL,
		&p.Featured, &p.SortOrder, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

const deleteProject = `
DELETE FROM projects WHERE id = ?
`

// DeleteProject deletes the project with the given ID.
func (q *Queries) DeleteProject(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteProject, id)
	return err
}

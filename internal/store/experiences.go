// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

const listExperiences = `
SELECT id, company, position, location, start_date, end_date, current,
       description, responsibilities, sort_order, created_at, updated_at
FROM experiences
ORDER BY sort_order ASC
`

// ListExperiences returns all experiences ordered by sort order.
func (q *Queries) ListExperiences(ctx context.Context) ([]Experience, error) {
	rows, err := q.db.QueryContext(ctx, listExperiences)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Experience
	for rows.Next() {
		var e Experience
		if err := rows.Scan(&e.ID, &e.Company, &e.Position, &e.Location,
			&e.StartDate, &e.EndDate, &e.Current, &e.Description,
			&e.Responsibilities, &e.SortOrder, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

const getExperienceByID = `
SELECT id, company, position, location, start_date, end_date, current,
       description, responsibilities, sort_order, created_at, updated_at
FROM experiences WHERE id = ?
`

// GetExperienceByID returns the experience with the given ID.
func (q *Queries) GetExperienceByID(ctx context.Context, id int64) (Experience, error) {
	row := q.db.QueryRowContext(ctx, getExperienceByID, id)
	var e Experience
	err := row.Scan(&e.ID, &e.Company, &e.Position, &e.Location,
		&e.StartDate, &e.EndDate, &e.Current, &e.Description,
		&e.Responsibilities, &e.SortOrder, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

const createExperience = `
INSERT INTO experiences (company, position, location, start_date, end_date, current,
                         description, responsibilities, sort_order, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id, company, position, location, start_date, end_date, current,
          description, responsibilities, sort_order, created_at, updated_at
`

// CreateExperienceParams holds parameters for CreateExperience.
type CreateExperienceParams struct {
	Company          string
	Position         string
	Location         sql.NullString
	StartDate        string
	EndDate          sql.NullString
	Current          bool
	Description      string
	Responsibilities string
	SortOrder        int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CreateExperience inserts a new experience and returns the created row.
func (q *Queries) CreateExperience(ctx context.Context, arg CreateExperienceParams) (Experience, error) {
	row := q.db.QueryRowContext(ctx, createExperience,
		arg.Company, arg.Position, arg.Location, arg.StartDate, arg.EndDate, arg.Current,
		arg.Description, arg.Responsibilities, arg.SortOrder, arg.CreatedAt, arg.UpdatedAt)
	var e Experience
	err := row.Scan(&e.ID, &e.Company, &e.Position, &e.Location,
		&e.StartDate, &e.EndDate, &e.Current, &e.Description,
		&e.Responsibilities, &e.SortOrder, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

const updateExperience = `
UPDATE experiences
SET company = ?, position = ?, location = ?, start_date = ?, end_date = ?, current = ?,
    description = ?, responsibilities = ?, sort_order = ?, updated_at = ?
WHERE id = ?
RETURNING id, company, position, location, start_date, end_date, current,
          description, responsibilities, sort_order, created_at, updated_at
`

// UpdateExperienceParams holds parameters for UpdateExperience.
type UpdateExperienceParams struct {
	Company          string
	Position         string
	Location         sql.NullString
	StartDate        string
	EndDate          sql.NullString
	Current          bool
	Description      string
	Responsibilities string
	SortOrder        int64
	UpdatedAt        time.Time
	ID               int64
}

// UpdateExperience updates an experience and returns the updated row.
func (q *Queries) UpdateExperience(ctx context.Context, arg UpdateExperienceParams) (Experience, error) {
	row := q.db.QueryRowContext(ctx, updateExperience,
		arg.Company, arg.Position, arg.Location, arg.StartDate, arg.EndDate, arg.Current,
		arg.Description, arg.Responsibilities, arg.SortOrder, arg.UpdatedAt, arg.ID)
	var e Experience
	err := row.Scan(&e.ID, &e.Company, &e.Position, &e.Location,
		&e.StartDate, &e.EndDate, &e.Current, &e.Description,
		&e.Responsibilities, &e.SortOrder, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

const deleteExperience = `
DELETE FROM experiences WHERE id = ?
`

// DeleteExperience deletes the experience with the given ID.
func (q *Queries) DeleteExperience(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteExperience, id)
	return err
}

// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

const listHobbies = `
SELECT id, name, description, image_url, sort_order, created_at
FROM hobbies
ORDER BY sort_order ASC
`

// ListHobbies returns all hobbies ordered by sort order.
func (q *Queries) ListHobbies(ctx context.Context) ([]Hobby, error) {
	rows, err := q.db.QueryContext(ctx, listHobbies)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Hobby
	for rows.Next() {
		var h Hobby
		if err := rows.Scan(&h.ID, &h.Name, &h.Description, &h.ImageURL,
			&h.SortOrder, &h.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, h)
	}
	return items, rows.Err()
}

const getHobbyByID = `
SELECT id, name, description, image_url, sort_order, created_at
FROM hobbies WHERE id = ?
`

// GetHobbyByID returns the hobby with the given ID.
func (q *Queries) GetHobbyByID(ctx context.Context, id int64) (Hobby, error) {
	row := q.db.QueryRowContext(ctx, getHobbyByID, id)
	var h Hobby
	err := row.Scan(&h.ID, &h.Name, &h.Description, &h.ImageURL, &h.SortOrder, &h.CreatedAt)
	return h, err
}

const createHobby = `
INSERT INTO hobbies (name, description, image_url, sort_order, created_at)
VALUES (?, ?, ?, ?, ?)
RETURNING id, name, description, image_url, sort_order, created_at
`

// CreateHobbyParams holds parameters for CreateHobby.
type CreateHobbyParams struct {
	Name        string
	Description sql.NullString
	ImageURL    sql.NullString
	SortOrder   int64
	CreatedAt   time.Time
}

// CreateHobby inserts a new hobby and returns the created row.
func (q *Queries) CreateHobby(ctx context.Context, arg CreateHobbyParams) (Hobby, error) {
	row := q.db.QueryRowContext(ctx, createHobby,
		arg.Name, arg.Description, arg.ImageURL, arg.SortOrder, arg.CreatedAt)
	var h Hobby
	err := row.Scan(&h.ID, &h.Name, &h.Description, &h.ImageURL, &h.SortOrder, &h.CreatedAt)
	return h, err
}

const updateHobby = `
UPDATE hobbies
SET name = ?, description = ?, image_url = ?, sort_order = ?
WHERE id = ?
RETURNING id, name, description, image_url, sort_order, created_at
`

// UpdateHobbyParams holds parameters for UpdateHobby.
type UpdateHobbyParams struct {
	Name        string
	Description sql.NullString
	ImageURL    sql.NullString
	SortOrder   int64
	ID          int64
}

// UpdateHobby updates a hobby and returns the updated row.
func (q *Queries) UpdateHobby(ctx context.Context, arg UpdateHobbyParams) (Hobby, error) {
	row := q.db.QueryRowContext(ctx, updateHobby,
		arg.Name, arg.Description, arg.ImageURL, arg.SortOrder, arg.ID)
	var h Hobby
	err := row.Scan(&h.ID, &h.Name, &h.Description, &h.ImageURL, &h.SortOrder, &h.CreatedAt)
	return h, err
}

const deleteHobby = `
DELETE FROM hobbies WHERE id = ?
`

// DeleteHobby deletes the hobby with the given ID.
func (q *Queries) DeleteHobby(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteHobby, id)
	return err
}

// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

const listAchievements = `
SELECT id, title, description, date, image_url, sort_order, created_at
FROM achievements
ORDER BY sort_order ASC
`

// ListAchievements returns all achievements ordered by sort order.
func (q *Queries) ListAchievements(ctx context.Context) ([]Achievement, error) {
	rows, err := q.db.QueryContext(ctx, listAchievements)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Achievement
	for rows.Next() {
		var a Achievement
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.Date,
			&a.ImageURL, &a.SortOrder, &a.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

const getAchievementByID = `
SELECT id, title, description, date, image_url, sort_order, created_at
FROM achievements WHERE id = ?
`

// GetAchievementByID returns the achievement with the given ID.
func (q *Queries) GetAchievementByID(ctx context.Context, id int64) (Achievement, error) {
	row := q.db.QueryRowContext(ctx, getAchievementByID, id)
	var a Achievement
	err := row.Scan(&a.ID, &a.Title, &a.Description, &a.Date,
		&a.ImageURL, &a.SortOrder, &a.CreatedAt)
	return a, err
}

const createAchievement = `
INSERT INTO achievements (title, description, date, image_url, sort_order, created_at)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING id, title, description, date, image_url, sort_order, created_at
`

// CreateAchievementParams holds parameters for CreateAchievement.
type CreateAchievementParams struct {
	Title       string
	Description string
	Date        sql.NullString
	ImageURL    sql.NullString
	SortOrder   int64
	CreatedAt   time.Time
}

// CreateAchievement inserts a new achievement and returns the created row.
func (q *Queries) CreateAchievement(ctx context.Context, arg CreateAchievementParams) (Achievement, error) {
	row := q.db.QueryRowContext(ctx, createAchievement,
		arg.Title, arg.Description, arg.Date, arg.ImageURL, arg.SortOrder, arg.CreatedAt)
	var a Achievement
	err := row.Scan(&a.ID, &a.Title, &a.Description, &a.Date,
		&a.ImageURL, &a.SortOrder, &a.CreatedAt)
	return a, err
}

const updateAchievement = `
UPDATE achievements
SET title = ?, description = ?, date = ?, image_url = ?, sort_order = ?
WHERE id = ?
RETURNING id, title, description, date, image_url, sort_order, created_at
`

// UpdateAchievementParams holds parameters for UpdateAchievement.
type UpdateAchievementParams struct {
	Title       string
	Description string
	Date        sql.NullString
	ImageURL    sql.NullString
	SortOrder   int64
	ID          int64
}

// UpdateAchievement updates an achievement and returns the updated row.
func (q *Queries) UpdateAchievement(ctx context.Context, arg UpdateAchievementParams) (Achievement, error) {
	row := q.db.QueryRowContext(ctx, updateAchievement,
		arg.Title, arg.Description, arg.Date, arg.ImageURL, arg.SortOrder, arg.ID)
	var a Achievement
	err := row.Scan(&a.ID, &a.Title, &a.Description, &a.Date,
		&a.ImageURL, &a.SortOrder, &a.CreatedAt)
	return a, err
}

const deleteAchievement = `
DELETE FROM achievements WHERE id = ?
`

// DeleteAchievement deletes the achievement with the given ID.
func (q *Queries) DeleteAchievement(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteAchievement, id)
	return err
}

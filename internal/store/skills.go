// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"
)

const listSkills = `
SELECT id, name, category, proficiency, featured, sort_order, created_at
FROM skills
ORDER BY sort_order ASC
`

// ListSkills returns all skills ordered by sort order.
func (q *Queries) ListSkills(ctx context.Context) ([]Skill, error) {
	rows, err := q.db.QueryContext(ctx, listSkills)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Skill
	for rows.Next() {
		var s Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Proficiency,
			&s.Featured, &s.SortOrder, &s.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

const listSkillsByCategory = `
SELECT id, name, category, proficiency, featured, sort_order, created_at
FROM skills
WHERE category = ?
ORDER BY sort_order ASC
`

// ListSkillsByCategory returns skills in the given category ordered by sort order.
func (q *Queries) ListSkillsByCategory(ctx context.Context, category string) ([]Skill, error) {
	rows, err := q.db.QueryContext(ctx, listSkillsByCategory, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Skill
	for rows.Next() {
		var s Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Proficiency,
			&s.Featured, &s.SortOrder, &s.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

const getSkillByID = `
SELECT id, name, category, proficiency, featured, sort_order, created_at
FROM skills WHERE id = ?
`

// GetSkillByID returns the skill with the given ID.
func (q *Queries) GetSkillByID(ctx context.Context, id int64) (Skill, error) {
	row := q.db.QueryRowContext(ctx, getSkillByID, id)
	var s Skill
	err := row.Scan(&s.ID, &s.Name, &s.Category, &s.Proficiency,
		&s.Featured, &s.SortOrder, &s.CreatedAt)
	return s, err
}

const createSkill = `
INSERT INTO skills (name, category, proficiency, featured, sort_order, created_at)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING id, name, category, proficiency, featured, sort_order, created_at
`

// CreateSkillParams holds parameters for CreateSkill.
type CreateSkillParams struct {
	Name        string
	Category    string
	Proficiency int64
	Featured    bool
	SortOrder   int64
	CreatedAt   time.Time
}

// CreateSkill inserts a new skill and returns the created row.
func (q *Queries) CreateSkill(ctx context.Context, arg CreateSkillParams) (Skill, error) {
	row := q.db.QueryRowContext(ctx, createSkill,
		arg.Name, arg.Category, arg.Proficiency, arg.Featured, arg.SortOrder, arg.CreatedAt)
	var s Skill
	err := row.Scan(&s.ID, &s.Name, &s.Category, &s.Proficiency,
		&s.Featured, &s.SortOrder, &s.CreatedAt)
	return s, err
}

const updateSkill = `
UPDATE skills
SET name = ?, category = ?, proficiency = ?, featured = ?, sort_order = ?
WHERE id = ?
RETURNING id, name, category, proficiency, featured, sort_order, created_at
`

// UpdateSkillParams holds parameters for UpdateSkill.
type UpdateSkillParams struct {
	Name        string
	Category    string
	Proficiency int64
	Featured    bool
	SortOrder   int64
	ID          int64
}

// UpdateSkill updates a skill and returns the updated row.
func (q *Queries) UpdateSkill(ctx context.Context, arg UpdateSkillParams) (Skill, error) {
	row := q.db.QueryRowContext(ctx, updateSkill,
		arg.Name, arg.Category, arg.Proficiency, arg.Featured, arg.SortOrder, arg.ID)
	var s Skill
	err := row.Scan(&s.ID, &s.Name, &s.Category, &s.Proficiency,
		&s.Featured, &s.SortOrder, &s.CreatedAt)
	return s, err
}

const deleteSkill = `
DELETE FROM skills WHERE id = ?
`

// DeleteSkill deletes the skill with the given ID.
func (q *Queries) DeleteSkill(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteSkill, id)
	return err
}

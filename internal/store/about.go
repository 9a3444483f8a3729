// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

const getAboutInfo = `
SELECT id, headline, bio, profile_image_url, resume_url, updated_at
FROM about_info
ORDER BY id ASC
LIMIT 1
`

// GetAboutInfo returns the singleton about record, or sql.ErrNoRows when unset.
func (q *Queries) GetAboutInfo(ctx context.Context) (AboutInfo, error) {
	row := q.db.QueryRowContext(ctx, getAboutInfo)
	var a AboutInfo
	err := row.Scan(&a.ID, &a.Headline, &a.Bio, &a.ProfileImageURL, &a.ResumeURL, &a.UpdatedAt)
	return a, err
}

const createAboutInfo = `
INSERT INTO about_info (headline, bio, profile_image_url, resume_url, updated_at)
VALUES (?, ?, ?, ?, ?)
RETURNING id, headline, bio, profile_image_url, resume_url, updated_at
`

const updateAboutInfo = `
UPDATE about_info
SET headline = ?, bio = ?, profile_image_url = ?, resume_url = ?, updated_at = ?
WHERE id = ?
RETURNING id, headline, bio, profile_image_url, resume_url, updated_at
`

// UpsertAboutInfoParams holds parameters for UpsertAboutInfo.
type UpsertAboutInfoParams struct {
	Headline        string
	Bio             string
	ProfileImageURL sql.NullString
	ResumeURL       sql.NullString
	UpdatedAt       time.Time
}

// UpsertAboutInfo creates the about record on first write and updates the
// existing row afterwards, keeping about_info a singleton.
func (q *Queries) UpsertAboutInfo(ctx context.Context, arg UpsertAboutInfoParams) (AboutInfo, error) {
	existing, err := q.GetAboutInfo(ctx)
	if err == sql.ErrNoRows {
		row := q.db.QueryRowContext(ctx, createAboutInfo,
			arg.Headline, arg.Bio, arg.ProfileImageURL, arg.ResumeURL, arg.UpdatedAt)
		var a AboutInfo
		err := row.Scan(&a.ID, &a.Headline, &a.Bio, &a.ProfileImageURL, &a.ResumeURL, &a.UpdatedAt)
		return a, err
	}
	if err != nil {
		return AboutInfo{}, err
	}

	row := q.db.QueryRowContext(ctx, updateAboutInfo,
		arg.Headline, arg.Bio, arg.ProfileImageURL, arg.ResumeURL, arg.UpdatedAt, existing.ID)
	var a AboutInfo
	err = row.Scan(&a.ID, &a.Headline, &a.Bio, &a.ProfileImageURL, &a.ResumeURL, &a.UpdatedAt)
	return a, err
}

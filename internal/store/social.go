// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
)

const listSocialLinks = `
SELECT id, platform, url, display_name, active, sort_order
FROM social_links
ORDER BY sort_order ASC
`

// ListSocialLinks returns all social links ordered by sort order.
func (q *Queries) ListSocialLinks(ctx context.Context) ([]SocialLink, error) {
	rows, err := q.db.QueryContext(ctx, listSocialLinks)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []SocialLink
	for rows.Next() {
		var s SocialLink
		if err := rows.Scan(&s.ID, &s.Platform, &s.URL, &s.DisplayName,
			&s.Active, &s.SortOrder); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

const getSocialLinkByID = `
SELECT id, platform, url, display_name, active, sort_order
FROM social_links WHERE id = ?
`

// GetSocialLinkByID returns the social link with the given ID.
func (q *Queries) GetSocialLinkByID(ctx context.Context, id int64) (SocialLink, error) {
	row := q.db.QueryRowContext(ctx, getSocialLinkByID, id)
	var s SocialLink
	err := row.Scan(&s.ID, &s.Platform, &s.URL, &s.DisplayName, &s.Active, &s.SortOrder)
	return s, err
}

const createSocialLink = `
INSERT INTO social_links (platform, url, display_name, active, sort_order)
VALUES (?, ?, ?, ?, ?)
RETURNING id, platform, url, display_name, active, sort_order
`

// CreateSocialLinkParams holds parameters for CreateSocialLink.
type CreateSocialLinkParams struct {
	Platform    string
	URL         string
	DisplayName sql.NullString
	Active      bool
	SortOrder   int64
}

// CreateSocialLink inserts a new social link and returns the created row.
func (q *Queries) CreateSocialLink(ctx context.Context, arg CreateSocialLinkParams) (SocialLink, error) {
	row := q.db.QueryRowContext(ctx, createSocialLink,
		arg.Platform, arg.URL, arg.DisplayName, arg.Active, arg.SortOrder)
	var s SocialLink
	err := row.Scan(&s.ID, &s.Platform, &s.URL, &s.DisplayName, &s.Active, &s.SortOrder)
	return s, err
}

const updateSocialLink = `
UPDATE social_links
SET platform = ?, url = ?, display_name = ?, active = ?, sort_order = ?
WHERE id = ?
RETURNING id, platform, url, display_name, active, sort_order
`

// UpdateSocialLinkParams holds parameters for UpdateSocialLink.
type UpdateSocialLinkParams struct {
	Platform    string
	URL         string
	DisplayName sql.NullString
	Active      bool
	SortOrder   int64
	ID          int64
}

// UpdateSocialLink updates a social link and returns the updated row.
func (q *Queries) UpdateSocialLink(ctx context.Context, arg UpdateSocialLinkParams) (SocialLink, error) {
	row := q.db.QueryRowContext(ctx, updateSocialLink,
		arg.Platform, arg.URL, arg.DisplayName, arg.Active, arg.SortOrder, arg.ID)
	var s SocialLink
	err := row.Scan(&s.ID, &s.Platform, &s.URL, &s.DisplayName, &s.Active, &s.SortOrder)
	return s, err
}

const deleteSocialLink = `
DELETE FROM social_links WHERE id = ?
`

// DeleteSocialLink deletes the social link with the given ID.
func (q *Queries) DeleteSocialLink(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteSocialLink, id)
	return err
}

// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

const listUploads = `
SELECT id, filename, original_name, mime_type, size, url, uploaded_by, created_at
FROM uploads
ORDER BY created_at DESC
`

// ListUploads returns all uploads, newest first.
func (q *Queries) ListUploads(ctx context.Context) ([]Upload, error) {
	rows, err := q.db.QueryContext(ctx, listUploads)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Upload
	for rows.Next() {
		var u Upload
		if err := rows.Scan(&u.ID, &u.Filename, &u.OriginalName, &u.MimeType,
			&u.Size, &u.URL, &u.UploadedBy, &u.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, u)
	}
	return items, rows.Err()
}

const getUploadByID = `
SELECT id, filename, original_name, mime_type, size, url, uploaded_by, created_at
FROM uploads WHERE id = ?
`

// GetUploadByID returns the upload with the given ID.
func (q *Queries) GetUploadByID(ctx context.Context, id int64) (Upload, error) {
	row := q.db.QueryRowContext(ctx, getUploadByID, id)
	var u Upload
	err := row.Scan(&u.ID, &u.Filename, &u.OriginalName, &u.MimeType,
		&u.Size, &u.URL, &u.UploadedBy, &u.CreatedAt)
	return u, err
}

const getUploadByFilename = `
SELECT id, filename, original_name, mime_type, size, url, uploaded_by, created_at
FROM uploads WHERE filename = ?
`

// GetUploadByFilename returns the upload with the given stored filename.
func (q *Queries) GetUploadByFilename(ctx context.Context, filename string) (Upload, error) {
	row := q.db.QueryRowContext(ctx, getUploadByFilename, filename)
	var u Upload
	err := row.Scan(&u.ID, &u.Filename, &u.OriginalName, &u.MimeType,
		&u.Size, &u.URL, &u.UploadedBy, &u.CreatedAt)
	return u, err
}

const createUpload = `
INSERT INTO uploads (filename, original_name, mime_type, size, url, uploaded_by, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
RETURNING id, filename, original_name, mime_type, size, url, uploaded_by, created_at
`

// CreateUploadParams holds parameters for CreateUpload.
type CreateUploadParams struct {
	Filename     string
	OriginalName string
	MimeType     string
	Size         int64
	URL          string
	UploadedBy   sql.NullInt64
	CreatedAt    time.Time
}

// CreateUpload inserts a new upload record and returns the created row.
func (q *Queries) CreateUpload(ctx context.Context, arg CreateUploadParams) (Upload, error) {
	row := q.db.QueryRowContext(ctx, createUpload,
		arg.Filename, arg.OriginalName, arg.MimeType, arg.Size, arg.URL, arg.UploadedBy, arg.CreatedAt)
	var u Upload
	err := row.Scan(&u.ID, &u.Filename, &u.OriginalName, &u.MimeType,
		&u.Size, &u.URL, &u.UploadedBy, &u.CreatedAt)
	return u, err
}

const deleteUpload = `
DELETE FROM uploads WHERE id = ?
`

// DeleteUpload deletes the upload record with the given ID.
func (q *Queries) DeleteUpload(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteUpload, id)
	return err
}

// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

const listCertifications = `
SELECT id, name, issuer, issue_date, expiry_date, description, credential_id,
       credential_url, image_url, sort_order, created_at
FROM certifications
ORDER BY sort_order ASC
`

// ListCertifications returns all certifications ordered by sort order.
func (q *Queries) ListCertifications(ctx context.Context) ([]Certification, error) {
	rows, err := q.db.QueryContext(ctx, listCertifications)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Certification
	for rows.Next() {
		var c Certification
		if err := rows.Scan(&c.ID, &c.Name, &c.Issuer, &c.IssueDate, &c.ExpiryDate,
			&c.Description, &c.CredentialID, &c.CredentialURL, &c.ImageURL,
			&c.SortOrder, &c.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

const getCertificationByID = `
SELECT id, name, issuer, issue_date, expiry_date, description, credential_id,
       credential_url, image_url, sort_order, created_at
FROM certifications WHERE id = ?
`

// GetCertificationByID returns the certification with the given ID.
func (q *Queries) GetCertificationByID(ctx context.Context, id int64) (Certification, error) {
	row := q.db.QueryRowContext(ctx, getCertificationByID, id)
	var c Certification
	err := row.Scan(&c.ID, &c.Name, &c.Issuer, &c.IssueDate, &c.ExpiryDate,
		&c.Description, &c.CredentialID, &c.CredentialURL, &c.ImageURL,
		&c.SortOrder, &c.CreatedAt)
	return c, err
}

const createCertification = `
INSERT INTO certifications (name, issuer, issue_date, expiry_date, description,
                            credential_id, credential_url, image_url, sort_order, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id, name, issuer, issue_date, expiry_date, description, credential_id,
          credential_url, image_url, sort_order, created_at
`

// CreateCertificationParams holds parameters for CreateCertification.
type CreateCertificationParams struct {
	Name          string
	Issuer        string
	IssueDate     string
	ExpiryDate    sql.NullString
	Description   sql.NullString
	CredentialID  sql.NullString
	CredentialURL sql.NullString
	ImageURL      sql.NullString
	SortOrder     int64
	CreatedAt     time.Time
}

// CreateCertification inserts a new certification and returns the created row.
func (q *Queries) CreateCertification(ctx context.Context, arg CreateCertificationParams) (Certification, error) {
	row := q.db.QueryRowContext(ctx, createCertification,
		arg.Name, arg.Issuer, arg.IssueDate, arg.ExpiryDate, arg.Description,
		arg.CredentialID, arg.CredentialURL, arg.ImageURL, arg.SortOrder, arg.CreatedAt)
	var c Certification
	err := row.Scan(&c.ID, &c.Name, &c.Issuer, &c.IssueDate, &c.ExpiryDate,
		&c.Description, &c.CredentialID, &c.CredentialURL, &c.ImageURL,
		&c.SortOrder, &c.CreatedAt)
	return c, err
}

const updateCertification = `
UPDATE certifications
SET name = ?, issuer = ?, issue_date = ?, expiry_date = ?, description = ?,
    credential_id = ?, credential_url = ?, image_url = ?, sort_order = ?
WHERE id = ?
RETURNING id, name, issuer, issue_date, expiry_date, description, credential_id,
          credential_url, image_url, sort_order, created_at
`

// UpdateCertificationParams holds parameters for UpdateCertification.
type UpdateCertificationParams struct {
	Name          string
	Issuer        string
	IssueDate     string
	ExpiryDate    sql.NullString
	Description   sql.NullString
	CredentialID  sql.NullString
	CredentialURL sql.NullString
	ImageURL      sql.NullString
	SortOrder     int64
	ID            int64
}

// UpdateCertification updates a certification and returns the updated row.
func (q *Queries) UpdateCertification(ctx context.Context, arg UpdateCertificationParams) (Certification, error) {
	row := q.db.QueryRowContext(ctx, updateCertification,
		arg.Name, arg.Issuer, arg.IssueDate, arg.ExpiryDate, arg.Description,
		arg.CredentialID, arg.CredentialURL, arg.ImageURL, arg.SortOrder, arg.ID)
	var c Certification
	err := row.Scan(&c.ID, &c.Name, &c.Issuer, &c.IssueDate, &c.ExpiryDate,
		&c.Description, &c.CredentialID, &c.CredentialURL, &c.ImageURL,
		&c.SortOrder, &c.CreatedAt)
	return c, err
}

const deleteCertification = `
DELETE FROM certifications WHERE id = ?
`

// DeleteCertification deletes the certification with the given ID.
func (q *Queries) DeleteCertification(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteCertification, id)
	return err
}

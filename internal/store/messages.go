// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"
)

const listContactMessages = `
SELECT id, name, email, subject, message, read, archived, created_at
FROM contact_messages
ORDER BY created_at DESC
`

// ListContactMessages returns all contact messages, newest first.
func (q *Queries) ListContactMessages(ctx context.Context) ([]ContactMessage, error) {
	rows, err := q.db.QueryContext(ctx, listContactMessages)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ContactMessage
	for rows.Next() {
		var m ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message,
			&m.Read, &m.Archived, &m.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

const getContactMessageByID = `
SELECT id, name, email, subject, message, read, archived, created_at
FROM contact_messages WHERE id = ?
`

// GetContactMessageByID returns the contact message with the given ID.
func (q *Queries) GetContactMessageByID(ctx context.Context, id int64) (ContactMessage, error) {
	row := q.db.QueryRowContext(ctx, getContactMessageByID, id)
	var m ContactMessage
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message,
		&m.Read, &m.Archived, &m.CreatedAt)
	return m, err
}

const createContactMessage = `
INSERT INTO contact_messages (name, email, subject, message, read, archived, created_at)
VALUES (?, ?, ?, ?, 0, 0, ?)
RETURNING id, name, email, subject, message, read, archived, created_at
`

// CreateContactMessageParams holds parameters for CreateContactMessage.
type CreateContactMessageParams struct {
	Name      string
	Email     string
	Subject   string
	Message   string
	CreatedAt time.Time
}

// CreateContactMessage inserts a new contact message and returns the created row.
func (q *Queries) CreateContactMessage(ctx context.Context, arg CreateContactMessageParams) (ContactMessage, error) {
	row := q.db.QueryRowContext(ctx, createContactMessage,
		arg.Name, arg.Email, arg.Subject, arg.Message, arg.CreatedAt)
	var m ContactMessage
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message,
		&m.Read, &m.Archived, &m.CreatedAt)
	return m, err
}

const markContactMessageRead = `
UPDATE contact_messages SET read = 1 WHERE id = ?
RETURNING id, name, email, subject, message, read, archived, created_at
`

// MarkContactMessageRead marks a contact message as read and returns the updated row.
func (q *Queries) MarkContactMessageRead(ctx context.Context, id int64) (ContactMessage, error) {
	row := q.db.QueryRowContext(ctx, markContactMessageRead, id)
	var m ContactMessage
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message,
		&m.Read, &m.Archived, &m.CreatedAt)
	return m, err
}

const archiveContactMessage = `
UPDATE contact_messages SET archived = 1 WHERE id = ?
RETURNING id, name, email, subject, message, read, archived, created_at
`

// ArchiveContactMessage marks a contact message as archived and returns the updated row.
func (q *Queries) ArchiveContactMessage(ctx context.Context, id int64) (ContactMessage, error) {
	row := q.db.QueryRowContext(ctx, archiveContactMessage, id)
	var m ContactMessage
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message,
		&m.Read, &m.Archived, &m.CreatedAt)
	return m, err
}

const deleteContactMessage = `
DELETE FROM contact_messages WHERE id = ?
`

// DeleteContactMessage deletes the contact message with the given ID.
func (q *Queries) DeleteContactMessage(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteContactMessage, id)
	return err
}

// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"database/sql"
	"time"
)

// User is a registered account. PasswordHash is never serialized.
type User struct {
	ID           int64
	Username     string
	Email        sql.NullString
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

// Project is a portfolio project entry.
type Project struct {
	ID           int64
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

// Experience is a work history entry. Responsibilities is a JSON array
// stored as text.
type Experience struct {
	ID               int64
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

// Skill is a skill entry with a 0-100 proficiency.
type Skill struct {
	ID          int64
	Name        string
	Category    string
	Proficiency int64
	Featured    bool
	SortOrder   int64
	CreatedAt   time.Time
}

// Certification is a professional certification entry.
type Certification struct {
	ID            int64
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

// Achievement is a notable accomplishment entry.
type Achievement struct {
	ID          int64
	Title       string
	Description string
	Date        sql.NullString
	ImageURL    sql.NullString
	SortOrder   int64
	CreatedAt   time.Time
}

// Hobby is a personal interest entry.
type Hobby struct {
	ID          int64
	Name        string
	Description sql.NullString
	ImageURL    sql.NullString
	SortOrder   int64
	CreatedAt   time.Time
}

// ContactMessage is a visitor-submitted contact form message.
type ContactMessage struct {
	ID        int64
	Name      string
	Email     string
	Subject   string
	Message   string
	Read      bool
	Archived  bool
	CreatedAt time.Time
}

// AboutInfo is the singleton biography record.
type AboutInfo struct {
	ID              int64
	Headline        string
	Bio             string
	ProfileImageURL sql.NullString
	ResumeURL       sql.NullString
	UpdatedAt       time.Time
}

// BlogPost is a blog article. Tags is a JSON array stored as text.
type BlogPost struct {
	ID               int64
	Title            string
	Slug             string
	Content          string
	Excerpt          sql.NullString
	FeaturedImageURL sql.NullString
	Published        bool
	PublishDate      time.Time
	AuthorID         sql.NullInt64
	Tags             string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Upload is a stored file record.
type Upload struct {
	ID           int64
	Filename     string
	OriginalName string
	MimeType     string
	Size         int64
	URL          string
	UploadedBy   sql.NullInt64
	CreatedAt    time.Time
}

// SocialLink is a social profile link shown on the site.
type SocialLink struct {
	ID          int64
	Platform    string
	URL         string
	DisplayName sql.NullString
	Active      bool
	SortOrder   int64
}

// Event is an event log record.
type Event struct {
	ID        int64
	Level     string
	Category  string
	Message   string
	UserID    sql.NullInt64
	Metadata  string
	CreatedAt time.Time
}

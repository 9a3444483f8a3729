// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

const blogPostColumns = `id, title, slug, content, excerpt, featured_image_url,
       published, publish_date, author_id, tags, created_at, updated_at`

func scanBlogPost(row *sql.Row) (BlogPost, error) {
	var p BlogPost
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Content, &p.Excerpt, &p.FeaturedImageURL,
		&p.Published, &p.PublishDate, &p.AuthorID, &p.Tags, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

const listBlogPosts = `
SELECT ` + blogPostColumns + `
FROM blog_posts
ORDER BY publish_date DESC
`

// ListBlogPosts returns all blog posts, newest publish date first.
func (q *Queries) ListBlogPosts(ctx context.Context) ([]BlogPost, error) {
	return q.queryBlogPosts(ctx, listBlogPosts)
}

const listPublishedBlogPosts = `
SELECT ` + blogPostColumns + `
FROM blog_posts
WHERE published = 1 AND publish_date <= ?
ORDER BY publish_date DESC
`

// ListPublishedBlogPosts returns posts that are published and whose publish
// date is not in the future, newest first.
func (q *Queries) ListPublishedBlogPosts(ctx context.Context, now time.Time) ([]BlogPost, error) {
	return q.queryBlogPosts(ctx, listPublishedBlogPosts, now)
}

func (q *Queries) queryBlogPosts(ctx context.Context, query string, args ...interface{}) ([]BlogPost, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []BlogPost
	for rows.Next() {
		var p BlogPost
		if err := rows.Scan(&p.ID, &p.Title, &p.Slug, &p.Content, &p.Excerpt, &p.FeaturedImageURL,
			&p.Published, &p.PublishDate, &p.AuthorID, &p.Tags, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

const getBlogPostByID = `
SELECT ` + blogPostColumns + `
FROM blog_posts WHERE id = ?
`

// GetBlogPostByID returns the blog post with the given ID.
func (q *Queries) GetBlogPostByID(ctx context.Context, id int64) (BlogPost, error) {
	return scanBlogPost(q.db.QueryRowContext(ctx, getBlogPostByID, id))
}

const getPublishedBlogPostBySlug = `
SELECT ` + blogPostColumns + `
FROM blog_posts
WHERE slug = ? AND published = 1 AND publish_date <= ?
`

// GetPublishedBlogPostBySlug returns the publicly visible post with the given
// slug. Drafts and future-dated posts yield sql.ErrNoRows.
func (q *Queries) GetPublishedBlogPostBySlug(ctx context.Context, slug string, now time.Time) (BlogPost, error) {
	return scanBlogPost(q.db.QueryRowContext(ctx, getPublishedBlogPostBySlug, slug, now))
}

const countBlogPostsBySlug = `
SELECT COUNT(*) FROM blog_posts WHERE slug = ?
`

// CountBlogPostsBySlug returns the number of posts with the given slug.
func (q *Queries) CountBlogPostsBySlug(ctx context.Context, slug string) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countBlogPostsBySlug, slug).Scan(&count)
	return count, err
}

const countBlogPostsBySlugExcluding = `
SELECT COUNT(*) FROM blog_posts WHERE slug = ? AND id != ?
`

// CountBlogPostsBySlugExcluding returns the number of posts other than id
// that use the given slug.
func (q *Queries) CountBlogPostsBySlugExcluding(ctx context.Context, slug string, id int64) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countBlogPostsBySlugExcluding, slug, id).Scan(&count)
	return count, err
}

const createBlogPost = `
INSERT INTO blog_posts (title, slug, content, excerpt, featured_image_url,
                        published, publish_date, author_id, tags, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING ` + blogPostColumns + `
`

// CreateBlogPostParams holds parameters for CreateBlogPost.
type CreateBlogPostParams struct {
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

// CreateBlogPost inserts a new blog post and returns the created row.
func (q *Queries) CreateBlogPost(ctx context.Context, arg CreateBlogPostParams) (BlogPost, error) {
	return scanBlogPost(q.db.QueryRowContext(ctx, createBlogPost,
		arg.Title, arg.Slug, arg.Content, arg.Excerpt, arg.FeaturedImageURL,
		arg.Published, arg.PublishDate, arg.AuthorID, arg.Tags, arg.CreatedAt, arg.UpdatedAt))
}

const updateBlogPost = `
UPDATE blog_posts
SET title = ?, slug = ?, content = ?, excerpt = ?, featured_image_url = ?,
    published = ?, publish_date = ?, tags = ?, updated_at = ?
WHERE id = ?
RETURNING ` + blogPostColumns + `
`

// UpdateBlogPostParams holds parameters for UpdateBlogPost.
type UpdateBlogPostParams struct {
	Title            string
	Slug             string
	Content          string
	Excerpt          sql.NullString
	FeaturedImageURL sql.NullString
	Published        bool
	PublishDate      time.Time
	Tags             string
	UpdatedAt        time.Time
	ID               int64
}

// UpdateBlogPost updates a blog post and returns the updated row.
func (q *Queries) UpdateBlogPost(ctx context.Context, arg UpdateBlogPostParams) (BlogPost, error) {
	return scanBlogPost(q.db.QueryRowContext(ctx, updateBlogPost,
		arg.Title, arg.Slug, arg.Content, arg.Excerpt, arg.FeaturedImageURL,
		arg.Published, arg.PublishDate, arg.Tags, arg.UpdatedAt, arg.ID))
}

const deleteBlogPost = `
DELETE FROM blog_posts WHERE id = ?
`

// DeleteBlogPost deletes the blog post with the given ID.
func (q *Queries) DeleteBlogPost(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteBlogPost, id)
	return err
}

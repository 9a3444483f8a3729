// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/portfolio-go/internal/middleware"
	"github.com/olegiv/portfolio-go/internal/render"
	"github.com/olegiv/portfolio-go/internal/store"
	"github.com/olegiv/portfolio-go/internal/util"
)

// BlogPostResponse represents a blog post in API responses. ContentHTML
// is only populated on public endpoints, where the markdown is rendered
// and sanitized.
type BlogPostResponse struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	Content          string    `json:"content"`
	ContentHTML      string    `json:"content_html,omitempty"`
	Excerpt          *string   `json:"excerpt,omitempty"`
	FeaturedImageURL *string   `json:"featured_image_url,omitempty"`
	Published        bool      `json:"published"`
	PublishDate      time.Time `json:"publish_date"`
	AuthorID         *int64    `json:"author_id,omitempty"`
	Tags             []string  `json:"tags"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// BlogPostRequest represents the request body for creating or updating a blog post.
// An empty slug is generated from the title.
type BlogPostRequest struct {
	Title            string   `json:"title"`
	Slug             string   `json:"slug"`
	Content          string   `json:"content"`
	Excerpt          *string  `json:"excerpt,omitempty"`
	FeaturedImageURL *string  `json:"featured_image_url,omitempty"`
	Published        bool     `json:"published"`
	PublishDate      *string  `json:"publish_date,omitempty"`
	Tags             []string `json:"tags"`
}

func storeBlogPostToResponse(p store.BlogPost) BlogPostResponse {
	resp := BlogPostResponse{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Content:     p.Content,
		Published:   p.Published,
		PublishDate: p.PublishDate,
		Tags:        decodeStringList(p.Tags),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.Excerpt.Valid {
		resp.Excerpt = &p.Excerpt.String
	}
	if p.FeaturedImageURL.Valid {
		resp.FeaturedImageURL = &p.FeaturedImageURL.String
	}
	if p.AuthorID.Valid {
		resp.AuthorID = &p.AuthorID.Int64
	}
	return resp
}

// withRenderedContent fills ContentHTML. Rendering failures degrade to the
// raw markdown being the only representation.
func withRenderedContent(resp BlogPostResponse) BlogPostResponse {
	html, err := render.MarkdownToHTML(resp.Content)
	if err != nil {
		slog.Warn("failed to render blog post content", "post_id", resp.ID, "error", err)
		return resp
	}
	resp.ContentHTML = html
	return resp
}

// ListPublishedBlogPosts handles GET /api/blog. Only posts that are
// published and past their publish date are returned, newest first.
func (h *Handler) ListPublishedBlogPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.queries.ListPublishedBlogPosts(r.Context(), time.Now())
	if err != nil {
		WriteInternalError(w, "Failed to list blog posts")
		return
	}

	responses := make([]BlogPostResponse, 0, len(posts))
	for _, p := range posts {
		responses = append(responses, withRenderedContent(storeBlogPostToResponse(p)))
	}

	WriteSuccess(w, responses, &Meta{Total: int64(len(responses))})
}

// GetPublishedBlogPostBySlug handles GET /api/blog/{slug}. Drafts and
// scheduled posts are indistinguishable from missing posts.
func (h *Handler) GetPublishedBlogPostBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		WriteBadRequest(w, "Slug is required", nil)
		return
	}

	post, err := h.queries.GetPublishedBlogPostBySlug(r.Context(), slug, time.Now())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "Blog post not found")
		} else {
			WriteInternalError(w, "Failed to retrieve blog post")
		}
		return
	}

	WriteSuccess(w, withRenderedContent(storeBlogPostToResponse(post)), nil)
}

// ListBlogPosts handles GET /api/admin/blog and includes drafts.
func (h *Handler) ListBlogPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.queries.ListBlogPosts(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list blog posts")
		return
	}

	responses := make([]BlogPostResponse, 0, len(posts))
	for _, p := range posts {
		responses = append(responses, storeBlogPostToResponse(p))
	}

	WriteSuccess(w, responses, &Meta{Total: int64(len(responses))})
}

// GetBlogPost handles GET /api/admin/blog/{id}.
func (h *Handler) GetBlogPost(w http.ResponseWriter, r *http.Request) {
	post, ok := requireEntityByID(w, r, "blog post", func(id int64) (store.BlogPost, error) {
		return h.queries.GetBlogPostByID(r.Context(), id)
	})
	if !ok {
		return
	}
	WriteSuccess(w, storeBlogPostToResponse(post), nil)
}

// resolveBlogRequest validates the request and resolves the slug and
// publish date. Returns false with the response written on failure.
func resolveBlogRequest(w http.ResponseWriter, req *BlogPostRequest) (time.Time, bool) {
	validationErrors := make(map[string]string)
	if req.Title == "" {
		validationErrors["title"] = "Title is required"
	}
	if req.Content == "" {
		validationErrors["content"] = "Content is required"
	}
	if len(validationErrors) > 0 {
		WriteValidationError(w, validationErrors)
		return time.Time{}, false
	}

	if req.Slug == "" {
		req.Slug = util.Slugify(req.Title)
	}
	if !util.IsValidSlug(req.Slug) {
		WriteValidationError(w, map[string]string{"slug": "Slug must contain only lowercase letters, numbers, and hyphens"})
		return time.Time{}, false
	}

	publishDate := time.Now()
	if req.PublishDate != nil && *req.PublishDate != "" {
		t, err := time.Parse(time.RFC3339, *req.PublishDate)
		if err != nil {
			WriteValidationError(w, map[string]string{"publish_date": "Invalid date format. Use RFC3339 (e.g., 2026-01-01T00:00:00Z)"})
			return time.Time{}, false
		}
		publishDate = t
	}

	return publishDate, true
}

// CreateBlogPost handles POST /api/admin/blog.
func (h *Handler) CreateBlogPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req BlogPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}

	publishDate, ok := resolveBlogRequest(w, &req)
	if !ok {
		return
	}

	if !checkSlugUnique(w, func() (int64, error) {
		return h.queries.CountBlogPostsBySlug(ctx, req.Slug)
	}) {
		return
	}

	now := time.Now()
	post, err := h.queries.CreateBlogPost(ctx, store.CreateBlogPostParams{
		Title:            req.Title,
		Slug:             req.Slug,
		Content:          req.Content,
		Excerpt:          util.NullStringFromPtr(req.Excerpt),
		FeaturedImageURL: util.NullStringFromPtr(req.FeaturedImageURL),
		Published:        req.Published,
		PublishDate:      publishDate,
		AuthorID:         util.NullInt64FromPtr(middleware.GetUserIDPtr(r)),
		Tags:             encodeStringList(req.Tags),
		CreatedAt:        now,
		UpdatedAt:        now,
	})
	if err != nil {
		if store.IsUniqueViolation(err) {
			WriteValidationError(w, map[string]string{"slug": "Slug is already in use"})
			return
		}
		WriteInternalError(w, "Failed to create blog post")
		return
	}

	slog.Info("blog post created", "post_id", post.ID, "slug", post.Slug)
	WriteCreated(w, storeBlogPostToResponse(post))
}

// UpdateBlogPost handles PUT /api/admin/blog/{id}.
func (h *Handler) UpdateBlogPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	existing, ok := requireEntityByID(w, r, "blog post", func(id int64) (store.BlogPost, error) {
		return h.queries.GetBlogPostByID(ctx, id)
	})
	if !ok {
		return
	}

	var req BlogPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}

	publishDate, ok := resolveBlogRequest(w, &req)
	if !ok {
		return
	}
	if req.PublishDate == nil {
		publishDate = existing.PublishDate
	}

	if req.Slug != existing.Slug {
		if !checkSlugUnique(w, func() (int64, error) {
			return h.queries.CountBlogPostsBySlugExcluding(ctx, req.Slug, existing.ID)
		}) {
			return
		}
	}

	post, err := h.queries.UpdateBlogPost(ctx, store.UpdateBlogPostParams{
		Title:            req.Title,
		Slug:             req.Slug,
		Content:          req.Content,
		Excerpt:          util.NullStringFromPtr(req.Excerpt),
		FeaturedImageURL: util.NullStringFromPtr(req.FeaturedImageURL),
		Published:        req.Published,
		PublishDate:      publishDate,
		Tags:             encodeStringList(req.Tags),
		UpdatedAt:        time.Now(),
		ID:               existing.ID,
	})
	if err != nil {
		if store.IsUniqueViolation(err) {
			WriteValidationError(w, map[string]string{"slug": "Slug is already in use"})
			return
		}
		WriteInternalError(w, "Failed to update blog post")
		return
	}

	WriteSuccess(w, storeBlogPostToResponse(post), nil)
}

// DeleteBlogPost handles DELETE /api/admin/blog/{id}.
func (h *Handler) DeleteBlogPost(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid blog post ID", nil)
		return
	}

	if err := h.queries.DeleteBlogPost(r.Context(), id); err != nil {
		WriteInternalError(w, "Failed to delete blog post")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"strings"
	"testing"
	"time"
)

func TestListPublishedBlogPostsFiltersDraftsAndScheduled(t *testing.T) {
	db, h := testSetup(t)
	now := time.Now()
	createTestBlogPost(t, db, "Live", "live", true, now.Add(-time.Hour))
	createTestBlogPost(t, db, "Draft", "draft", false, now.Add(-time.Hour))
	createTestBlogPost(t, db, "Scheduled", "scheduled", true, now.Add(time.Hour))

	w := executeHandler(t, h.ListPublishedBlogPosts, newGetRequest(t, "/api/blog", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("ListPublishedBlogPosts() status = %d, want %d", w.Code, http.StatusOK)
	}

	posts, _ := unmarshalList[BlogPostResponse](t, w)
	if len(posts) != 1 {
		t.Fatalf("got %d posts, want 1", len(posts))
	}
	if posts[0].Slug != "live" {
		t.Errorf("Slug = %q, want %q", posts[0].Slug, "live")
	}
	if !strings.Contains(posts[0].ContentHTML, "<h2") {
		t.Errorf("ContentHTML = %q, want rendered heading", posts[0].ContentHTML)
	}
}

func TestGetPublishedBlogPostBySlug(t *testing.T) {
	db, h := testSetup(t)
	createTestBlogPost(t, db, "Live", "live", true, time.Now().Add(-time.Hour))

	req := newGetRequest(t, "/api/blog/live", map[string]string{"slug": "live"})
	w := executeHandler(t, h.GetPublishedBlogPostBySlug, req)

	if w.Code != http.StatusOK {
		t.Fatalf("GetPublishedBlogPostBySlug() status = %d, want %d", w.Code, http.StatusOK)
	}
	post := unmarshalData[BlogPostResponse](t, w)
	if post.Title != "Live" {
		t.Errorf("Title = %q, want %q", post.Title, "Live")
	}
	if post.Tags[0] != "go" {
		t.Errorf("Tags = %v, want [go]", post.Tags)
	}
}

func TestGetPublishedBlogPostBySlugHidesDrafts(t *testing.T) {
	db, h := testSetup(t)
	createTestBlogPost(t, db, "Draft", "draft", false, time.Now().Add(-time.Hour))
	createTestBlogPost(t, db, "Scheduled", "scheduled", true, time.Now().Add(time.Hour))

	for _, slug := range []string{"draft", "scheduled", "missing"} {
		t.Run(slug, func(t *testing.T) {
			req := newGetRequest(t, "/api/blog/"+slug, map[string]string{"slug": slug})
			w := executeHandler(t, h.GetPublishedBlogPostBySlug, req)

			if w.Code != http.StatusNotFound {
				t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
			}
		})
	}
}

func TestListBlogPostsIncludesDrafts(t *testing.T) {
	db, h := testSetup(t)
	createTestBlogPost(t, db, "Live", "live", true, time.Now().Add(-time.Hour))
	createTestBlogPost(t, db, "Draft", "draft", false, time.Now())

	w := executeHandler(t, h.ListBlogPosts, newGetRequest(t, "/api/admin/blog", nil))

	posts, _ := unmarshalList[BlogPostResponse](t, w)
	if len(posts) != 2 {
		t.Errorf("got %d posts, want 2 (drafts included)", len(posts))
	}
}

func TestCreateBlogPostGeneratesSlug(t *testing.T) {
	_, h := testSetup(t)

	body := `{"title":"My First Post!","content":"Hello **world**."}`
	req := newJSONRequest(t, http.MethodPost, "/api/admin/blog", body, nil)
	w := executeHandler(t, h.CreateBlogPost, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("CreateBlogPost() status = %d, want %d: %s", w.Code, http.StatusCreated, w.Body.String())
	}
	post := unmarshalData[BlogPostResponse](t, w)
	if post.Slug != "my-first-post" {
		t.Errorf("Slug = %q, want %q", post.Slug, "my-first-post")
	}
}

func TestCreateBlogPostDuplicateSlug(t *testing.T) {
	db, h := testSetup(t)
	createTestBlogPost(t, db, "Taken", "taken", true, time.Now())

	body := `{"title":"Another","slug":"taken","content":"x"}`
	req := newJSONRequest(t, http.MethodPost, "/api/admin/blog", body, nil)
	w := executeHandler(t, h.CreateBlogPost, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("CreateBlogPost() status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if detail := unmarshalError(t, w); detail.Details["slug"] == "" {
		t.Errorf("expected slug field error, got %+v", detail.Details)
	}
}

func TestCreateBlogPostInvalidPublishDate(t *testing.T) {
	_, h := testSetup(t)

	body := `{"title":"Post","content":"x","publish_date":"tomorrow"}`
	req := newJSONRequest(t, http.MethodPost, "/api/admin/blog", body, nil)
	w := executeHandler(t, h.CreateBlogPost, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("CreateBlogPost() status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestUpdateBlogPostKeepsSlugAndDate(t *testing.T) {
	db, h := testSetup(t)
	publishDate := time.Now().Add(-2 * time.Hour).UTC().Truncate(time.Second)
	createTestBlogPost(t, db, "Original", "original", true, publishDate)

	body := `{"title":"Renamed","slug":"original","content":"new body","published":true}`
	req := newJSONRequest(t, http.MethodPut, "/api/admin/blog/1", body, map[string]string{"id": "1"})
	w := executeHandler(t, h.UpdateBlogPost, req)

	if w.Code != http.StatusOK {
		t.Fatalf("UpdateBlogPost() status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
	}
	post := unmarshalData[BlogPostResponse](t, w)
	if post.Title != "Renamed" {
		t.Errorf("Title = %q, want %q", post.Title, "Renamed")
	}
	// Omitted publish_date keeps the stored one
	if !post.PublishDate.Equal(publishDate) {
		t.Errorf("PublishDate = %v, want %v", post.PublishDate, publishDate)
	}
}

func TestDeleteBlogPost(t *testing.T) {
	db, h := testSetup(t)
	createTestBlogPost(t, db, "Gone", "gone", true, time.Now())

	req := newDeleteRequest(t, "/api/admin/blog/1", map[string]string{"id": "1"})
	w := executeHandler(t, h.DeleteBlogPost, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("DeleteBlogPost() status = %d, want %d", w.Code, http.StatusNoContent)
	}
}

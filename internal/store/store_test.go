// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"testing"
	"time"
)

// testDB creates an in-memory database with the full schema applied.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	// A single connection keeps every query on the same in-memory database.
	db.SetMaxOpenConns(1)

	if err := Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

func TestSeedCreatesAdmin(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	if err := Seed(ctx, db, "initial-admin-pass"); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	queries := New(db)
	user, err := queries.GetUserByUsername(ctx, DefaultAdminUsername)
	if err != nil {
		t.Fatalf("GetUserByUsername() error = %v", err)
	}
	if user.Role != "admin" {
		t.Errorf("admin role = %q, want %q", user.Role, "admin")
	}
	if user.PasswordHash == "initial-admin-pass" {
		t.Error("password stored in plain text")
	}

	// Second seed is a no-op
	if err := Seed(ctx, db, "other-pass"); err != nil {
		t.Fatalf("second Seed() error = %v", err)
	}
	count, err := queries.CountUsersByUsername(ctx, DefaultAdminUsername)
	if err != nil {
		t.Fatalf("CountUsersByUsername() error = %v", err)
	}
	if count != 1 {
		t.Errorf("admin count after reseed = %d, want 1", count)
	}
}

func TestSeedGeneratesRandomPassword(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	if err := Seed(ctx, db, ""); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	user, err := New(db).GetUserByUsername(ctx, DefaultAdminUsername)
	if err != nil {
		t.Fatalf("GetUserByUsername() error = %v", err)
	}
	if user.PasswordHash == "" {
		t.Error("admin has empty password hash")
	}
}

func TestProjectsOrderedBySortOrder(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	queries := New(db)
	now := time.Now()

	for _, p := range []struct {
		title string
		order int64
	}{
		{"third", 30}, {"first", 10}, {"second", 20},
	} {
		if _, err := queries.CreateProject(ctx, CreateProjectParams{
			Title: p.title, Description: "d", Technologies: "Go",
			SortOrder: p.order, CreatedAt: now, UpdatedAt: now,
		}); err != nil {
			t.Fatalf("CreateProject(%q) error = %v", p.title, err)
		}
	}

	projects, err := queries.ListProjects(ctx)
	if err != nil {
		t.Fatalf("ListProjects() error = %v", err)
	}
	want := []string{"first", "second", "third"}
	if len(projects) != len(want) {
		t.Fatalf("got %d projects, want %d", len(projects), len(want))
	}
	for i, title := range want {
		if projects[i].Title != title {
			t.Errorf("projects[%d].Title = %q, want %q", i, projects[i].Title, title)
		}
	}
}

func TestDeleteProjectIdempotent(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	queries := New(db)

	if err := queries.DeleteProject(ctx, 9999); err != nil {
		t.Errorf("DeleteProject(missing) error = %v, want nil", err)
	}
}

func TestGetProjectByIDNotFound(t *testing.T) {
	db := testDB(t)

	_, err := New(db).GetProjectByID(context.Background(), 42)
	if err != sql.ErrNoRows {
		t.Errorf("GetProjectByID(missing) error = %v, want sql.ErrNoRows", err)
	}
}

func TestUpsertAboutInfoSingleton(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	queries := New(db)

	first, err := queries.UpsertAboutInfo(ctx, UpsertAboutInfoParams{
		Headline: "Engineer", Bio: "bio one", UpdatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("first UpsertAboutInfo() error = %v", err)
	}

	second, err := queries.UpsertAboutInfo(ctx, UpsertAboutInfoParams{
		Headline: "Senior Engineer", Bio: "bio two", UpdatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("second UpsertAboutInfo() error = %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("upsert created a second row: ids %d and %d", first.ID, second.ID)
	}

	got, err := queries.GetAboutInfo(ctx)
	if err != nil {
		t.Fatalf("GetAboutInfo() error = %v", err)
	}
	if got.Headline != "Senior Engineer" {
		t.Errorf("Headline = %q, want %q", got.Headline, "Senior Engineer")
	}
}

func TestBlogPublishedVisibility(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	queries := New(db)
	now := time.Now()

	posts := []CreateBlogPostParams{
		{Title: "live", Slug: "live", Content: "c", Published: true,
			PublishDate: now.Add(-time.Hour), Tags: "[]", CreatedAt: now, UpdatedAt: now},
		{Title: "draft", Slug: "draft", Content: "c", Published: false,
			PublishDate: now.Add(-time.Hour), Tags: "[]", CreatedAt: now, UpdatedAt: now},
		{Title: "scheduled", Slug: "scheduled", Content: "c", Published: true,
			PublishDate: now.Add(time.Hour), Tags: "[]", CreatedAt: now, UpdatedAt: now},
	}
	for _, p := range posts {
		if _, err := queries.CreateBlogPost(ctx, p); err != nil {
			t.Fatalf("CreateBlogPost(%q) error = %v", p.Slug, err)
		}
	}

	published, err := queries.ListPublishedBlogPosts(ctx, now)
	if err != nil {
		t.Fatalf("ListPublishedBlogPosts() error = %v", err)
	}
	if len(published) != 1 || published[0].Slug != "live" {
		t.Errorf("published = %v, want only 'live'", published)
	}

	all, err := queries.ListBlogPosts(ctx)
	if err != nil {
		t.Fatalf("ListBlogPosts() error = %v", err)
	}
	if len(all) != 3 {
		t.Errorf("ListBlogPosts() returned %d posts, want 3", len(all))
	}

	if _, err := queries.GetPublishedBlogPostBySlug(ctx, "draft", now); err != sql.ErrNoRows {
		t.Errorf("GetPublishedBlogPostBySlug(draft) error = %v, want sql.ErrNoRows", err)
	}
	if _, err := queries.GetPublishedBlogPostBySlug(ctx, "scheduled", now); err != sql.ErrNoRows {
		t.Errorf("GetPublishedBlogPostBySlug(scheduled) error = %v, want sql.ErrNoRows", err)
	}
	if _, err := queries.GetPublishedBlogPostBySlug(ctx, "live", now); err != nil {
		t.Errorf("GetPublishedBlogPostBySlug(live) error = %v", err)
	}
}

func TestBlogSlugUnique(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	queries := New(db)
	now := time.Now()

	if _, err := queries.CreateBlogPost(ctx, CreateBlogPostParams{
		Title: "a", Slug: "dup", Content: "c", PublishDate: now, Tags: "[]",
		CreatedAt: now, UpdatedAt: now,
	}); err != nil {
		t.Fatalf("CreateBlogPost() error = %v", err)
	}

	if _, err := queries.CreateBlogPost(ctx, CreateBlogPostParams{
		Title: "b", Slug: "dup", Content: "c", PublishDate: now, Tags: "[]",
		CreatedAt: now, UpdatedAt: now,
	}); err == nil {
		t.Error("duplicate slug insert succeeded, want constraint error")
	}

	count, err := queries.CountBlogPostsBySlug(ctx, "dup")
	if err != nil {
		t.Fatalf("CountBlogPostsBySlug() error = %v", err)
	}
	if count != 1 {
		t.Errorf("slug count = %d, want 1", count)
	}
}

func TestContactMessageLifecycle(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	queries := New(db)

	msg, err := queries.CreateContactMessage(ctx, CreateContactMessageParams{
		Name: "Visitor", Email: "v@example.com", Subject: "Hi", Message: "Hello",
		CreatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("CreateContactMessage() error = %v", err)
	}
	if msg.Read || msg.Archived {
		t.Error("new message should be unread and unarchived")
	}

	read, err := queries.MarkContactMessageRead(ctx, msg.ID)
	if err != nil {
		t.Fatalf("MarkContactMessageRead() error = %v", err)
	}
	if !read.Read {
		t.Error("message not marked read")
	}

	archived, err := queries.ArchiveContactMessage(ctx, msg.ID)
	if err != nil {
		t.Fatalf("ArchiveContactMessage() error = %v", err)
	}
	if !archived.Archived {
		t.Error("message not archived")
	}
	if !archived.Read {
		t.Error("archiving cleared the read flag")
	}

	if err := queries.DeleteContactMessage(ctx, msg.ID); err != nil {
		t.Fatalf("DeleteContactMessage() error = %v", err)
	}
	if _, err := queries.GetContactMessageByID(ctx, msg.ID); err != sql.ErrNoRows {
		t.Errorf("GetContactMessageByID(deleted) error = %v, want sql.ErrNoRows", err)
	}
}

func TestContactMessagesNewestFirst(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	queries := New(db)
	base := time.Now()

	for i, name := range []string{"old", "mid", "new"} {
		if _, err := queries.CreateContactMessage(ctx, CreateContactMessageParams{
			Name: name, Email: "v@example.com", Subject: "s", Message: "m",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}); err != nil {
			t.Fatalf("CreateContactMessage(%q) error = %v", name, err)
		}
	}

	messages, err := queries.ListContactMessages(ctx)
	if err != nil {
		t.Fatalf("ListContactMessages() error = %v", err)
	}
	want := []string{"new", "mid", "old"}
	for i, name := range want {
		if messages[i].Name != name {
			t.Errorf("messages[%d].Name = %q, want %q", i, messages[i].Name, name)
		}
	}
}

func TestSkillsByCategory(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	queries := New(db)
	now := time.Now()

	for _, s := range []struct {
		name, category string
	}{
		{"Go", "Programming Languages"},
		{"PostgreSQL", "Databases"},
		{"TypeScript", "Programming Languages"},
	} {
		if _, err := queries.CreateSkill(ctx, CreateSkillParams{
			Name: s.name, Category: s.category, Proficiency: 80, CreatedAt: now,
		}); err != nil {
			t.Fatalf("CreateSkill(%q) error = %v", s.name, err)
		}
	}

	langs, err := queries.ListSkillsByCategory(ctx, "Programming Languages")
	if err != nil {
		t.Fatalf("ListSkillsByCategory() error = %v", err)
	}
	if len(langs) != 2 {
		t.Errorf("got %d language skills, want 2", len(langs))
	}

	all, err := queries.ListSkills(ctx)
	if err != nil {
		t.Fatalf("ListSkills() error = %v", err)
	}
	if len(all) != 3 {
		t.Errorf("got %d skills, want 3", len(all))
	}
}

func TestUsernameUniqueConstraint(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	queries := New(db)
	now := time.Now()

	if _, err := queries.CreateUser(ctx, CreateUserParams{
		Username: "taken", PasswordHash: "h", Role: "user", CreatedAt: now,
	}); err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}

	if _, err := queries.CreateUser(ctx, CreateUserParams{
		Username: "taken", PasswordHash: "h2", Role: "user", CreatedAt: now,
	}); err == nil {
		t.Error("duplicate username insert succeeded, want constraint error")
	}
}

func TestCreateUserDuplicateUsernameIsUniqueViolation(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	queries := New(db)

	params := CreateUserParams{
		Username:     "alice",
		PasswordHash: "hash",
		Role:         "user",
		CreatedAt:    time.Now(),
	}
	if _, err := queries.CreateUser(ctx, params); err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}

	_, err := queries.CreateUser(ctx, params)
	if err == nil {
		t.Fatal("duplicate CreateUser() error = nil, want constraint failure")
	}
	if !IsUniqueViolation(err) {
		t.Errorf("IsUniqueViolation(%v) = false, want true", err)
	}

	count, err := queries.CountUsersByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("CountUsersByUsername() error = %v", err)
	}
	if count != 1 {
		t.Errorf("user count after duplicate insert = %d, want 1", count)
	}
}

func TestCreateBlogPostDuplicateSlugIsUniqueViolation(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	queries := New(db)

	now := time.Now()
	params := CreateBlogPostParams{
		Title:       "First",
		Slug:        "first",
		Content:     "body",
		PublishDate: now,
		Tags:        "[]",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := queries.CreateBlogPost(ctx, params); err != nil {
		t.Fatalf("CreateBlogPost() error = %v", err)
	}

	_, err := queries.CreateBlogPost(ctx, params)
	if !IsUniqueViolation(err) {
		t.Errorf("IsUniqueViolation(%v) = false, want true", err)
	}
}

func TestIsUniqueViolationIgnoresOtherErrors(t *testing.T) {
	if IsUniqueViolation(nil) {
		t.Error("IsUniqueViolation(nil) = true, want false")
	}
	if IsUniqueViolation(sql.ErrNoRows) {
		t.Error("IsUniqueViolation(sql.ErrNoRows) = true, want false")
	}
}

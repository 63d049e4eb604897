package store

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"

	"seoscribe/internal/models"
)

func cleanBlog(t *testing.T, db *sql.DB, slug string) {
	t.Helper()
	if _, err := db.Exec("DELETE FROM blogs WHERE slug = $1", slug); err != nil {
		t.Logf("cleanup blog %s: %v", slug, err)
	}
}

func TestBlogStoreCreateAndFind(t *testing.T) {
	db := testDB(t)
	s := NewBlogStore(db)

	slug := "test-create-blog-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanBlog(t, db, slug) })

	blog := &models.Blog{
		Title:    "How to Master Technical SEO",
		Slug:     slug,
		Content:  "# How to Master Technical SEO\n\nBody.",
		Keywords: []string{"technical seo", "crawl budget"},
		Language: "English",
		Status:   models.BlogStatusDraft,
	}

	created, err := s.Create(blog)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Error("expected non-nil UUID")
	}
	if created.PublishedAt != nil {
		t.Error("expected nil published_at for draft")
	}
	if len(created.Keywords) != 2 || created.Keywords[0] != "technical seo" {
		t.Errorf("keywords round-trip: got %v", created.Keywords)
	}

	found, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found == nil {
		t.Fatal("expected to find created blog")
	}
	if found.Title != blog.Title {
		t.Errorf("title: got %q, want %q", found.Title, blog.Title)
	}

	bySlug, err := s.FindBySlug(slug)
	if err != nil {
		t.Fatalf("FindBySlug: %v", err)
	}
	if bySlug == nil || bySlug.ID != created.ID {
		t.Error("FindBySlug did not return the created blog")
	}
}

func TestBlogStoreFindMissing(t *testing.T) {
	db := testDB(t)
	s := NewBlogStore(db)

	found, err := s.FindByID(uuid.New())
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found != nil {
		t.Error("expected nil for missing blog")
	}
}

func TestBlogStoreUpdatePublishes(t *testing.T) {
	db := testDB(t)
	s := NewBlogStore(db)

	slug := "test-publish-blog-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanBlog(t, db, slug) })

	created, err := s.Create(&models.Blog{
		Title: "Draft Post", Slug: slug, Content: "body", Status: models.BlogStatusDraft,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	created.Status = models.BlogStatusPublished
	updated, err := s.Update(created)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Status != models.BlogStatusPublished {
		t.Errorf("status: got %q", updated.Status)
	}
	if updated.PublishedAt == nil {
		t.Error("expected published_at to be set on publish")
	}
}

func TestBlogStoreDelete(t *testing.T) {
	db := testDB(t)
	s := NewBlogStore(db)

	slug := "test-delete-blog-" + uuid.NewString()[:8]
	created, err := s.Create(&models.Blog{Title: "Doomed", Slug: slug, Content: "x"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := s.Delete(created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	found, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID after delete: %v", err)
	}
	if found != nil {
		t.Error("expected blog to be gone")
	}

	if err := s.Delete(created.ID); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("second delete: got %v, want sql.ErrNoRows", err)
	}
}

func TestBlogStoreSlugExists(t *testing.T) {
	db := testDB(t)
	s := NewBlogStore(db)

	slug := "test-slug-exists-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanBlog(t, db, slug) })

	exists, err := s.SlugExists(slug)
	if err != nil {
		t.Fatalf("SlugExists: %v", err)
	}
	if exists {
		t.Error("slug should not exist yet")
	}

	if _, err := s.Create(&models.Blog{Title: "T", Slug: slug, Content: "c"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	exists, err = s.SlugExists(slug)
	if err != nil {
		t.Fatalf("SlugExists: %v", err)
	}
	if !exists {
		t.Error("slug should exist after create")
	}
}

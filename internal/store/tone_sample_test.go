package store

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"

	"seoscribe/internal/models"
)

func TestToneSampleStoreCreateListDelete(t *testing.T) {
	db := testDB(t)
	s := NewToneSampleStore(db)

	name := "test-tone-" + uuid.NewString()[:8]
	created, err := s.Create(&models.ToneSample{
		Name:      name,
		Content:   "We write plainly. Short sentences. No jargon.",
		SourceURL: "https://example.com/blog/style",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Error("expected non-nil UUID")
	}

	items, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	var found bool
	for _, ts := range items {
		if ts.ID == created.ID {
			found = true
			if ts.Name != name {
				t.Errorf("name: got %q, want %q", ts.Name, name)
			}
		}
	}
	if !found {
		t.Error("created sample missing from List")
	}

	if err := s.Delete(created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(created.ID); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("second delete: got %v, want sql.ErrNoRows", err)
	}
}

func TestCompetitorURLStoreRecordAndCascade(t *testing.T) {
	db := testDB(t)
	blogs := NewBlogStore(db)
	s := NewCompetitorURLStore(db)

	slug := "test-competitors-" + uuid.NewString()[:8]
	blog, err := blogs.Create(&models.Blog{Title: "T", Slug: slug, Content: "c"})
	if err != nil {
		t.Fatalf("create blog: %v", err)
	}

	urls := []string{"https://rival-a.example/post", "https://rival-b.example/post"}
	if err := s.Record(blog.ID, urls); err != nil {
		t.Fatalf("Record: %v", err)
	}

	got, err := s.ListByBlog(blog.ID)
	if err != nil {
		t.Fatalf("ListByBlog: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 urls, got %d", len(got))
	}
	if got[0].URL != urls[0] {
		t.Errorf("url order: got %q, want %q", got[0].URL, urls[0])
	}

	// Deleting the blog cascades to its competitor URLs.
	if err := blogs.Delete(blog.ID); err != nil {
		t.Fatalf("delete blog: %v", err)
	}
	got, err = s.ListByBlog(blog.ID)
	if err != nil {
		t.Fatalf("ListByBlog after cascade: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected cascade delete, got %d rows", len(got))
	}
}

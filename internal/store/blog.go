// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store contains the database access layer. Each store wraps a
// *sql.DB and handles one table; queries use the pgx stdlib driver.
package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"seoscribe/internal/models"
)

// BlogStore handles all blog-related database operations.
type BlogStore struct {
	db *sql.DB
}

// NewBlogStore creates a new BlogStore with the given database connection.
func NewBlogStore(db *sql.DB) *BlogStore {
	return &BlogStore{db: db}
}

// keywordSep joins the keyword list into a single column. Keywords come from
// a validated request and never contain newlines.
const keywordSep = "\n"

func joinKeywords(kws []string) string {
	return strings.Join(kws, keywordSep)
}

func splitKeywords(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, keywordSep)
}

// List returns all blogs ordered by creation date descending.
func (s *BlogStore) List() ([]models.Blog, error) {
	rows, err := s.db.Query(`
		SELECT id, title, slug, content, keywords, language, status,
		       published_at, created_at, updated_at
		FROM blogs
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	defer rows.Close()

	var items []models.Blog
	for rows.Next() {
		var b models.Blog
		var kw string
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Slug, &b.Content, &kw, &b.Language,
			&b.Status, &b.PublishedAt, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan blog: %w", err)
		}
		b.Keywords = splitKeywords(kw)
		items = append(items, b)
	}
	return items, rows.Err()
}

// FindByID retrieves a blog by its UUID. Returns nil if not found.
func (s *BlogStore) FindByID(id uuid.UUID) (*models.Blog, error) {
	b := &models.Blog{}
	var kw string
	err := s.db.QueryRow(`
		SELECT id, title, slug, content, keywords, language, status,
		       published_at, created_at, updated_at
		FROM blogs WHERE id = $1
	`, id).Scan(
		&b.ID, &b.Title, &b.Slug, &b.Content, &kw, &b.Language,
		&b.Status, &b.PublishedAt, &b.CreatedAt, &b.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find blog by id: %w", err)
	}
	b.Keywords = splitKeywords(kw)
	return b, nil
}

// FindBySlug retrieves a blog by its slug. Returns nil if not found.
func (s *BlogStore) FindBySlug(slug string) (*models.Blog, error) {
	b := &models.Blog{}
	var kw string
	err := s.db.QueryRow(`
		SELECT id, title, slug, content, keywords, language, status,
		       published_at, created_at, updated_at
		FROM blogs WHERE slug = $1
	`, slug).Scan(
		&b.ID, &b.Title, &b.Slug, &b.Content, &kw, &b.Language,
		&b.Status, &b.PublishedAt, &b.CreatedAt, &b.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find blog by slug: %w", err)
	}
	b.Keywords = splitKeywords(kw)
	return b, nil
}

// Create inserts a new blog and returns it with the generated ID.
func (s *BlogStore) Create(b *models.Blog) (*models.Blog, error) {
	if b.Status == models.BlogStatusPublished && b.PublishedAt == nil {
		now := time.Now()
		b.PublishedAt = &now
	}
	if b.Status == "" {
		b.Status = models.BlogStatusDraft
	}
	if b.Language == "" {
		b.Language = "English"
	}

	result := &models.Blog{}
	var kw string
	err := s.db.QueryRow(`
		INSERT INTO blogs (title, slug, content, keywords, language, status, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, title, slug, content, keywords, language, status,
		          published_at, created_at, updated_at
	`, b.Title, b.Slug, b.Content, joinKeywords(b.Keywords), b.Language, b.Status, b.PublishedAt,
	).Scan(
		&result.ID, &result.Title, &result.Slug, &result.Content, &kw,
		&result.Language, &result.Status, &result.PublishedAt,
		&result.CreatedAt, &result.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create blog: %w", err)
	}
	result.Keywords = splitKeywords(kw)
	return result, nil
}

// Update modifies an existing blog and returns the updated row.
// Returns nil if the blog does not exist.
func (s *BlogStore) Update(b *models.Blog) (*models.Blog, error) {
	if b.Status == models.BlogStatusPublished && b.PublishedAt == nil {
		now := time.Now()
		b.PublishedAt = &now
	}

	result := &models.Blog{}
	var kw string
	err := s.db.QueryRow(`
		UPDATE blogs
		SET title = $2, slug = $3, content = $4, keywords = $5,
		    language = $6, status = $7, published_at = $8, updated_at = now()
		WHERE id = $1
		RETURNING id, title, slug, content, keywords, language, status,
		          published_at, created_at, updated_at
	`, b.ID, b.Title, b.Slug, b.Content, joinKeywords(b.Keywords),
		b.Language, b.Status, b.PublishedAt,
	).Scan(
		&result.ID, &result.Title, &result.Slug, &result.Content, &kw,
		&result.Language, &result.Status, &result.PublishedAt,
		&result.CreatedAt, &result.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update blog: %w", err)
	}
	result.Keywords = splitKeywords(kw)
	return result, nil
}

// Delete removes a blog by ID. Competitor URL rows cascade.
func (s *BlogStore) Delete(id uuid.UUID) error {
	res, err := s.db.Exec("DELETE FROM blogs WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete blog: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete blog rows affected: %w", err)
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// SlugExists reports whether any blog already uses the given slug.
func (s *BlogStore) SlugExists(slug string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(
		"SELECT EXISTS (SELECT 1 FROM blogs WHERE slug = $1)", slug,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check blog slug: %w", err)
	}
	return exists, nil
}

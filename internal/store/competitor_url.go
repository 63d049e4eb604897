// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"seoscribe/internal/models"
)

// CompetitorURLStore records which competitor pages informed a generated blog.
type CompetitorURLStore struct {
	db *sql.DB
}

// NewCompetitorURLStore creates a new CompetitorURLStore.
func NewCompetitorURLStore(db *sql.DB) *CompetitorURLStore {
	return &CompetitorURLStore{db: db}
}

// ListByBlog returns all competitor URLs recorded for a blog.
func (s *CompetitorURLStore) ListByBlog(blogID uuid.UUID) ([]models.CompetitorURL, error) {
	rows, err := s.db.Query(`
		SELECT id, blog_id, url, created_at
		FROM competitor_urls
		WHERE blog_id = $1
		ORDER BY created_at ASC
	`, blogID)
	if err != nil {
		return nil, fmt.Errorf("list competitor urls: %w", err)
	}
	defer rows.Close()

	var items []models.CompetitorURL
	for rows.Next() {
		var cu models.CompetitorURL
		if err := rows.Scan(&cu.ID, &cu.BlogID, &cu.URL, &cu.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan competitor url: %w", err)
		}
		items = append(items, cu)
	}
	return items, rows.Err()
}

// Record stores the competitor URLs used for a blog in one statement batch.
func (s *CompetitorURLStore) Record(blogID uuid.UUID, urls []string) error {
	for _, u := range urls {
		if _, err := s.db.Exec(
			"INSERT INTO competitor_urls (blog_id, url) VALUES ($1, $2)", blogID, u,
		); err != nil {
			return fmt.Errorf("record competitor url: %w", err)
		}
	}
	return nil
}

// DeleteByBlog removes all competitor URLs for a blog. Normally handled by
// the foreign key cascade; kept for explicit cleanup paths.
func (s *CompetitorURLStore) DeleteByBlog(blogID uuid.UUID) error {
	if _, err := s.db.Exec("DELETE FROM competitor_urls WHERE blog_id = $1", blogID); err != nil {
		return fmt.Errorf("delete competitor urls: %w", err)
	}
	return nil
}

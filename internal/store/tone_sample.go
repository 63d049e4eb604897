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

// ToneSampleStore handles tone sample persistence.
type ToneSampleStore struct {
	db *sql.DB
}

// NewToneSampleStore creates a new ToneSampleStore.
func NewToneSampleStore(db *sql.DB) *ToneSampleStore {
	return &ToneSampleStore{db: db}
}

// List returns all tone samples ordered by creation date descending.
func (s *ToneSampleStore) List() ([]models.ToneSample, error) {
	rows, err := s.db.Query(`
		SELECT id, name, content, source_url, created_at
		FROM tone_samples
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list tone samples: %w", err)
	}
	defer rows.Close()

	var items []models.ToneSample
	for rows.Next() {
		var ts models.ToneSample
		if err := rows.Scan(&ts.ID, &ts.Name, &ts.Content, &ts.SourceURL, &ts.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan tone sample: %w", err)
		}
		items = append(items, ts)
	}
	return items, rows.Err()
}

// Create inserts a new tone sample and returns it with the generated ID.
func (s *ToneSampleStore) Create(ts *models.ToneSample) (*models.ToneSample, error) {
	result := &models.ToneSample{}
	err := s.db.QueryRow(`
		INSERT INTO tone_samples (name, content, source_url)
		VALUES ($1, $2, $3)
		RETURNING id, name, content, source_url, created_at
	`, ts.Name, ts.Content, ts.SourceURL,
	).Scan(&result.ID, &result.Name, &result.Content, &result.SourceURL, &result.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create tone sample: %w", err)
	}
	return result, nil
}

// Delete removes a tone sample by ID.
func (s *ToneSampleStore) Delete(id uuid.UUID) error {
	res, err := s.db.Exec("DELETE FROM tone_samples WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete tone sample: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete tone sample rows affected: %w", err)
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"seoscribe/internal/models"
)

// BrandProfileStore handles brand profile persistence. The installation
// keeps a single profile row, created by Seed and updated in place.
type BrandProfileStore struct {
	db *sql.DB
}

// NewBrandProfileStore creates a new BrandProfileStore.
func NewBrandProfileStore(db *sql.DB) *BrandProfileStore {
	return &BrandProfileStore{db: db}
}

// Get returns the brand profile. Returns nil if none exists yet.
func (s *BrandProfileStore) Get() (*models.BrandProfile, error) {
	p := &models.BrandProfile{}
	err := s.db.QueryRow(`
		SELECT id, brand_name, business_description, target_audience,
		       benefits, industry, tone_of_voice, website_url,
		       created_at, updated_at
		FROM brand_profiles
		ORDER BY created_at ASC
		LIMIT 1
	`).Scan(
		&p.ID, &p.BrandName, &p.BusinessDescription, &p.TargetAudience,
		&p.Benefits, &p.Industry, &p.ToneOfVoice, &p.WebsiteURL,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get brand profile: %w", err)
	}
	return p, nil
}

// Save upserts the brand profile, creating the row if Seed never ran.
func (s *BrandProfileStore) Save(p *models.BrandProfile) (*models.BrandProfile, error) {
	existing, err := s.Get()
	if err != nil {
		return nil, err
	}

	result := &models.BrandProfile{}
	if existing == nil {
		err = s.db.QueryRow(`
			INSERT INTO brand_profiles (brand_name, business_description, target_audience,
			                            benefits, industry, tone_of_voice, website_url)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, brand_name, business_description, target_audience,
			          benefits, industry, tone_of_voice, website_url,
			          created_at, updated_at
		`, p.BrandName, p.BusinessDescription, p.TargetAudience,
			p.Benefits, p.Industry, p.ToneOfVoice, p.WebsiteURL,
		).Scan(
			&result.ID, &result.BrandName, &result.BusinessDescription,
			&result.TargetAudience, &result.Benefits, &result.Industry,
			&result.ToneOfVoice, &result.WebsiteURL,
			&result.CreatedAt, &result.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("insert brand profile: %w", err)
		}
		return result, nil
	}

	err = s.db.QueryRow(`
		UPDATE brand_profiles
		SET brand_name = $2, business_description = $3, target_audience = $4,
		    benefits = $5, industry = $6, tone_of_voice = $7, website_url = $8,
		    updated_at = now()
		WHERE id = $1
		RETURNING id, brand_name, business_description, target_audience,
		          benefits, industry, tone_of_voice, website_url,
		          created_at, updated_at
	`, existing.ID, p.BrandName, p.BusinessDescription, p.TargetAudience,
		p.Benefits, p.Industry, p.ToneOfVoice, p.WebsiteURL,
	).Scan(
		&result.ID, &result.BrandName, &result.BusinessDescription,
		&result.TargetAudience, &result.Benefits, &result.Industry,
		&result.ToneOfVoice, &result.WebsiteURL,
		&result.CreatedAt, &result.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("update brand profile: %w", err)
	}
	return result, nil
}

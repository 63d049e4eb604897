package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Seed populates the database with initial development data.
// It creates an empty brand profile row if none exists so that profile
// reads always find a record; the analyzer fills it in later.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM brand_profiles").Scan(&count); err != nil {
		return fmt.Errorf("seed check brand profiles: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	_, err := db.Exec(`
		INSERT INTO brand_profiles (brand_name, business_description, target_audience, benefits, industry, tone_of_voice)
		VALUES ('', '', '', '', '', '')
	`)
	if err != nil {
		return fmt.Errorf("seed insert brand profile: %w", err)
	}

	slog.Info("database seeded with empty brand profile")
	return nil
}

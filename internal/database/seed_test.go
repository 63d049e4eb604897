package database

import (
	"testing"
)

func TestSeedIdempotent(t *testing.T) {
	db, err := Connect(testDSN())
	if err != nil {
		t.Skipf("skipping: DB not available: %v", err)
	}
	defer db.Close()

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	// Seed creates data only when the table is empty. Call it twice to
	// verify idempotency; the database is not cleared first because other
	// test packages may run concurrently against the same instance.
	if err := Seed(db); err != nil {
		t.Fatalf("first Seed: %v", err)
	}
	if err := Seed(db); err != nil {
		t.Fatalf("second Seed: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM brand_profiles").Scan(&count); err != nil {
		t.Fatalf("count brand profiles: %v", err)
	}
	if count < 1 {
		t.Errorf("expected at least 1 brand profile row, got %d", count)
	}
}

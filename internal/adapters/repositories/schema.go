package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the database schema. The statements are valid for both
// SQLite and Postgres.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createPlacesQuery := `
	CREATE TABLE IF NOT EXISTS places (
		place TEXT PRIMARY KEY,
		state TEXT NOT NULL DEFAULT '',
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		expected_time_to_visit TEXT NOT NULL DEFAULT '',
		entry_fees TEXT NOT NULL DEFAULT '',
		seq BIGINT NOT NULL
	);
	`

	createPlaceCategoriesQuery := `
	CREATE TABLE IF NOT EXISTS place_categories (
		place TEXT NOT NULL REFERENCES places(place) ON DELETE CASCADE,
		category TEXT NOT NULL,
		PRIMARY KEY (place, category)
	);
	`

	createPlansQuery := `
	CREATE TABLE IF NOT EXISTS plans (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		status TEXT NOT NULL,
		start_address TEXT NOT NULL DEFAULT '',
		days BIGINT NOT NULL,
		passengers BIGINT NOT NULL,
		total_cost DOUBLE PRECISION NOT NULL,
		total_time DOUBLE PRECISION NOT NULL,
		total_budget DOUBLE PRECISION NOT NULL,
		total_hours DOUBLE PRECISION NOT NULL,
		feasible_places TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
	`

	createItinerariesQuery := `
	CREATE TABLE IF NOT EXISTS itineraries (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		original_plan_id TEXT NOT NULL REFERENCES plans(id),
		itinerary TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
	`

	createGeocodeCacheQuery := `
	CREATE TABLE IF NOT EXISTS geocode_cache (
		address TEXT PRIMARY KEY,
		lon DOUBLE PRECISION NOT NULL,
		lat DOUBLE PRECISION NOT NULL
	);
	`

	createIndexQueries := []string{
		`CREATE INDEX IF NOT EXISTS idx_place_categories_category ON place_categories(category, place);`,
		`CREATE INDEX IF NOT EXISTS idx_plans_user_id ON plans(user_id);`,
		`CREATE INDEX IF NOT EXISTS idx_itineraries_original_plan_id ON itineraries(original_plan_id);`,
	}

	statements := []string{
		createPlacesQuery,
		createPlaceCategoriesQuery,
		createPlansQuery,
		createItinerariesQuery,
		createGeocodeCacheQuery,
	}
	statements = append(statements, createIndexQueries...)

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"trip-planner-service/internal/platform/db"
)

// PlaceSeed is one catalog entry as it appears in a seed file.
type PlaceSeed struct {
	Place               string   `json:"place" yaml:"place"`
	State               string   `json:"state" yaml:"state"`
	Latitude            float64  `json:"latitude" yaml:"latitude"`
	Longitude           float64  `json:"longitude" yaml:"longitude"`
	ExpectedTimeToVisit string   `json:"expected_time_to_visit" yaml:"expected_time_to_visit"`
	EntryFees           string   `json:"entry_fees" yaml:"entry_fees"`
	Description         []string `json:"description" yaml:"description"`
}

// Read place seeds from a JSON or YAML file, chosen by extension.
func LoadPlaceSeeds(path string) ([]PlaceSeed, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load seeds: read %q: %w", path, err)
	}

	var data []PlaceSeed
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(bytes, &data); err != nil {
			return nil, fmt.Errorf("load seeds: parse yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(bytes, &data); err != nil {
			return nil, fmt.Errorf("load seeds: parse json: %w", err)
		}
	}

	for i := range data {
		data[i].Place = strings.TrimSpace(data[i].Place)
		if data[i].Place == "" {
			return nil, fmt.Errorf("load seeds: item at index %d: place cannot be empty", i+1)
		}
		if data[i].Latitude < -90 || data[i].Latitude > 90 || data[i].Longitude < -180 || data[i].Longitude > 180 {
			return nil, fmt.Errorf("load seeds: item %q: coordinates out of range", data[i].Place)
		}
	}

	return data, nil
}

// Populate the place catalog from a seed file. Existing places with the same
// name are replaced, including their categories; file order becomes catalog order.
func SeedPlaces(conn *sql.DB, driver, path string) (int, error) {
	if conn == nil {
		return 0, errors.New("seed places: DB is nil")
	}

	rows, err := LoadPlaceSeeds(path)
	if err != nil {
		return 0, fmt.Errorf("seed places: %w", err)
	}

	tx, err := conn.Begin()
	if err != nil {
		return 0, fmt.Errorf("seed places: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	upsertPlace, err := tx.Prepare(db.Rebind(driver, `
	INSERT INTO places (
		place,
		state,
		latitude,
		longitude,
		expected_time_to_visit,
		entry_fees,
		seq
	)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (place) DO UPDATE
	SET state = EXCLUDED.state,
		latitude = EXCLUDED.latitude,
		longitude = EXCLUDED.longitude,
		expected_time_to_visit = EXCLUDED.expected_time_to_visit,
		entry_fees = EXCLUDED.entry_fees,
		seq = EXCLUDED.seq;
	`))
	if err != nil {
		return 0, fmt.Errorf("seed places: prepare place upsert: %w", err)
	}
	defer upsertPlace.Close()

	clearCategories, err := tx.Prepare(db.Rebind(driver, `DELETE FROM place_categories WHERE place = ?;`))
	if err != nil {
		return 0, fmt.Errorf("seed places: prepare category delete: %w", err)
	}
	defer clearCategories.Close()

	insertCategory, err := tx.Prepare(db.Rebind(driver, `
	INSERT INTO place_categories (place, category)
	VALUES (?, ?)
	ON CONFLICT (place, category) DO NOTHING;
	`))
	if err != nil {
		return 0, fmt.Errorf("seed places: prepare category insert: %w", err)
	}
	defer insertCategory.Close()

	for i, p := range rows {
		if _, err := upsertPlace.Exec(
			p.Place, p.State, p.Latitude, p.Longitude,
			p.ExpectedTimeToVisit, p.EntryFees, i+1,
		); err != nil {
			return 0, fmt.Errorf("seed places: upsert place=%q: %w", p.Place, err)
		}

		if _, err := clearCategories.Exec(p.Place); err != nil {
			return 0, fmt.Errorf("seed places: clear categories place=%q: %w", p.Place, err)
		}

		for _, cat := range p.Description {
			cat = strings.TrimSpace(cat)
			if cat == "" {
				continue
			}
			if _, err := insertCategory.Exec(p.Place, cat); err != nil {
				return 0, fmt.Errorf("seed places: insert category place=%q category=%q: %w", p.Place, cat, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("seed places: commit tx: %w", err)
	}

	return len(rows), nil
}

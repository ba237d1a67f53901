package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/platform/db"
	"trip-planner-service/internal/platform/obs"
)

// SQL-backed implementation of the PlaceCatalog port.
type SQLPlaceCatalog struct {
	DB     *sql.DB
	Driver string
}

func NewSQLPlaceCatalog(conn *sql.DB, driver string) *SQLPlaceCatalog {
	return &SQLPlaceCatalog{DB: conn, Driver: driver}
}

// Return places tagged with any of the categories, in seed order.
// Each returned place carries all of its categories.
func (s *SQLPlaceCatalog) ListPlaces(ctx context.Context, categories []string) (_ []domain.Place, err error) {
	defer obs.Time(ctx, "catalog.ListPlaces")(&err)

	if s.DB == nil {
		return nil, errors.New("sql place catalog: DB is nil")
	}

	wanted := make([]any, 0, len(categories))
	seen := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		wanted = append(wanted, c)
	}
	if len(wanted) == 0 {
		return []domain.Place{}, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(wanted)), ", ")
	query := db.Rebind(s.Driver, `
	SELECT
		p.place,
		p.state,
		p.latitude,
		p.longitude,
		p.expected_time_to_visit,
		p.entry_fees,
		c.category
	FROM places p
	JOIN place_categories c ON c.place = p.place
	WHERE p.place IN (
		SELECT place FROM place_categories WHERE category IN (`+placeholders+`)
	)
	ORDER BY p.seq, p.place, c.category;
	`)

	rows, err := s.DB.QueryContext(ctx, query, wanted...)
	if err != nil {
		return nil, fmt.Errorf("list places: query places table: %w", err)
	}
	defer rows.Close()

	places := make([]domain.Place, 0, 64)
	for rows.Next() {
		var p domain.Place
		var category string
		if err := rows.Scan(
			&p.Name, &p.State, &p.Latitude, &p.Longitude,
			&p.DurationText, &p.EntryFeeText, &category,
		); err != nil {
			return nil, fmt.Errorf("list places: scan row: %w", err)
		}

		// Rows are grouped by place; consecutive rows add categories.
		if n := len(places); n > 0 && places[n-1].Name == p.Name {
			places[n-1].Categories = append(places[n-1].Categories, category)
			continue
		}
		p.Categories = []string{category}
		places = append(places, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list places: row iteration: %w", err)
	}

	return places, nil
}

package ports

import (
	"context"

	"trip-planner-service/internal/domain"
)

// Port: a boundary for reading candidate places from the catalog.
type PlaceCatalog interface {
	// Return places tagged with any of the categories, in catalog order.
	// An empty category list returns no places.
	ListPlaces(ctx context.Context, categories []string) ([]domain.Place, error)
}

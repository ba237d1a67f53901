package ports

import (
	"context"

	"trip-planner-service/internal/domain"
)

// Contract for turning a free-text address into coordinates.
// Callers treat any error as "address unknown"; it never fails a plan.
type CoordinateResolver interface {
	ResolveCoordinates(ctx context.Context, address string) (domain.Coordinates, error)
}

// Persistent address -> coordinates cache used in front of a resolver.
// Get reports ok=false on a miss.
type GeocodeCache interface {
	Get(ctx context.Context, address string) (c domain.Coordinates, ok bool, err error)
	Put(ctx context.Context, address string, c domain.Coordinates) error
}

package ports

import (
	"context"
	"errors"

	"trip-planner-service/internal/domain"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
)

// Port: persistence for trip plans and confirmed itineraries.
type PlanStore interface {
	// Store a new plan. The plan ID must be set by the caller.
	SavePlan(ctx context.Context, plan *domain.TripPlan) error
	// Load a plan by ID; returns ErrNotFound when it does not exist.
	GetPlan(ctx context.Context, id string) (*domain.TripPlan, error)
	// Store an itinerary and mark its original plan confirmed atomically.
	ConfirmItinerary(ctx context.Context, it *domain.Itinerary) error
}

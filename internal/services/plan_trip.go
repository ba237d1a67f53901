package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/platform/obs"
	"trip-planner-service/internal/ports"
)

type PlanTripRequest struct {
	UserID       string
	Categories   []string
	StartAddress string
	Constraints  domain.TripConstraints
	Route        RouteOptions
}

// PlanTripResult carries everything a caller needs to render the planning
// step. Plan is nil when no catalog place matched; nothing is persisted then.
type PlanTripResult struct {
	StartCoordinates *domain.Coordinates
	Route            []domain.Place
	Plan             *domain.TripPlan
}

// TripPlanner wires the planning core to its collaborators.
// Resolver may be nil, in which case trips never get a synthetic start place.
type TripPlanner struct {
	Catalog  ports.PlaceCatalog
	Resolver ports.CoordinateResolver
	Store    ports.PlanStore
	Now      func() time.Time
}

// PlanTrip resolves the start address, loads candidate places, orders them,
// trims the order to the feasible prefix and stores it as a draft plan.
func (p *TripPlanner) PlanTrip(ctx context.Context, req PlanTripRequest) (_ *PlanTripResult, err error) {
	defer obs.Time(ctx, "services.PlanTrip")(&err)

	if strings.TrimSpace(req.UserID) == "" {
		return nil, errors.New("plan trip: user id must be non-empty")
	}

	startAddress := strings.TrimSpace(req.StartAddress)

	var (
		start      *domain.Coordinates
		candidates []domain.Place
	)

	// Address resolution and catalog lookup are independent; run them together.
	g, gctx := errgroup.WithContext(ctx)
	if startAddress != "" && p.Resolver != nil {
		g.Go(func() error {
			c, err := p.Resolver.ResolveCoordinates(gctx, startAddress)
			if err != nil {
				log.Printf("req_id=%s resolve start address %q failed: %v", obs.RequestID(ctx), startAddress, err)
				return nil
			}
			start = &c
			return nil
		})
	}
	if len(req.Categories) > 0 {
		g.Go(func() error {
			places, err := p.Catalog.ListPlaces(gctx, req.Categories)
			if err != nil {
				return fmt.Errorf("plan trip: list places: %w", err)
			}
			candidates = places
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &PlanTripResult{StartCoordinates: start, Route: []domain.Place{}}
	if len(candidates) == 0 {
		return res, nil
	}

	places := make([]domain.Place, 0, len(candidates)+1)
	if start != nil {
		places = append(places, domain.NewStartPlace(startAddress, *start))
	}
	places = append(places, candidates...)

	route, err := BuildRoute(places, 0, req.Route)
	if err != nil {
		return nil, fmt.Errorf("plan trip: %w", err)
	}
	res.Route = route.Places(places)

	feasible := FilterFeasible(places, route, req.Constraints)
	log.Printf(
		"req_id=%s candidates=%d feasible=%d total_cost=%.0f total_time=%.2f",
		obs.RequestID(ctx), len(places), len(feasible.Stops), feasible.TotalCost, feasible.TotalTime,
	)

	now := time.Now
	if p.Now != nil {
		now = p.Now
	}

	plan := &domain.TripPlan{
		ID:           uuid.NewString(),
		UserID:       req.UserID,
		Status:       domain.PlanStatusDraft,
		StartAddress: startAddress,
		Days:         req.Constraints.Days,
		Passengers:   req.Constraints.Passengers,
		Feasible:     feasible,
		CreatedAt:    now().UTC(),
	}

	if err := p.Store.SavePlan(ctx, plan); err != nil {
		return nil, fmt.Errorf("plan trip: save plan: %w", err)
	}
	res.Plan = plan

	return res, nil
}

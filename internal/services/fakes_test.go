package services

import (
	"context"
	"errors"
	"sync"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

type fakeCatalog struct {
	places []domain.Place
	err    error
	calls  int
}

func (c *fakeCatalog) ListPlaces(ctx context.Context, categories []string) ([]domain.Place, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	want := make(map[string]struct{}, len(categories))
	for _, cat := range categories {
		want[cat] = struct{}{}
	}
	out := []domain.Place{}
	for _, p := range c.places {
		for _, cat := range p.Categories {
			if _, ok := want[cat]; ok {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

type fakeResolver struct {
	coords map[string]domain.Coordinates
}

func (r *fakeResolver) ResolveCoordinates(ctx context.Context, address string) (domain.Coordinates, error) {
	c, ok := r.coords[address]
	if !ok {
		return domain.Coordinates{}, errors.New("unknown address")
	}
	return c, nil
}

type memStore struct {
	mu          sync.Mutex
	plans       map[string]*domain.TripPlan
	itineraries map[string]*domain.Itinerary
}

func newMemStore() *memStore {
	return &memStore{
		plans:       map[string]*domain.TripPlan{},
		itineraries: map[string]*domain.Itinerary{},
	}
}

func (s *memStore) SavePlan(ctx context.Context, plan *domain.TripPlan) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *plan
	s.plans[plan.ID] = &cp
	return nil
}

func (s *memStore) GetPlan(ctx context.Context, id string) (*domain.TripPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.plans[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *memStore) ConfirmItinerary(ctx context.Context, it *domain.Itinerary) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.plans[it.OriginalPlanID]
	if !ok {
		return ports.ErrNotFound
	}
	p.Status = domain.PlanStatusConfirmed
	s.itineraries[it.ID] = it
	return nil
}

// linePlaces returns places spaced one degree apart along the equator.
func linePlaces(n int) []domain.Place {
	out := make([]domain.Place, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, domain.Place{
			Name:      string(rune('A' + i)),
			Latitude:  0,
			Longitude: float64(i),
		})
	}
	return out
}

package services

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"trip-planner-service/internal/domain"
)

func jaipurCatalog() *fakeCatalog {
	return &fakeCatalog{places: []domain.Place{
		{Name: "Amber Fort", Latitude: 26.9855, Longitude: 75.8513, DurationText: "3 hours", EntryFeeText: "Rs. 100", Categories: []string{"fort"}},
		{Name: "Hawa Mahal", Latitude: 26.9239, Longitude: 75.8267, DurationText: "1 hour", EntryFeeText: "Rs. 50", Categories: []string{"palace"}},
		{Name: "Nahargarh Fort", Latitude: 26.9373, Longitude: 75.8155, DurationText: "2 hours", EntryFeeText: "Rs. 50", Categories: []string{"fort"}},
		{Name: "Jal Mahal", Latitude: 26.9535, Longitude: 75.8462, DurationText: "30 minutes", EntryFeeText: "Free", Categories: []string{"lake"}},
	}}
}

func fixedNow() time.Time { return time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC) }

func TestPlanTripWithResolvedStart(t *testing.T) {
	store := newMemStore()
	planner := &TripPlanner{
		Catalog:  jaipurCatalog(),
		Resolver: &fakeResolver{coords: map[string]domain.Coordinates{"Jaipur Junction": {Lat: 26.9196, Lon: 75.7878}}},
		Store:    store,
		Now:      fixedNow,
	}

	res, err := planner.PlanTrip(context.Background(), PlanTripRequest{
		UserID:       "u1",
		Categories:   []string{"fort", "palace"},
		StartAddress: "Jaipur Junction",
		Constraints:  domain.TripConstraints{Budget: 5000, Days: 1, Passengers: 2},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.StartCoordinates == nil || res.StartCoordinates.Lat != 26.9196 {
		t.Fatalf("start coordinates = %v", res.StartCoordinates)
	}
	if len(res.Route) != 4 {
		t.Fatalf("route has %d places, want start + 3 matches", len(res.Route))
	}
	if res.Route[0].Name != "Jaipur Junction" || res.Route[0].EntryFeeText != "0" {
		t.Fatalf("route should start at the synthetic start place, got %+v", res.Route[0])
	}

	if res.Plan == nil {
		t.Fatal("expected a stored plan")
	}
	if res.Plan.Status != domain.PlanStatusDraft || res.Plan.UserID != "u1" {
		t.Fatalf("unexpected plan header: %+v", res.Plan)
	}
	if !res.Plan.CreatedAt.Equal(fixedNow()) {
		t.Fatalf("created at = %v", res.Plan.CreatedAt)
	}
	if res.Plan.Feasible.TotalCost > 5000 {
		t.Fatalf("total cost %v over budget", res.Plan.Feasible.TotalCost)
	}

	stored, err := store.GetPlan(context.Background(), res.Plan.ID)
	if err != nil {
		t.Fatalf("plan not stored: %v", err)
	}
	if !reflect.DeepEqual(stored.Feasible, res.Plan.Feasible) {
		t.Fatal("stored plan differs from returned plan")
	}
}

func TestPlanTripResolverFailureSkipsStart(t *testing.T) {
	planner := &TripPlanner{
		Catalog:  jaipurCatalog(),
		Resolver: &fakeResolver{},
		Store:    newMemStore(),
	}

	res, err := planner.PlanTrip(context.Background(), PlanTripRequest{
		UserID:       "u1",
		Categories:   []string{"fort"},
		StartAddress: "Nowhere Lane",
		Constraints:  domain.TripConstraints{Budget: 1e6, Days: 2, Passengers: 1},
	})
	if err != nil {
		t.Fatalf("resolver failure must not fail planning: %v", err)
	}
	if res.StartCoordinates != nil {
		t.Fatalf("start coordinates = %v, want nil", res.StartCoordinates)
	}
	if len(res.Route) != 2 || res.Route[0].Name != "Amber Fort" {
		t.Fatalf("route = %+v, want catalog places only", res.Route)
	}
	if res.Plan == nil || len(res.Plan.Feasible.Stops) != 2 {
		t.Fatalf("plan = %+v", res.Plan)
	}
}

func TestPlanTripNoCategories(t *testing.T) {
	catalog := jaipurCatalog()
	store := newMemStore()
	planner := &TripPlanner{
		Catalog:  catalog,
		Resolver: &fakeResolver{coords: map[string]domain.Coordinates{"Hotel": {Lat: 1, Lon: 2}}},
		Store:    store,
	}

	res, err := planner.PlanTrip(context.Background(), PlanTripRequest{
		UserID:       "u1",
		StartAddress: "Hotel",
		Constraints:  domain.TripConstraints{Budget: 100, Days: 1, Passengers: 1},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Plan != nil || len(res.Route) != 0 {
		t.Fatalf("expected no plan, got %+v", res)
	}
	if res.StartCoordinates == nil {
		t.Fatal("start coordinates should still be reported")
	}
	if catalog.calls != 0 {
		t.Fatalf("catalog called %d times, want 0", catalog.calls)
	}
	if len(store.plans) != 0 {
		t.Fatal("nothing should be persisted")
	}
}

func TestPlanTripNoMatches(t *testing.T) {
	store := newMemStore()
	planner := &TripPlanner{Catalog: jaipurCatalog(), Store: store}

	res, err := planner.PlanTrip(context.Background(), PlanTripRequest{
		UserID:      "u1",
		Categories:  []string{"beach"},
		Constraints: domain.TripConstraints{Budget: 100, Days: 1, Passengers: 1},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Plan != nil || len(store.plans) != 0 {
		t.Fatal("no plan should be produced without candidate places")
	}
}

func TestPlanTripCatalogError(t *testing.T) {
	planner := &TripPlanner{
		Catalog: &fakeCatalog{err: errors.New("db down")},
		Store:   newMemStore(),
	}

	_, err := planner.PlanTrip(context.Background(), PlanTripRequest{
		UserID:      "u1",
		Categories:  []string{"fort"},
		Constraints: domain.TripConstraints{Budget: 100, Days: 1, Passengers: 1},
	})
	if err == nil {
		t.Fatal("expected catalog error to propagate")
	}
}

func TestPlanTripRequiresUser(t *testing.T) {
	planner := &TripPlanner{Catalog: jaipurCatalog(), Store: newMemStore()}
	if _, err := planner.PlanTrip(context.Background(), PlanTripRequest{Categories: []string{"fort"}}); err == nil {
		t.Fatal("expected error for missing user id")
	}
}

func TestPlanTripIsDeterministic(t *testing.T) {
	planner := &TripPlanner{Catalog: jaipurCatalog(), Store: newMemStore(), Now: fixedNow}
	req := PlanTripRequest{
		UserID:      "u1",
		Categories:  []string{"fort", "palace", "lake"},
		Constraints: domain.TripConstraints{Budget: 3000, Days: 1, Passengers: 1},
	}

	a, err := planner.PlanTrip(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := planner.PlanTrip(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(a.Route, b.Route) || !reflect.DeepEqual(a.Plan.Feasible, b.Plan.Feasible) {
		t.Fatal("identical requests produced different plans")
	}
	if a.Plan.ID == b.Plan.ID {
		t.Fatal("plans should get distinct ids")
	}

	da := PartitionDays(a.Plan.Feasible, 1, DefaultPartitionOptions())
	db := PartitionDays(b.Plan.Feasible, 1, DefaultPartitionOptions())
	if !reflect.DeepEqual(da, db) {
		t.Fatal("identical plans produced different day partitions")
	}
}

package domain

import "time"

type PlanStatus string

const (
	PlanStatusDraft     PlanStatus = "draft"
	PlanStatusConfirmed PlanStatus = "confirmed"
)

// A single accepted place of a feasible plan, with the leg that reached it.
// The first stop of a plan always has zero leg values.
type FeasibleStop struct {
	Place            Place
	DistanceFromPrev float64
	TravelCost       float64
	EntryFee         float64
	TimeToVisit      float64
}

// Longest budget- and time-feasible prefix of a route.
type FeasiblePlan struct {
	Stops       []FeasibleStop
	TotalCost   float64
	TotalTime   float64
	TotalBudget float64
	TotalHours  float64
}

// Places returns the plan's places in visiting order.
func (p FeasiblePlan) Places() []Place {
	out := make([]Place, 0, len(p.Stops))
	for _, s := range p.Stops {
		out = append(out, s.Place)
	}
	return out
}

// Persisted planning result owned by a single user.
// Plans start as drafts and become confirmed once an itinerary is saved.
type TripPlan struct {
	ID           string
	UserID       string
	Status       PlanStatus
	StartAddress string
	Days         int
	Passengers   int
	Feasible     FeasiblePlan
	CreatedAt    time.Time
}

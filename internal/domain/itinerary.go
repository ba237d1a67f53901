package domain

import "time"

// One day of a trip: the places visited, in order, and hours spent.
type DayPlan struct {
	Day        int
	Places     []Place
	HoursSpent float64
}

// Confirmed day-wise schedule derived from a TripPlan.
type Itinerary struct {
	ID             string
	UserID         string
	OriginalPlanID string
	Days           []DayPlan
	CreatedAt      time.Time
}

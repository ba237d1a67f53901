package dto

import "time"

type PlanRequest struct {
	SelectedCategories []string `json:"selected_categories"`
	StartAddress       string   `json:"start_address"`
	Budget             float64  `json:"budget"`
	Days               int      `json:"days"`
	Passengers         int      `json:"passengers"`
	RefineRoute        bool     `json:"refine_route"`
}

type FeasibleStopResponse struct {
	PlaceResponse
	DistanceFromPrev float64 `json:"distance_from_prev"`
	TravelCost       float64 `json:"travel_cost"`
	EntryFee         float64 `json:"entry_fee"`
	TimeToVisit      float64 `json:"time_to_visit"`
}

type PlanResponse struct {
	ID             string                 `json:"id"`
	UserID         string                 `json:"user_id"`
	Status         string                 `json:"status"`
	StartAddress   string                 `json:"start_address"`
	Days           int                    `json:"days"`
	Passengers     int                    `json:"passengers"`
	FeasiblePlaces []FeasibleStopResponse `json:"feasible_places"`
	TotalCost      float64                `json:"total_cost"`
	TotalTime      float64                `json:"total_time"`
	TotalBudget    float64                `json:"total_budget"`
	TotalHours     float64                `json:"total_hours"`
	CreatedAt      time.Time              `json:"created_at"`
}

// Plan is null when no catalog place matched the selected categories.
type CreatePlanResponse struct {
	StartCoordinates *CoordinatesResponse `json:"start_coordinates"`
	OptimalPath      []PlaceResponse      `json:"optimal_path"`
	Plan             *PlanResponse        `json:"plan"`
}

type GetPlanResponse struct {
	Plan        PlanResponse      `json:"plan"`
	DayWisePlan []DayPlanResponse `json:"day_wise_plan"`
}

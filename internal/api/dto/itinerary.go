package dto

import "time"

type DayPlanResponse struct {
	Day        int             `json:"day"`
	Places     []PlaceResponse `json:"places"`
	HoursSpent float64         `json:"hours_spent"`
}

type ConfirmItineraryRequest struct {
	OriginalPlanID string            `json:"original_plan_id"`
	DayWisePlan    []DayPlanResponse `json:"day_wise_plan"`
}

type ItineraryResponse struct {
	ID             string            `json:"id"`
	UserID         string            `json:"user_id"`
	OriginalPlanID string            `json:"original_plan_id"`
	Itinerary      []DayPlanResponse `json:"itinerary"`
	CreatedAt      time.Time         `json:"created_at"`
}

package handlers

import (
	"net/http"
	"strings"

	"trip-planner-service/internal/api/dto"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/services"
)

type PlanHandler struct {
	Planner     *services.TripPlanner
	Itineraries *services.Itineraries
	// CostPerKm overrides the default travel price; 0 keeps the default.
	CostPerKm float64
}

// Create plans a trip for the caller and stores it as a draft.
func (h *PlanHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.PlanRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.Days < 1 {
		writeError(w, r, http.StatusBadRequest, "days must be at least 1")
		return
	}
	if req.Passengers < 1 {
		writeError(w, r, http.StatusBadRequest, "passengers must be at least 1")
		return
	}
	if req.Budget < 0 {
		writeError(w, r, http.StatusBadRequest, "budget must not be negative")
		return
	}

	categories := make([]string, 0, len(req.SelectedCategories))
	for _, c := range req.SelectedCategories {
		if c = strings.TrimSpace(c); c != "" {
			categories = append(categories, c)
		}
	}

	res, err := h.Planner.PlanTrip(r.Context(), services.PlanTripRequest{
		UserID:       UserID(r.Context()),
		Categories:   categories,
		StartAddress: req.StartAddress,
		Constraints: domain.TripConstraints{
			Budget:     req.Budget,
			Days:       req.Days,
			Passengers: req.Passengers,
			CostPerKm:  h.CostPerKm,
		},
		Route: services.RouteOptions{Refine: req.RefineRoute},
	})
	if err != nil {
		writeServiceError(w, r, "plan trip", err)
		return
	}

	out := dto.CreatePlanResponse{OptimalPath: toPlaceResponses(res.Route)}
	if res.StartCoordinates != nil {
		out.StartCoordinates = &dto.CoordinatesResponse{
			Latitude:  res.StartCoordinates.Lat,
			Longitude: res.StartCoordinates.Lon,
		}
	}
	if res.Plan != nil {
		plan := toPlanResponse(res.Plan)
		out.Plan = &plan
	}

	writeJSON(w, r, http.StatusOK, out)
}

// Get returns a stored plan with its day-wise breakdown.
func (h *PlanHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		writeError(w, r, http.StatusBadRequest, "plan id is required")
		return
	}

	plan, days, err := h.Itineraries.DayWisePlan(r.Context(), UserID(r.Context()), id)
	if err != nil {
		writeServiceError(w, r, "day-wise plan", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.GetPlanResponse{
		Plan:        toPlanResponse(plan),
		DayWisePlan: toDayPlanResponses(days),
	})
}

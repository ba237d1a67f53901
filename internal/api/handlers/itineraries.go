package handlers

import (
	"net/http"
	"strings"

	"trip-planner-service/internal/api/dto"
	"trip-planner-service/internal/services"
)

type ItineraryHandler struct {
	Itineraries *services.Itineraries
}

// Confirm saves the caller's day-wise plan and marks the source plan confirmed.
func (h *ItineraryHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.ConfirmItineraryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	planID := strings.TrimSpace(req.OriginalPlanID)
	if planID == "" || req.DayWisePlan == nil {
		writeError(w, r, http.StatusBadRequest, "original_plan_id and day_wise_plan are required")
		return
	}

	it, err := h.Itineraries.Confirm(r.Context(), UserID(r.Context()), planID, fromDayPlanResponses(req.DayWisePlan))
	if err != nil {
		writeServiceError(w, r, "confirm itinerary", err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ItineraryResponse{
		ID:             it.ID,
		UserID:         it.UserID,
		OriginalPlanID: it.OriginalPlanID,
		Itinerary:      toDayPlanResponses(it.Days),
		CreatedAt:      it.CreatedAt,
	})
}

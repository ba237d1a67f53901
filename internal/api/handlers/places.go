package handlers

import (
	"log"
	"net/http"

	"trip-planner-service/internal/api/dto"
	"trip-planner-service/internal/platform/obs"
	"trip-planner-service/internal/ports"
)

// PlaceHandler exposes read-only catalog endpoints.
type PlaceHandler struct {
	Catalog ports.PlaceCatalog
}

// List returns catalog places matching any ?category= value.
func (h *PlaceHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	categories := r.URL.Query()["category"]
	if len(categories) == 0 {
		writeError(w, r, http.StatusBadRequest, "at least one category query parameter is required")
		return
	}

	places, err := h.Catalog.ListPlaces(r.Context(), categories)
	if err != nil {
		log.Printf("req_id=%s list places failed: %v", obs.RequestID(r.Context()), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ListPlacesResponse{Places: toPlaceResponses(places)})
}

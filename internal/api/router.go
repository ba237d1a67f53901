package api

import (
	"net/http"

	"trip-planner-service/internal/api/handlers"
	"trip-planner-service/internal/ports"
	"trip-planner-service/internal/services"
)

// Dependencies are the services and ports the HTTP layer needs.
type Dependencies struct {
	Planner     *services.TripPlanner
	Itineraries *services.Itineraries
	Catalog     ports.PlaceCatalog
	DB          handlers.Pinger
	CostPerKm   float64
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(deps Dependencies) http.Handler {
	mux := http.NewServeMux()

	healthHandler := &handlers.HealthHandler{DB: deps.DB}
	placeHandler := &handlers.PlaceHandler{Catalog: deps.Catalog}
	planHandler := &handlers.PlanHandler{
		Planner:     deps.Planner,
		Itineraries: deps.Itineraries,
		CostPerKm:   deps.CostPerKm,
	}
	itineraryHandler := &handlers.ItineraryHandler{Itineraries: deps.Itineraries}

	mux.HandleFunc("/health", healthHandler.Health)
	mux.HandleFunc("/places", placeHandler.List)
	mux.HandleFunc("/plans", handlers.RequireUser(planHandler.Create))
	mux.HandleFunc("/plans/{id}", handlers.RequireUser(planHandler.Get))
	mux.HandleFunc("/itineraries", handlers.RequireUser(itineraryHandler.Confirm))

	return loggingMiddleware(mux)
}

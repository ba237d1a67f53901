package services

import (
	"math"

	"trip-planner-service/internal/domain"
)

// FilterFeasible walks the route in order and keeps the longest prefix that
// fits both the budget and the trip-hours ceiling.
//
// The first place is the starting point and is always kept at no cost.
// Travel is priced into cost only; the time budget counts visit time alone.
// The walk stops at the first place that does not fit, even if a later place
// would, so the result is always a prefix of the route.
//
// The budget is truncated to whole currency units, so the rounded TotalCost
// never exceeds it.
func FilterFeasible(places []domain.Place, route domain.Route, c domain.TripConstraints) domain.FeasiblePlan {
	costPerKm := c.CostPerKm
	if costPerKm == 0 {
		costPerKm = domain.DefaultCostPerKm
	}

	budget := math.Trunc(c.Budget)
	totalHours := c.TotalHours()
	plan := domain.FeasiblePlan{
		Stops:       []domain.FeasibleStop{},
		TotalBudget: budget,
		TotalHours:  totalHours,
	}

	if len(route.Order) == 0 {
		return plan
	}

	passengers := float64(c.Passengers)
	plan.Stops = append(plan.Stops, domain.FeasibleStop{Place: places[route.Order[0]]})

	totalCost := 0.0
	totalTime := 0.0
	for i := 1; i < len(route.Order); i++ {
		prev := route.Order[i-1]
		curr := route.Order[i]
		place := places[curr]

		dist := route.Matrix[prev][curr]
		travelCost := dist * costPerKm * passengers
		entryFee := float64(place.EntryFee()) * passengers
		visitTime := place.VisitHours()

		if totalCost+travelCost+entryFee > budget || totalTime+visitTime > totalHours {
			break
		}

		totalCost += travelCost + entryFee
		totalTime += visitTime
		plan.Stops = append(plan.Stops, domain.FeasibleStop{
			Place:            place,
			DistanceFromPrev: dist,
			TravelCost:       travelCost,
			EntryFee:         entryFee,
			TimeToVisit:      visitTime,
		})
	}

	plan.TotalCost = math.Round(totalCost)
	plan.TotalTime = math.Round(totalTime*100) / 100

	return plan
}

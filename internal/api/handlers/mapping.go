package handlers

import (
	"trip-planner-service/internal/api/dto"
	"trip-planner-service/internal/domain"
)

func toPlaceResponse(p domain.Place) dto.PlaceResponse {
	return dto.PlaceResponse{
		Place:               p.Name,
		State:               p.State,
		Latitude:            p.Latitude,
		Longitude:           p.Longitude,
		ExpectedTimeToVisit: p.DurationText,
		EntryFees:           p.EntryFeeText,
		Description:         p.Categories,
	}
}

func toPlaceResponses(places []domain.Place) []dto.PlaceResponse {
	out := make([]dto.PlaceResponse, 0, len(places))
	for _, p := range places {
		out = append(out, toPlaceResponse(p))
	}
	return out
}

func fromPlaceResponse(p dto.PlaceResponse) domain.Place {
	return domain.Place{
		Name:         p.Place,
		State:        p.State,
		Latitude:     p.Latitude,
		Longitude:    p.Longitude,
		DurationText: p.ExpectedTimeToVisit,
		EntryFeeText: p.EntryFees,
		Categories:   p.Description,
	}
}

func toPlanResponse(p *domain.TripPlan) dto.PlanResponse {
	stops := make([]dto.FeasibleStopResponse, 0, len(p.Feasible.Stops))
	for _, s := range p.Feasible.Stops {
		stops = append(stops, dto.FeasibleStopResponse{
			PlaceResponse:    toPlaceResponse(s.Place),
			DistanceFromPrev: s.DistanceFromPrev,
			TravelCost:       s.TravelCost,
			EntryFee:         s.EntryFee,
			TimeToVisit:      s.TimeToVisit,
		})
	}

	return dto.PlanResponse{
		ID:             p.ID,
		UserID:         p.UserID,
		Status:         string(p.Status),
		StartAddress:   p.StartAddress,
		Days:           p.Days,
		Passengers:     p.Passengers,
		FeasiblePlaces: stops,
		TotalCost:      p.Feasible.TotalCost,
		TotalTime:      p.Feasible.TotalTime,
		TotalBudget:    p.Feasible.TotalBudget,
		TotalHours:     p.Feasible.TotalHours,
		CreatedAt:      p.CreatedAt,
	}
}

func toDayPlanResponses(days []domain.DayPlan) []dto.DayPlanResponse {
	out := make([]dto.DayPlanResponse, 0, len(days))
	for _, d := range days {
		out = append(out, dto.DayPlanResponse{
			Day:        d.Day,
			Places:     toPlaceResponses(d.Places),
			HoursSpent: d.HoursSpent,
		})
	}
	return out
}

func fromDayPlanResponses(days []dto.DayPlanResponse) []domain.DayPlan {
	out := make([]domain.DayPlan, 0, len(days))
	for _, d := range days {
		places := make([]domain.Place, 0, len(d.Places))
		for _, p := range d.Places {
			places = append(places, fromPlaceResponse(p))
		}
		out = append(out, domain.DayPlan{Day: d.Day, Places: places, HoursSpent: d.HoursSpent})
	}
	return out
}

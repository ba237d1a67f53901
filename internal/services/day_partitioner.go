package services

import (
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/geo"
)

type PartitionOptions struct {
	DailyHours   float64
	AvgSpeedKmph float64
}

func DefaultPartitionOptions() PartitionOptions {
	return PartitionOptions{
		DailyHours:   domain.PartitionDailyHours,
		AvgSpeedKmph: domain.AvgSpeedKmph,
	}
}

// PartitionDays packs consecutive feasible places into days of at most
// opts.DailyHours, counting road travel at opts.AvgSpeedKmph plus visit time.
//
// The first feasible place is the trip origin and is never scheduled.
// A stop that crosses the ceiling opens a new day and is placed there even if
// it alone exceeds the ceiling. Once the last trip day is closed, any
// remaining places are dropped.
func PartitionDays(plan domain.FeasiblePlan, days int, opts PartitionOptions) []domain.DayPlan {
	if opts.DailyHours <= 0 {
		opts.DailyHours = domain.PartitionDailyHours
	}
	if opts.AvgSpeedKmph <= 0 {
		opts.AvgSpeedKmph = domain.AvgSpeedKmph
	}

	out := []domain.DayPlan{}
	places := plan.Places()
	if len(places) <= 1 {
		return out
	}

	current := domain.DayPlan{Day: 1, Places: []domain.Place{}}
	for i := 1; i < len(places); i++ {
		prev := places[i-1]
		curr := places[i]

		travel := geo.PartitioningDistance(prev.Coordinates(), curr.Coordinates()) / opts.AvgSpeedKmph
		stop := travel + curr.VisitHours()

		if current.HoursSpent+stop > opts.DailyHours {
			out = append(out, current)
			if current.Day >= days {
				return out
			}
			current = domain.DayPlan{Day: current.Day + 1, Places: []domain.Place{}}
		}

		current.Places = append(current.Places, curr)
		current.HoursSpent += stop
	}

	if len(current.Places) > 0 {
		out = append(out, current)
	}

	return out
}

package services

import (
	"math"
	"testing"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/geo"
)

func planOf(places ...domain.Place) domain.FeasiblePlan {
	stops := make([]domain.FeasibleStop, 0, len(places))
	for _, p := range places {
		stops = append(stops, domain.FeasibleStop{Place: p})
	}
	return domain.FeasiblePlan{Stops: stops}
}

func dayNames(d domain.DayPlan) []string {
	out := make([]string, 0, len(d.Places))
	for _, p := range d.Places {
		out = append(out, p.Name)
	}
	return out
}

func TestPartitionDaysNeedsTwoPlaces(t *testing.T) {
	opts := DefaultPartitionOptions()

	if days := PartitionDays(planOf(), 3, opts); len(days) != 0 {
		t.Fatalf("empty plan produced %d days", len(days))
	}
	if days := PartitionDays(planOf(domain.Place{Name: "start"}), 3, opts); len(days) != 0 {
		t.Fatalf("single-place plan produced %d days", len(days))
	}
}

func TestPartitionDaysSingleDay(t *testing.T) {
	plan := planOf(
		domain.Place{Name: "start"},
		domain.Place{Name: "A", DurationText: "2 hours"},
		domain.Place{Name: "B", DurationText: "3 hours"},
	)

	days := PartitionDays(plan, 2, DefaultPartitionOptions())
	if len(days) != 1 {
		t.Fatalf("days = %d, want 1", len(days))
	}
	if days[0].Day != 1 || days[0].HoursSpent != 5 || len(days[0].Places) != 2 {
		t.Fatalf("unexpected day: %+v", days[0])
	}
}

func TestPartitionDaysUsesRawDistance(t *testing.T) {
	a := domain.Place{Name: "start"}
	b := domain.Place{Name: "B", Longitude: 1}

	days := PartitionDays(planOf(a, b), 1, DefaultPartitionOptions())
	if len(days) != 1 {
		t.Fatalf("days = %d, want 1", len(days))
	}

	want := geo.HaversineKm(a.Coordinates(), b.Coordinates()) / 40
	if math.Abs(days[0].HoursSpent-want) > 1e-12 {
		t.Fatalf("hours = %v, want %v", days[0].HoursSpent, want)
	}
	if days[0].HoursSpent == 111.0/40 {
		t.Fatal("travel time used the rounded routing distance")
	}
}

func TestPartitionDaysForcesLongStopIntoOwnDay(t *testing.T) {
	plan := planOf(
		domain.Place{Name: "start"},
		domain.Place{Name: "A", Longitude: 0.01, DurationText: "2 hours"},
		domain.Place{Name: "B", Longitude: 0.01, DurationText: "15 hours"},
	)

	days := PartitionDays(plan, 3, DefaultPartitionOptions())
	if len(days) != 2 {
		t.Fatalf("days = %d, want 2", len(days))
	}

	if got := dayNames(days[0]); len(got) != 1 || got[0] != "A" {
		t.Fatalf("day 1 = %v, want [A]", got)
	}
	if got := dayNames(days[1]); len(got) != 1 || got[0] != "B" {
		t.Fatalf("day 2 = %v, want [B]", got)
	}
	if days[1].Day != 2 || days[1].HoursSpent <= 12 {
		t.Fatalf("day 2 should overflow the ceiling: %+v", days[1])
	}
}

func TestPartitionDaysDropsPlacesBeyondLastDay(t *testing.T) {
	places := []domain.Place{{Name: "start"}}
	for i := 0; i < 9; i++ {
		places = append(places, domain.Place{Name: string(rune('A' + i)), DurationText: "5 hours"})
	}

	days := PartitionDays(planOf(places...), 2, DefaultPartitionOptions())
	if len(days) != 2 {
		t.Fatalf("days = %d, want 2", len(days))
	}

	scheduled := 0
	for i, d := range days {
		if d.Day != i+1 {
			t.Fatalf("day numbers out of order: %+v", d)
		}
		if d.HoursSpent > 12 {
			t.Fatalf("day %d exceeds ceiling: %v", d.Day, d.HoursSpent)
		}
		scheduled += len(d.Places)
	}
	if scheduled != 4 {
		t.Fatalf("scheduled %d places, want 4 (rest dropped)", scheduled)
	}
	if got := dayNames(days[1]); got[0] != "C" || got[1] != "D" {
		t.Fatalf("day 2 = %v, want [C D]", got)
	}
}

func TestPartitionDaysFirstStopOverCeiling(t *testing.T) {
	plan := planOf(
		domain.Place{Name: "start"},
		domain.Place{Name: "trek", DurationText: "13 hours"},
	)

	days := PartitionDays(plan, 2, DefaultPartitionOptions())
	if len(days) != 2 {
		t.Fatalf("days = %d, want 2", len(days))
	}
	if len(days[0].Places) != 0 || days[0].HoursSpent != 0 {
		t.Fatalf("day 1 should be closed empty: %+v", days[0])
	}
	if got := dayNames(days[1]); len(got) != 1 || got[0] != "trek" {
		t.Fatalf("day 2 = %v, want [trek]", got)
	}
}

func TestPartitionDaysNeverExceedsTripDays(t *testing.T) {
	places := []domain.Place{{Name: "start"}}
	for i := 0; i < 30; i++ {
		places = append(places, domain.Place{Name: "p", Longitude: float64(i) * 0.3, DurationText: "3 hours"})
	}

	for tripDays := 1; tripDays <= 6; tripDays++ {
		days := PartitionDays(planOf(places...), tripDays, DefaultPartitionOptions())
		if len(days) > tripDays {
			t.Fatalf("trip days %d: produced %d day plans", tripDays, len(days))
		}
	}
}

func TestPartitionDaysCustomOptions(t *testing.T) {
	plan := planOf(
		domain.Place{Name: "start"},
		domain.Place{Name: "A", DurationText: "3 hours"},
		domain.Place{Name: "B", DurationText: "3 hours"},
	)

	days := PartitionDays(plan, 5, PartitionOptions{DailyHours: 4, AvgSpeedKmph: 60})
	if len(days) != 2 {
		t.Fatalf("days = %d, want 2", len(days))
	}
}

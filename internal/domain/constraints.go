package domain

const (
	// Active hours per trip day used for the overall time budget.
	BudgetDailyHours = 18.0
	// Active hours per day used when splitting a plan into days.
	PartitionDailyHours = 12.0
	// Average road speed for day partitioning travel estimates.
	AvgSpeedKmph = 40.0
	// Default travel cost per kilometre per passenger.
	DefaultCostPerKm = 15.0
)

// Trip limits supplied by the caller. Days and Passengers must be >= 1;
// the planning core does not validate them.
type TripConstraints struct {
	Budget     float64
	Days       int
	Passengers int
	CostPerKm  float64
}

// TotalHours is the time ceiling for the whole trip.
func (c TripConstraints) TotalHours() float64 {
	return float64(c.Days) * BudgetDailyHours
}

package domain

// Represents a point of interest read from the place catalog.
// Duration and fee are kept as the free text the catalog provides;
// numeric values are derived on demand and degrade to zero.
type Place struct {
	Name         string
	State        string
	Latitude     float64
	Longitude    float64
	DurationText string
	EntryFeeText string
	Categories   []string
}

func (p Place) Coordinates() Coordinates {
	return Coordinates{Lat: p.Latitude, Lon: p.Longitude}
}

// VisitHours returns the expected on-site time in hours.
func (p Place) VisitHours() float64 { return ParseDuration(p.DurationText) }

// EntryFee returns the per-person entry fee.
func (p Place) EntryFee() int { return ParseFee(p.EntryFeeText) }

// NewStartPlace builds the synthetic zero-cost place used when the trip
// begins at a resolved street address.
func NewStartPlace(address string, c Coordinates) Place {
	return Place{
		Name:         address,
		Latitude:     c.Lat,
		Longitude:    c.Lon,
		DurationText: "0",
		EntryFeeText: "0",
	}
}

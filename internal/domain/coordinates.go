package domain

// Immutable geographic coordinates in degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

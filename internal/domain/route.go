package domain

// Square, symmetric matrix of kilometre distances between places.
// Built once per planning request and read-only afterwards.
type DistanceMatrix [][]float64

// Size returns the number of places the matrix covers.
func (m DistanceMatrix) Size() int { return len(m) }

// Represents a visiting order over a fixed set of places.
// Order is a permutation of place indices starting at the chosen start index.
// It is an open path: there is no return leg to the start.
type Route struct {
	Order  []int
	Matrix DistanceMatrix
}

// Places maps the route order back onto the input places.
func (r Route) Places(places []Place) []Place {
	out := make([]Place, 0, len(r.Order))
	for _, i := range r.Order {
		out = append(out, places[i])
	}
	return out
}

// LengthKm returns the summed matrix distance along the route.
func (r Route) LengthKm() float64 {
	total := 0.0
	for i := 1; i < len(r.Order); i++ {
		total += r.Matrix[r.Order[i-1]][r.Order[i]]
	}
	return total
}

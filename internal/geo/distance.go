// Package geo holds the great-circle distance model shared by route
// construction, feasibility filtering and day partitioning.
package geo

import (
	"math"

	"trip-planner-service/internal/domain"
)

const EarthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance between a and b in kilometres.
func HaversineKm(a, b domain.Coordinates) float64 {
	phi1 := toRad(a.Lat)
	phi2 := toRad(b.Lat)
	dPhi := toRad(b.Lat - a.Lat)
	dLambda := toRad(b.Lon - a.Lon)

	sinPhi := math.Sin(dPhi / 2)
	sinLambda := math.Sin(dLambda / 2)
	h := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda

	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// RoutingDistance is the whole-kilometre distance used to build routes and
// price travel. It intentionally differs from PartitioningDistance: routes are
// chosen on rounded values while day splitting uses the raw distance.
func RoutingDistance(a, b domain.Coordinates) float64 {
	return math.Round(HaversineKm(a, b))
}

// PartitioningDistance is the unrounded distance used for travel-time
// estimates when splitting a plan into days.
func PartitioningDistance(a, b domain.Coordinates) float64 {
	return HaversineKm(a, b)
}

// NewDistanceMatrix builds the symmetric routing-distance matrix for places.
func NewDistanceMatrix(places []domain.Place) domain.DistanceMatrix {
	n := len(places)
	m := make(domain.DistanceMatrix, n)
	for i := range m {
		m[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := RoutingDistance(places[i].Coordinates(), places[j].Coordinates())
			m[i][j] = d
			m[j][i] = d
		}
	}

	return m
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}

package services

import (
	"errors"
	"fmt"
	"math"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/geo"
)

var ErrStartOutOfRange = errors.New("start index out of range")

type RouteOptions struct {
	// Refine runs a 2-opt pass over the nearest-neighbour path.
	// The start stays fixed and the result is still an open path.
	Refine bool
	// MaxRefinePasses bounds the 2-opt sweeps; 0 means a default of 10.
	MaxRefinePasses int
}

// BuildRoute orders places using a greedy nearest-neighbor algorithm.
//
// Each step moves to the closest unvisited place on the rounded distance
// matrix. Ties go to the lowest index so the output is deterministic for a
// given input order. It does not attempt global optimization.
func BuildRoute(places []domain.Place, startIndex int, opts RouteOptions) (domain.Route, error) {
	n := len(places)
	matrix := geo.NewDistanceMatrix(places)

	if n == 0 {
		return domain.Route{Order: []int{}, Matrix: matrix}, nil
	}

	if startIndex < 0 || startIndex >= n {
		return domain.Route{}, fmt.Errorf("build route: start=%d places=%d: %w", startIndex, n, ErrStartOutOfRange)
	}

	visited := make([]bool, n)
	order := make([]int, 0, n)
	order = append(order, startIndex)
	visited[startIndex] = true
	current := startIndex

	for step := 1; step < n; step++ {
		nearest := -1
		minDist := math.Inf(1)

		// Strict comparison keeps the first (lowest-index) minimum.
		for j := 0; j < n; j++ {
			if !visited[j] && matrix[current][j] < minDist {
				nearest = j
				minDist = matrix[current][j]
			}
		}

		if nearest == -1 {
			break
		}

		order = append(order, nearest)
		visited[nearest] = true
		current = nearest
	}

	route := domain.Route{Order: order, Matrix: matrix}
	if opts.Refine {
		route.Order = refineTwoOpt(matrix, route.Order, opts.MaxRefinePasses)
	}

	return route, nil
}

// refineTwoOpt reverses segments of an open path while that shortens it.
// Position 0 is never moved, so the route keeps its start.
func refineTwoOpt(m domain.DistanceMatrix, order []int, maxPasses int) []int {
	if maxPasses <= 0 {
		maxPasses = 10
	}

	n := len(order)
	best := append([]int(nil), order...)
	if n < 3 {
		return best
	}

	for pass := 0; pass < maxPasses; pass++ {
		improved := false
		for i := 1; i < n-1; i++ {
			for k := i + 1; k < n; k++ {
				// Reversing best[i..k] swaps edge (i-1,i) for (i-1,k) and,
				// unless k is the tail, edge (k,k+1) for (i,k+1).
				before := m[best[i-1]][best[i]]
				after := m[best[i-1]][best[k]]
				if k < n-1 {
					before += m[best[k]][best[k+1]]
					after += m[best[i]][best[k+1]]
				}

				if after+1e-9 < before {
					reverse(best[i : k+1])
					improved = true
				}
			}
		}
		if !improved {
			break
		}
	}

	return best
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

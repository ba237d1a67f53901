package geocode

import (
	"context"
	"fmt"
	"sync/atomic"

	"trip-planner-service/internal/domain"
)

// StaticResolver serves coordinates from a fixed table. Tests use it in place
// of a remote geocoder. It is safe for concurrent use.
type StaticResolver struct {
	m     map[string]domain.Coordinates
	Calls atomic.Int64
}

func NewStaticResolver(entries map[string]domain.Coordinates) *StaticResolver {
	m := make(map[string]domain.Coordinates, len(entries))
	for k, v := range entries {
		m[normalize(k)] = v
	}
	return &StaticResolver{m: m}
}

func (s *StaticResolver) ResolveCoordinates(ctx context.Context, address string) (domain.Coordinates, error) {
	s.Calls.Add(1)
	c, ok := s.m[normalize(address)]
	if !ok {
		return domain.Coordinates{}, fmt.Errorf("static resolver: unknown address %q", address)
	}
	return c, nil
}

package geocode

import (
	"context"
	"fmt"
	"log"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/platform/obs"
	"trip-planner-service/internal/ports"
)

// CachedResolver checks a persistent cache before calling the wrapped resolver
// and stores fresh results. Cache failures are logged and bypassed.
type CachedResolver struct {
	Next  ports.CoordinateResolver
	Cache ports.GeocodeCache
}

func NewCachedResolver(next ports.CoordinateResolver, cache ports.GeocodeCache) *CachedResolver {
	return &CachedResolver{Next: next, Cache: cache}
}

func (c *CachedResolver) ResolveCoordinates(ctx context.Context, address string) (domain.Coordinates, error) {
	key := normalize(address)
	reqID := obs.RequestID(ctx)

	if c.Cache != nil {
		hit, ok, err := c.Cache.Get(ctx, key)
		if err != nil {
			log.Printf("req_id=%s geocode cache read failed: %v", reqID, err)
		} else if ok {
			return hit, nil
		}
	}

	coords, err := c.Next.ResolveCoordinates(ctx, key)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("cached resolver: %w", err)
	}

	if c.Cache != nil {
		if err := c.Cache.Put(ctx, key, coords); err != nil {
			log.Printf("req_id=%s geocode cache write failed: %v", reqID, err)
		}
	}

	return coords, nil
}

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/platform/obs"
)

const redisGeocodePrefix = "geocode:"

type redisCoordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// RedisGeocodeCache stores address -> coordinates entries in Redis with a TTL.
// A zero TTL keeps entries until evicted.
type RedisGeocodeCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisGeocodeCache(client *redis.Client, ttl time.Duration) *RedisGeocodeCache {
	return &RedisGeocodeCache{Client: client, TTL: ttl}
}

func redisKey(address string) string {
	return redisGeocodePrefix + strings.ToLower(strings.TrimSpace(address))
}

func (r *RedisGeocodeCache) Get(ctx context.Context, address string) (_ domain.Coordinates, _ bool, err error) {
	defer obs.Time(ctx, "geocode.redis.Get")(&err)

	if r.Client == nil {
		return domain.Coordinates{}, false, errors.New("redis geocode cache: client is nil")
	}

	raw, err := r.Client.Get(ctx, redisKey(address)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Coordinates{}, false, nil
	}
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("redis geocode cache get %q: %w", address, err)
	}

	var v redisCoordinates
	if err := json.Unmarshal(raw, &v); err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("redis geocode cache decode %q: %w", address, err)
	}

	return domain.Coordinates{Lat: v.Lat, Lon: v.Lon}, true, nil
}

func (r *RedisGeocodeCache) Put(ctx context.Context, address string, c domain.Coordinates) error {
	if r.Client == nil {
		return errors.New("redis geocode cache: client is nil")
	}
	if strings.TrimSpace(address) == "" {
		return errors.New("redis geocode cache: empty address key")
	}

	raw, err := json.Marshal(redisCoordinates{Lat: c.Lat, Lon: c.Lon})
	if err != nil {
		return fmt.Errorf("redis geocode cache encode %q: %w", address, err)
	}

	if err := r.Client.Set(ctx, redisKey(address), raw, r.TTL).Err(); err != nil {
		return fmt.Errorf("redis geocode cache set %q: %w", address, err)
	}

	return nil
}

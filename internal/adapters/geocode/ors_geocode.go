package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/platform/obs"
)

type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// ORSResolver resolves addresses with the OpenRouteService search endpoint.
// It is safe for concurrent use.
type ORSResolver struct {
	session     *http.Client
	apiKey      string
	baseURL     string
	country     string
	maxAttempts int
	backoff     time.Duration
}

type ORSOption func(*ORSResolver)

// WithORSBaseURL points the resolver at another host (tests, self-hosted ORS).
func WithORSBaseURL(u string) ORSOption {
	return func(o *ORSResolver) { o.baseURL = strings.TrimRight(u, "/") }
}

// WithORSCountry restricts results to an ISO country code; empty disables it.
func WithORSCountry(code string) ORSOption {
	return func(o *ORSResolver) { o.country = code }
}

// WithORSRetry sets the attempt budget and the initial backoff.
func WithORSRetry(attempts int, backoff time.Duration) ORSOption {
	return func(o *ORSResolver) {
		if attempts > 0 {
			o.maxAttempts = attempts
		}
		o.backoff = backoff
	}
}

func NewORSResolver(apiKey string, opts ...ORSOption) (*ORSResolver, error) {
	if apiKey == "" {
		return nil, errors.New("ORS api key is empty")
	}

	o := &ORSResolver{
		session:     &http.Client{Timeout: 10 * time.Second},
		apiKey:      apiKey,
		baseURL:     "https://api.openrouteservice.org",
		country:     "IN",
		maxAttempts: 4,
		backoff:     200 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(o)
	}

	return o, nil
}

// ResolveCoordinates returns the best /geocode/search match for address.
func (o *ORSResolver) ResolveCoordinates(ctx context.Context, address string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "ors.ResolveCoordinates")(&err)

	norm := normalize(address)
	if norm == "" {
		return domain.Coordinates{}, errors.New("ors geocode: address must be non-empty")
	}

	endpoint := o.baseURL + "/geocode/search"
	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := o.newRequest(ctx, http.MethodGet, endpoint)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("text", norm)
		if o.country != "" {
			q.Set("boundary.country", o.country)
		}
		q.Set("size", "1")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("ors geocode %q: execute request: %w", norm, err)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Coordinates{}, fmt.Errorf("ors geocode %q: decode response: %w", norm, err)
	}

	if len(decoded.Features) == 0 {
		return domain.Coordinates{}, fmt.Errorf("ors geocode: no results for %q", norm)
	}

	coords := decoded.Features[0].Geometry.Coordinates
	if len(coords) != 2 {
		return domain.Coordinates{}, fmt.Errorf("ors geocode: invalid coordinate format for %q", norm)
	}

	// ORS returns GeoJSON order: [lon, lat].
	return domain.Coordinates{Lon: coords[0], Lat: coords[1]}, nil
}

// normalize collapses whitespace so equivalent addresses share cache keys.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Package geocoding resolves listing addresses to coordinates.
package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"vastgoed-sync/internal/domain"
	"vastgoed-sync/internal/pkg/apperrors"
)

// Coordinates are kept as the decimal strings the geocoder returns.
type Coordinates struct {
	Lat string
	Lng string
}

// Geocoder looks up one address. found is false when the service had no
// result; that is not an error.
type Geocoder interface {
	Lookup(ctx context.Context, addr domain.Address) (c Coordinates, found bool, err error)
}

// Client talks to geocode.maps.co.
type Client struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

func (c *Client) Lookup(ctx context.Context, addr domain.Address) (Coordinates, bool, error) {
	if addr.IsZero() {
		return Coordinates{}, false, nil
	}
	client := c.Client
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}

	q := url.Values{}
	q.Set("q", addr.String())
	if c.APIKey != "" {
		q.Set("api_key", c.APIKey)
	}
	endpoint := strings.TrimRight(c.BaseURL, "/") + "/search?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Coordinates{}, false, apperrors.Internal("creating geocode request", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return Coordinates{}, false, apperrors.Network("geocoding "+addr.String(), err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Coordinates{}, false, apperrors.Network(fmt.Sprintf("geocoding %s: status %d", addr, resp.StatusCode), nil)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return Coordinates{}, false, apperrors.New(apperrors.ErrTypeParse, "decoding geocode response", err)
	}
	if len(results) == 0 || results[0].Lat == "" || results[0].Lon == "" {
		return Coordinates{}, false, nil
	}
	return Coordinates{Lat: results[0].Lat, Lng: results[0].Lon}, true, nil
}

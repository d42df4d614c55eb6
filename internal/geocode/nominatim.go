// Package geocode resolves free-text addresses against a Nominatim-compatible
// search endpoint.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/yourplaces/places-server/internal/model"
)

var _ model.Geocoder = (*Nominatim)(nil)

// Nominatim is a geocoding adapter over the OpenStreetMap Nominatim search
// API. One call per request; the caller treats any failure as terminal.
type Nominatim struct {
	endpoint  string
	userAgent string
	client    *http.Client
}

// NewNominatim creates a Nominatim adapter for the given search endpoint.
func NewNominatim(endpoint, userAgent string) *Nominatim {
	return &Nominatim{
		endpoint:  endpoint,
		userAgent: userAgent,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode resolves the address to coordinates. Returns model.ErrNoResults
// when the provider finds no match.
func (g *Nominatim) Geocode(ctx context.Context, address string) (model.Coordinates, error) {
	reqURL := fmt.Sprintf("%s?format=json&q=%s", g.endpoint, url.QueryEscape(address))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return model.Coordinates{}, fmt.Errorf("failed to build geocoding request: %w", err)
	}
	// Nominatim's usage policy requires an identifying user agent.
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return model.Coordinates{}, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.Coordinates{}, fmt.Errorf("geocoding provider returned status %d", resp.StatusCode)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return model.Coordinates{}, fmt.Errorf("failed to decode geocoding response: %w", err)
	}

	if len(results) == 0 {
		return model.Coordinates{}, model.ErrNoResults
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return model.Coordinates{}, fmt.Errorf("failed to parse latitude %q: %w", results[0].Lat, err)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return model.Coordinates{}, fmt.Errorf("failed to parse longitude %q: %w", results[0].Lon, err)
	}

	return model.Coordinates{Lat: lat, Lng: lng}, nil
}

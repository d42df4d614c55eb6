package model

import (
	"context"
	"errors"
)

// ErrNoResults is returned when the geocoding provider finds no match
// for the address.
var ErrNoResults = errors.New("no geocoding results")

// Coordinates is a resolved latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Geocoder resolves a free-text address into coordinates via an external
// lookup service. A single call per request, no retries.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (Coordinates, error)
}

package interfaces

import "context"

// Coordinates is a lon/lat pair in floating-point degrees.
type Coordinates struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// Geocoder resolves a free-text address to coordinates.
// A nil result with a nil error means the address could not be resolved;
// callers decide whether that is fatal.
type Geocoder interface {
	Resolve(ctx context.Context, address string) (*Coordinates, error)
}

package service

import (
	"context"
	"fmt"
)

// GeocodingResolver maps coordinates to a human-readable address string.
// Resolution is best-effort: a failing resolver must never block a read, the
// caller falls back to CoordinateAddress instead.
type GeocodingResolver interface {
	Resolve(ctx context.Context, lat, lng float64) (string, error)
}

// CoordinateAddress is the fallback address used when no resolved address is
// available for a location sample.
func CoordinateAddress(lat, lng float64) string {
	return fmt.Sprintf("Lat: %.6f, Lng: %.6f", lat, lng)
}

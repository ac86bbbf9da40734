// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"paseo/internal/domain/entity"
	"paseo/internal/errors"
)

// ErrWalkMapNotFound is returned when a walk has no map yet.
var ErrWalkMapNotFound = errors.New("walk map not found")

// WalkMapRepository defines the interface for GPS telemetry persistence.
// Each walk has at most one map holding an append-only, recordedAt-ordered
// sequence of location samples.
type WalkMapRepository interface {
	// AppendLocation appends a sample to the walk's map, creating the map if
	// it does not exist yet. RecordedAt is assigned by the repository at
	// write time; the persisted sample is returned with generated values
	// filled in.
	AppendLocation(ctx context.Context, walkID int64, sample *entity.LocationSample) (*entity.LocationSample, error)

	// FindRouteByWalk retrieves the walk's full ordered route. A walk without
	// a map yields HasMap=false and an empty location list, not an error.
	FindRouteByWalk(ctx context.Context, walkID int64) (*entity.WalkRoute, error)

	// CheckAvailability probes for map existence and sample count without
	// materializing the route.
	CheckAvailability(ctx context.Context, walkID int64) (*entity.MapAvailability, error)
}

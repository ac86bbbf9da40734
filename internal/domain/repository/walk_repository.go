// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"paseo/internal/domain/entity"
	"paseo/internal/errors"
)

// Domain-specific errors for walk persistence.
var (
	// ErrWalkNotFound is returned when a walk is not found.
	ErrWalkNotFound = errors.New("walk not found")
	// ErrWalkVersionConflict is returned when a compare-and-swap status update
	// lost a race against a concurrent transition on the same walk.
	ErrWalkVersionConflict = errors.New("walk version conflict")
)

// StatusUpdate carries the fields of a status transition to be persisted
// atomically. The repository persists exactly what it is given; deciding the
// legality of the transition is the lifecycle component's job.
type StatusUpdate struct {
	Status      entity.WalkStatus
	ActualStart *time.Time // Set when the walk enters Active, nil otherwise.
	ActualEnd   *time.Time // Set when the walk enters Finished, nil otherwise.
}

// DetailsUpdate carries the non-status mutable walk fields. Nil fields are
// left untouched.
type DetailsUpdate struct {
	Duration    *int
	Distance    *float64
	WalkerNotes *string
	AdminNotes  *string
}

// WalkRepository defines the interface for walk-related database operations.
// All reads return the denormalized view with participant and pet names
// already joined in.
type WalkRepository interface {
	// CreateWalk persists a new walk and fills in generated values on the entity.
	CreateWalk(ctx context.Context, walk *entity.Walk) error

	// FindWalkByID retrieves a walk by its unique ID.
	// Returns ErrWalkNotFound if no such walk exists.
	FindWalkByID(ctx context.Context, id int64) (*entity.Walk, error)

	// FindAllWalks retrieves every walk, newest scheduled first.
	FindAllWalks(ctx context.Context) ([]*entity.Walk, error)

	// FindWalksByStatus retrieves all walks currently in the given status.
	FindWalksByStatus(ctx context.Context, status entity.WalkStatus) ([]*entity.Walk, error)

	// FindWalksByWalker retrieves all walks assigned to a walker.
	FindWalksByWalker(ctx context.Context, walkerID int64) ([]*entity.Walk, error)

	// FindWalksByOwner retrieves all walks requested by an owner.
	FindWalksByOwner(ctx context.Context, ownerID int64) ([]*entity.Walk, error)

	// FindWalksByWalkerAndStatus retrieves a walker's walks in the given
	// status. Used by the GPS fan-out to resolve eligible walks.
	FindWalksByWalkerAndStatus(ctx context.Context, walkerID int64, status entity.WalkStatus) ([]*entity.Walk, error)

	// UpdateWalkStatus persists a status transition guarded by the walk's
	// version token. The update applies only if the stored version still
	// equals expectedVersion; otherwise ErrWalkVersionConflict is returned
	// and nothing is written.
	UpdateWalkStatus(ctx context.Context, walkID, expectedVersion int64, update StatusUpdate) error

	// UpdateWalkDetails updates the non-status fields of a walk.
	UpdateWalkDetails(ctx context.Context, walkID int64, update DetailsUpdate) error

	// DeleteWalk removes a walk by its ID. Administrative use only.
	DeleteWalk(ctx context.Context, walkID int64) error
}

// Package usecase defines the application's use case interfaces and their
// input/output shapes.
package usecase

import (
	"context"
	"time"

	"paseo/internal/domain/entity"
)

// RequestWalkInput represents the input for creating a new walk request
type RequestWalkInput struct {
	WalkerID       int64     `json:"walkerId"`
	OwnerID        int64     `json:"ownerId"`
	PetIDs         []int64   `json:"petIds"`
	ScheduledStart time.Time `json:"scheduledDateTime"`
	StartAddress   string    `json:"startAddress"`
	TotalPrice     float64   `json:"totalPrice"`
}

// UpdateWalkDetailsInput represents the input for updating the non-status
// walk fields. Nil fields are left untouched.
type UpdateWalkDetailsInput struct {
	Duration    *int     `json:"duration,omitempty"`
	Distance    *float64 `json:"distance,omitempty"`
	WalkerNotes *string  `json:"notes,omitempty"`
	AdminNotes  *string  `json:"adminNotes,omitempty"`
}

// WalkUsecase owns the walk lifecycle: creation, the status state machine
// with its transition guards, and the walk read surface.
type WalkUsecase interface {
	// RequestWalk validates and persists a new walk in status Requested, with
	// the scheduled end derived from the scheduled start.
	RequestWalk(ctx context.Context, input *RequestWalkInput) (*entity.Walk, error)

	// Transition moves a walk to the target status if the transition table
	// allows it, applying the start-time gate for transitions to Active.
	// On success the refreshed walk view is returned.
	Transition(ctx context.Context, walkID int64, target entity.WalkStatus) (*entity.Walk, error)

	// Named wrappers around Transition with a fixed target status. They carry
	// no extra logic; they exist to give callers intention-revealing names.
	AcceptRequest(ctx context.Context, walkID int64) (*entity.Walk, error)
	RejectRequest(ctx context.Context, walkID int64) (*entity.Walk, error)
	ConfirmPayment(ctx context.Context, walkID int64) (*entity.Walk, error)
	StartWalk(ctx context.Context, walkID int64) (*entity.Walk, error)
	FinishWalk(ctx context.Context, walkID int64) (*entity.Walk, error)
	CancelWalk(ctx context.Context, walkID int64) (*entity.Walk, error)

	// Read surface
	GetWalk(ctx context.Context, walkID int64) (*entity.Walk, error)
	ListWalks(ctx context.Context) ([]*entity.Walk, error)
	ListWalksByStatus(ctx context.Context, status entity.WalkStatus) ([]*entity.Walk, error)
	ListWalksByWalker(ctx context.Context, walkerID int64) ([]*entity.Walk, error)
	ListWalksByOwner(ctx context.Context, ownerID int64) ([]*entity.Walk, error)

	// UpdateWalkDetails mutates duration, distance and notes without touching
	// the status.
	UpdateWalkDetails(ctx context.Context, walkID int64, input *UpdateWalkDetailsInput) (*entity.Walk, error)

	// DeleteWalk removes a walk entirely. Administrative use only.
	DeleteWalk(ctx context.Context, walkID int64) error
}

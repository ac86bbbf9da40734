// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// FixedWalkDuration is the booked length of every walk. The scheduled end is
// always derived from the scheduled start at creation time; whether this stays
// a fixed business rule or becomes a per-walk field is pending product
// confirmation, so it is kept as is.
const FixedWalkDuration = time.Hour

// Walk is a scheduled engagement between an owner's pets and a walker,
// tracked through the status state machine. Reads return the denormalized
// view with participant and pet names already joined in.
type Walk struct {
	ID             int64      `json:"id"`              // Unique identifier of the walk.
	WalkerID       int64      `json:"walkerId"`        // The walker taking the pets out.
	OwnerID        int64      `json:"ownerId"`         // The owner who requested the walk.
	WalkerName     string     `json:"walkerName"`      // Denormalized walker display name.
	OwnerName      string     `json:"ownerName"`       // Denormalized owner display name.
	PetIDs         []int64    `json:"petIds"`          // Pets on this walk; never empty, immutable after creation.
	PetNames       []string   `json:"petNames"`        // Denormalized pet names, same order as PetIDs.
	ScheduledStart time.Time  `json:"startTime"`       // Agreed start of the walk.
	ScheduledEnd   time.Time  `json:"endTime"`         // Always ScheduledStart + FixedWalkDuration.
	ActualStart    *time.Time `json:"actualStartTime"` // Stamped when the walk enters Active.
	ActualEnd      *time.Time `json:"actualEndTime"`   // Stamped when the walk enters Finished.
	StartAddress   string     `json:"startAddress"`    // Free-text pickup address.
	TotalPrice     float64    `json:"totalPrice"`      // Agreed price, always positive.
	Status         WalkStatus `json:"status"`          // Current lifecycle state.
	Duration       *int       `json:"duration"`        // Walked minutes, set while or after Active.
	Distance       *float64   `json:"distance"`        // Walked kilometers, set while or after Active.
	WalkerNotes    string     `json:"notes"`           // Free-text notes left by the walker.
	AdminNotes     string     `json:"adminNotes"`      // Free-text notes left by an administrator.
	Version        int64      `json:"-"`               // Optimistic concurrency token, bumped on every status change.
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

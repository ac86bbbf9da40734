// Package entity contains the core business objects of the project.
package entity

import (
	"strings"

	"paseo/internal/errors"
)

// WalkStatus represents the lifecycle state of a walk. The snake_case value
// is the canonical persisted form; display names exist only at the boundary.
type WalkStatus string

const (
	// StatusRequested is the initial state of an owner's walk request.
	StatusRequested WalkStatus = "requested"
	// StatusAwaitingPayment means the walker accepted and payment is pending.
	StatusAwaitingPayment WalkStatus = "awaiting_payment"
	// StatusScheduled means payment was confirmed and the walk is booked.
	StatusScheduled WalkStatus = "scheduled"
	// StatusActive means the walk is currently in progress.
	StatusActive WalkStatus = "active"
	// StatusFinished is the terminal state of a completed walk.
	StatusFinished WalkStatus = "finished"
	// StatusRejected is the terminal state of a request declined by the walker.
	StatusRejected WalkStatus = "rejected"
	// StatusCancelled is the terminal state of a walk cancelled before it started.
	StatusCancelled WalkStatus = "cancelled"
)

// walkTransitions is the closed legal transition table. A status missing a
// target here can never reach it, and terminal states have no entries.
var walkTransitions = map[WalkStatus][]WalkStatus{
	StatusRequested:       {StatusAwaitingPayment, StatusRejected, StatusCancelled},
	StatusAwaitingPayment: {StatusScheduled, StatusCancelled},
	StatusScheduled:       {StatusActive, StatusCancelled},
	StatusActive:          {StatusFinished},
	StatusFinished:        {},
	StatusRejected:        {},
	StatusCancelled:       {},
}

// walkStatusDisplayNames maps canonical values to their display form.
var walkStatusDisplayNames = map[WalkStatus]string{
	StatusRequested:       "Requested",
	StatusAwaitingPayment: "Awaiting payment",
	StatusScheduled:       "Scheduled",
	StatusActive:          "Active",
	StatusFinished:        "Finished",
	StatusRejected:        "Rejected",
	StatusCancelled:       "Cancelled",
}

// ErrUnknownWalkStatus is returned when a status string cannot be parsed.
var ErrUnknownWalkStatus = errors.New("unknown walk status")

// String returns the canonical persisted representation of the status.
func (s WalkStatus) String() string {
	return string(s)
}

// DisplayName returns the human-readable form of the status.
func (s WalkStatus) DisplayName() string {
	if name, ok := walkStatusDisplayNames[s]; ok {
		return name
	}

	return string(s)
}

// IsValid checks if the WalkStatus is a known value.
func (s WalkStatus) IsValid() bool {
	_, ok := walkTransitions[s]

	return ok
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s WalkStatus) IsTerminal() bool {
	targets, ok := walkTransitions[s]

	return ok && len(targets) == 0
}

// CanTransitionTo reports whether the transition s -> target is legal.
func (s WalkStatus) CanTransitionTo(target WalkStatus) bool {
	for _, allowed := range walkTransitions[s] {
		if allowed == target {
			return true
		}
	}

	return false
}

// AllowedTargets returns a copy of the legal targets for the status.
func (s WalkStatus) AllowedTargets() []WalkStatus {
	targets := walkTransitions[s]
	out := make([]WalkStatus, len(targets))
	copy(out, targets)

	return out
}

// ParseWalkStatus resolves either the canonical or the display form of a
// status into the canonical value. Matching is case-insensitive so that
// boundary callers may send "Active", "active" or "Awaiting payment".
func ParseWalkStatus(raw string) (WalkStatus, error) {
	candidate := WalkStatus(strings.ToLower(strings.TrimSpace(raw)))
	if candidate.IsValid() {
		return candidate, nil
	}

	for status, display := range walkStatusDisplayNames {
		if strings.EqualFold(display, strings.TrimSpace(raw)) {
			return status, nil
		}
	}

	return "", errors.Wrapf(ErrUnknownWalkStatus, "%q", raw)
}

package service

import (
	"context"
	"time"
)

// WalkerGpsSettings is the slice of a walker's settings the tracking core
// cares about.
type WalkerGpsSettings struct {
	TrackingEnabled  bool          // Whether the walker shares GPS positions at all.
	TrackingInterval time.Duration // Suggested client-side sampling interval.
}

// WalkerSettingsProvider exposes per-walker preferences owned by the settings
// collaborator. A walker without a stored settings row gets defaults with
// tracking disabled.
type WalkerSettingsProvider interface {
	GpsSettings(ctx context.Context, walkerID int64) (*WalkerGpsSettings, error)
}

package usecase

import (
	"context"

	"paseo/internal/domain/entity"
)

// ReportPositionInput represents one GPS position reported by a walker.
type ReportPositionInput struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Altitude  float64 `json:"altitude"`
}

// SavedLocation pairs a persisted sample with the walk it was recorded on.
type SavedLocation struct {
	WalkID   int64                  `json:"walkId"`
	Location *entity.LocationSample `json:"location"`
}

// ReportPositionResult is the outcome of one fan-out. SavedCount counts only
// the walks whose append succeeded; failed targets are logged and skipped.
type ReportPositionResult struct {
	SavedCount int             `json:"savedCount"`
	Locations  []SavedLocation `json:"locations"`
}

// TrackingUsecase distributes reported GPS positions across the reporting
// walker's eligible walks and serves the recorded routes back.
type TrackingUsecase interface {
	// ReportPosition appends the position to the map of every eligible walk
	// of the walker (Active status and GPS tracking enabled), independently
	// per walk. Zero eligible walks is a normal outcome, not an error.
	ReportPosition(ctx context.Context, walkerID int64, input *ReportPositionInput) (*ReportPositionResult, error)

	// GetRoute returns the walk's ordered route with addresses resolved
	// lazily, or HasMap=false when nothing was ever recorded.
	GetRoute(ctx context.Context, walkID int64) (*entity.WalkRoute, error)

	// CheckMapAvailability probes whether tracking data exists for the walk.
	CheckMapAvailability(ctx context.Context, walkID int64) (*entity.MapAvailability, error)
}

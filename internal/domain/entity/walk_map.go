// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// WalkMap is the per-walk container of recorded GPS samples. At most one map
// exists per walk and it is created lazily on the first location write.
type WalkMap struct {
	ID        int64     `json:"id"`     // Unique identifier of the map.
	WalkID    int64     `json:"walkId"` // The walk this map belongs to, one-to-one.
	CreatedAt time.Time `json:"createdAt"`
}

// LocationSample is a single recorded GPS position on a walk map. Samples are
// append-only and ordered by RecordedAt ascending.
type LocationSample struct {
	ID         int64     `json:"id"`
	MapID      int64     `json:"-"`
	Latitude   float64   `json:"lat"`        // In [-90, 90].
	Longitude  float64   `json:"lng"`        // In [-180, 180].
	Elevation  float64   `json:"elevation"`  // Meters above sea level, 0 when the device did not report one.
	Address    string    `json:"address"`    // Human-readable address, resolved lazily at read time.
	RecordedAt time.Time `json:"recordedAt"` // Server-assigned at write time.
}

// WalkRoute is the full ordered route of a walk. HasMap is false when no
// sample was ever recorded for the walk.
type WalkRoute struct {
	HasMap    bool              `json:"hasMap"`
	MapID     int64             `json:"mapId,omitempty"`
	WalkID    int64             `json:"walkId"`
	Locations []*LocationSample `json:"locations"`
}

// MapAvailability is a lightweight existence probe over a walk's map, for
// callers that only need to know whether tracking data exists yet.
type MapAvailability struct {
	HasMap        bool  `json:"hasMap"`
	MapID         int64 `json:"mapId,omitempty"`
	LocationCount int64 `json:"locationCount"`
}

package model

import (
	"time"
)

// WalkMapModel is the GORM-specific struct for the 'walk_maps' table.
// At most one map exists per walk; the row is created lazily on the first
// recorded location.
type WalkMapModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	WalkID    int64 `gorm:"not null;uniqueIndex"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (WalkMapModel) TableName() string {
	return "walk_maps"
}

// WalkLocationModel is the GORM-specific struct for the 'walk_locations'
// table. Rows are append-only and ordered by recorded_at.
type WalkLocationModel struct {
	ID         int64   `gorm:"primaryKey;autoIncrement"`
	MapID      int64   `gorm:"not null;index"`
	Latitude   float64 `gorm:"type:decimal(10,7);not null"`
	Longitude  float64 `gorm:"type:decimal(10,7);not null"`
	Elevation  float64 `gorm:"type:decimal(8,2)"`
	Address    *string `gorm:"type:text"`
	RecordedAt time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (WalkLocationModel) TableName() string {
	return "walk_locations"
}

// Package model contains the GORM-specific structs mapping database tables.
package model

import (
	"time"
)

// WalkModel is the GORM-specific struct for the 'walks' table.
// The version column is the optimistic concurrency token; every status
// transition bumps it.
type WalkModel struct {
	ID                 int64      `gorm:"primaryKey;autoIncrement"`
	WalkerID           int64      `gorm:"not null;index"`
	OwnerID            int64      `gorm:"not null;index"`
	ScheduledStartTime time.Time  `gorm:"not null;index"`
	ScheduledEndTime   time.Time  `gorm:"not null"`
	ActualStartTime    *time.Time
	ActualEndTime      *time.Time
	StartAddress       string   `gorm:"type:text"`
	TotalPrice         float64  `gorm:"type:decimal(10,2);not null"`
	Status             string   `gorm:"type:varchar(32);not null;index"`
	Duration           *int
	Distance           *float64 `gorm:"type:decimal(10,3)"`
	WalkerNotes        string   `gorm:"type:text"`
	AdminNotes         string   `gorm:"type:text"`
	Version            int64    `gorm:"not null;default:1"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (WalkModel) TableName() string {
	return "walks"
}

// WalkPetModel is the GORM-specific struct for the 'walk_pets' join table.
// The pet list of a walk is immutable after creation.
type WalkPetModel struct {
	WalkID int64 `gorm:"primaryKey"`
	PetID  int64 `gorm:"primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (WalkPetModel) TableName() string {
	return "walk_pets"
}

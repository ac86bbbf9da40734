package model

import (
	"time"
)

// WalkerSettingModel is the GORM-specific struct for the 'walker_settings'
// table. Settings are owned by the account collaborator; this service only
// reads the GPS-related slice.
type WalkerSettingModel struct {
	WalkerID                   int64   `gorm:"primaryKey"`
	GpsTrackingEnabled         bool    `gorm:"not null;default:false"`
	GpsTrackingIntervalSeconds int     `gorm:"not null;default:30"`
	HadDiscount                bool    `gorm:"not null;default:false"`
	DiscountPercentage         float64 `gorm:"type:decimal(5,2);not null;default:0"`
	UpdatedAt                  time.Time
}

// TableName explicitly sets the table name for GORM.
func (WalkerSettingModel) TableName() string {
	return "walker_settings"
}

package postgres

import (
	"context"
	"time"

	"paseo/internal/domain/service"
	"paseo/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	defaultTrackingInterval = 30 * time.Second
	minTrackingInterval     = 10 * time.Second
	maxTrackingInterval     = 300 * time.Second
)

// walkerSettingsProvider reads the GPS slice of walker settings. The table is
// owned by the account collaborator; a walker without a row gets defaults
// with tracking disabled.
type walkerSettingsProvider struct {
	db *gorm.DB
}

// NewWalkerSettingsProvider is the constructor for walkerSettingsProvider.
func NewWalkerSettingsProvider(db *gorm.DB) service.WalkerSettingsProvider {
	return &walkerSettingsProvider{
		db: db,
	}
}

// GpsSettings returns the walker's GPS preferences.
func (repo *walkerSettingsProvider) GpsSettings(ctx context.Context, walkerID int64) (*service.WalkerGpsSettings, error) {
	var settingM model.WalkerSettingModel

	if err := repo.db.WithContext(ctx).
		Where("walker_id = ?", walkerID).
		First(&settingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &service.WalkerGpsSettings{
				TrackingEnabled:  false,
				TrackingInterval: defaultTrackingInterval,
			}, nil
		}

		return nil, errors.Wrap(err, "failed to find walker settings")
	}

	return &service.WalkerGpsSettings{
		TrackingEnabled:  settingM.GpsTrackingEnabled,
		TrackingInterval: clampInterval(time.Duration(settingM.GpsTrackingIntervalSeconds) * time.Second),
	}, nil
}

// clampInterval keeps stored intervals within the supported range.
func clampInterval(interval time.Duration) time.Duration {
	if interval < minTrackingInterval {
		return minTrackingInterval
	}
	if interval > maxTrackingInterval {
		return maxTrackingInterval
	}

	return interval
}

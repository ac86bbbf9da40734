package postgres

import (
	"context"
	"time"

	"paseo/internal/domain/entity"
	domainerrors "paseo/internal/domain/errors"
	"paseo/internal/domain/repository"
	"paseo/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// walkMapRepository implements the repository.WalkMapRepository interface.
type walkMapRepository struct {
	db *gorm.DB
}

// NewWalkMapRepository is the constructor for walkMapRepository.
func NewWalkMapRepository(db *gorm.DB) repository.WalkMapRepository {
	return &walkMapRepository{
		db: db,
	}
}

// AppendLocation appends a sample to the walk's map, creating the map row on
// the first write. The recorded time is assigned here, not by the caller.
func (repo *walkMapRepository) AppendLocation(ctx context.Context, walkID int64, sample *entity.LocationSample) (*entity.LocationSample, error) {
	var locationM *model.WalkLocationModel

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		walkMap := model.WalkMapModel{WalkID: walkID}
		if err := tx.Where("walk_id = ?", walkID).FirstOrCreate(&walkMap).Error; err != nil {
			return err
		}

		locationM = &model.WalkLocationModel{
			MapID:      walkMap.ID,
			Latitude:   sample.Latitude,
			Longitude:  sample.Longitude,
			Elevation:  sample.Elevation,
			RecordedAt: time.Now().UTC(),
		}

		return tx.Create(locationM).Error
	})
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, repository.ErrWalkNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to append location")
	}

	return toLocationDomain(locationM), nil
}

// FindRouteByWalk retrieves the walk's full ordered route. A walk without a
// map is a normal empty result, not an error.
func (repo *walkMapRepository) FindRouteByWalk(ctx context.Context, walkID int64) (*entity.WalkRoute, error) {
	var walkMap model.WalkMapModel

	if err := repo.db.WithContext(ctx).
		Where("walk_id = ?", walkID).
		First(&walkMap).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &entity.WalkRoute{
				HasMap:    false,
				WalkID:    walkID,
				Locations: []*entity.LocationSample{},
			}, nil
		}

		return nil, errors.Wrap(err, "failed to find walk map")
	}

	var locationModels []*model.WalkLocationModel
	if err := repo.db.WithContext(ctx).
		Where("map_id = ?", walkMap.ID).
		Order("recorded_at ASC, id ASC").
		Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find walk locations")
	}

	locations := make([]*entity.LocationSample, 0, len(locationModels))
	for _, locationM := range locationModels {
		locations = append(locations, toLocationDomain(locationM))
	}

	return &entity.WalkRoute{
		HasMap:    true,
		MapID:     walkMap.ID,
		WalkID:    walkID,
		Locations: locations,
	}, nil
}

// CheckAvailability probes for map existence and sample count.
func (repo *walkMapRepository) CheckAvailability(ctx context.Context, walkID int64) (*entity.MapAvailability, error) {
	var walkMap model.WalkMapModel

	if err := repo.db.WithContext(ctx).
		Where("walk_id = ?", walkID).
		First(&walkMap).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &entity.MapAvailability{HasMap: false}, nil
		}

		return nil, errors.Wrap(err, "failed to find walk map")
	}

	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.WalkLocationModel{}).
		Where("map_id = ?", walkMap.ID).
		Count(&count).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count walk locations")
	}

	return &entity.MapAvailability{
		HasMap:        true,
		MapID:         walkMap.ID,
		LocationCount: count,
	}, nil
}

// --- Mapper Functions ---

// toLocationDomain converts a GORM WalkLocationModel to a domain LocationSample entity.
func toLocationDomain(data *model.WalkLocationModel) *entity.LocationSample {
	if data == nil {
		return nil
	}

	sample := &entity.LocationSample{
		ID:         data.ID,
		MapID:      data.MapID,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		Elevation:  data.Elevation,
		RecordedAt: data.RecordedAt,
	}
	if data.Address != nil {
		sample.Address = *data.Address
	}

	return sample
}

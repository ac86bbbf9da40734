package impl

import (
	"context"
	"log/slog"

	"paseo/internal/domain/entity"
	domainerrors "paseo/internal/domain/errors"
	"paseo/internal/domain/repository"
	"paseo/internal/domain/service"
	"paseo/internal/errors"
	"paseo/internal/usecase"
)

type trackingService struct {
	walkRepo     repository.WalkRepository
	walkMapRepo  repository.WalkMapRepository
	settingsRepo service.WalkerSettingsProvider
	geocoder     service.GeocodingResolver
	logger       *slog.Logger
}

// NewTrackingService creates a new tracking service instance
func NewTrackingService(
	walkRepo repository.WalkRepository,
	walkMapRepo repository.WalkMapRepository,
	settingsRepo service.WalkerSettingsProvider,
	geocoder service.GeocodingResolver,
	logger *slog.Logger,
) usecase.TrackingUsecase {
	return &trackingService{
		walkRepo:     walkRepo,
		walkMapRepo:  walkMapRepo,
		settingsRepo: settingsRepo,
		geocoder:     geocoder,
		logger:       logger,
	}
}

// ReportPosition appends the reported position to the map of every eligible
// walk of the walker. Each walk is an independent target; one failing append
// is logged and skipped without affecting the others.
func (s *trackingService) ReportPosition(ctx context.Context, walkerID int64, input *usecase.ReportPositionInput) (*usecase.ReportPositionResult, error) {
	if input.Latitude < -90 || input.Latitude > 90 || input.Longitude < -180 || input.Longitude > 180 {
		return nil, domainerrors.ErrInvalidCoordinates
	}

	result := &usecase.ReportPositionResult{
		Locations: []usecase.SavedLocation{},
	}

	settings, err := s.settingsRepo.GpsSettings(ctx, walkerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load walker settings")
	}

	// A walker with tracking disabled produces no writes; the report is
	// accepted and dropped.
	if !settings.TrackingEnabled {
		return result, nil
	}

	walks, err := s.walkRepo.FindWalksByWalkerAndStatus(ctx, walkerID, entity.StatusActive)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active walks")
	}

	for _, walk := range walks {
		sample := &entity.LocationSample{
			Latitude:  input.Latitude,
			Longitude: input.Longitude,
			Elevation: input.Altitude,
		}

		saved, err := s.walkMapRepo.AppendLocation(ctx, walk.ID, sample)
		if err != nil {
			s.logger.WarnContext(ctx, "failed to append location, skipping walk",
				slog.Int64("walkID", walk.ID),
				slog.Int64("walkerID", walkerID),
				slog.Any("error", err))

			continue
		}

		result.SavedCount++
		result.Locations = append(result.Locations, usecase.SavedLocation{
			WalkID:   walk.ID,
			Location: saved,
		})
	}

	return result, nil
}

// GetRoute returns the walk's ordered route with addresses resolved lazily.
// Address resolution is best-effort; a failing resolver degrades to the
// coordinate fallback instead of failing the read.
func (s *trackingService) GetRoute(ctx context.Context, walkID int64) (*entity.WalkRoute, error) {
	route, err := s.walkMapRepo.FindRouteByWalk(ctx, walkID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find route by walk")
	}

	for _, location := range route.Locations {
		if location.Address != "" {
			continue
		}
		location.Address = s.resolveAddress(ctx, location.Latitude, location.Longitude)
	}

	return route, nil
}

// CheckMapAvailability probes whether tracking data exists for the walk
func (s *trackingService) CheckMapAvailability(ctx context.Context, walkID int64) (*entity.MapAvailability, error) {
	availability, err := s.walkMapRepo.CheckAvailability(ctx, walkID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check map availability")
	}

	return availability, nil
}

func (s *trackingService) resolveAddress(ctx context.Context, lat, lng float64) string {
	if s.geocoder == nil {
		return service.CoordinateAddress(lat, lng)
	}

	address, err := s.geocoder.Resolve(ctx, lat, lng)
	if err != nil || address == "" {
		return service.CoordinateAddress(lat, lng)
	}

	return address
}

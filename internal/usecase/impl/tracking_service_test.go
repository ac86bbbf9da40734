package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"paseo/internal/domain/entity"
	domainerrors "paseo/internal/domain/errors"
	mockRepo "paseo/internal/mocks/repository"
	mockSvc "paseo/internal/mocks/service"
	"paseo/internal/domain/service"
	"paseo/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackingService_ReportPosition_FanOut(t *testing.T) {
	mockWalkRepo := mockRepo.NewMockWalkRepository(t)
	mockMapRepo := mockRepo.NewMockWalkMapRepository(t)
	mockSettings := mockSvc.NewMockWalkerSettingsProvider(t)
	trackingService := NewTrackingService(mockWalkRepo, mockMapRepo, mockSettings, nil, newDiscardLogger())

	ctx := context.Background()
	walkerID := int64(1)
	input := &usecase.ReportPositionInput{Latitude: 25.033, Longitude: 121.5654, Altitude: 10}

	mockSettings.EXPECT().
		GpsSettings(ctx, walkerID).
		Return(&service.WalkerGpsSettings{TrackingEnabled: true, TrackingInterval: 30 * time.Second}, nil)

	activeWalks := []*entity.Walk{
		{ID: 10, WalkerID: walkerID, Status: entity.StatusActive},
		{ID: 11, WalkerID: walkerID, Status: entity.StatusActive},
		{ID: 12, WalkerID: walkerID, Status: entity.StatusActive},
	}
	mockWalkRepo.EXPECT().
		FindWalksByWalkerAndStatus(ctx, walkerID, entity.StatusActive).
		Return(activeWalks, nil)

	for _, walk := range activeWalks {
		mockMapRepo.EXPECT().
			AppendLocation(ctx, walk.ID, &entity.LocationSample{Latitude: 25.033, Longitude: 121.5654, Elevation: 10}).
			Return(&entity.LocationSample{ID: walk.ID * 100, Latitude: 25.033, Longitude: 121.5654, Elevation: 10}, nil)
	}

	result, err := trackingService.ReportPosition(ctx, walkerID, input)
	require.NoError(t, err)
	assert.Equal(t, 3, result.SavedCount)
	require.Len(t, result.Locations, 3)
	assert.Equal(t, int64(10), result.Locations[0].WalkID)
	assert.Equal(t, int64(11), result.Locations[1].WalkID)
	assert.Equal(t, int64(12), result.Locations[2].WalkID)
}

func TestTrackingService_ReportPosition_PartialFailure(t *testing.T) {
	mockWalkRepo := mockRepo.NewMockWalkRepository(t)
	mockMapRepo := mockRepo.NewMockWalkMapRepository(t)
	mockSettings := mockSvc.NewMockWalkerSettingsProvider(t)
	trackingService := NewTrackingService(mockWalkRepo, mockMapRepo, mockSettings, nil, newDiscardLogger())

	ctx := context.Background()
	walkerID := int64(1)
	input := &usecase.ReportPositionInput{Latitude: 25.033, Longitude: 121.5654}

	mockSettings.EXPECT().
		GpsSettings(ctx, walkerID).
		Return(&service.WalkerGpsSettings{TrackingEnabled: true}, nil)

	activeWalks := []*entity.Walk{
		{ID: 10, Status: entity.StatusActive},
		{ID: 11, Status: entity.StatusActive},
	}
	mockWalkRepo.EXPECT().
		FindWalksByWalkerAndStatus(ctx, walkerID, entity.StatusActive).
		Return(activeWalks, nil)

	mockMapRepo.EXPECT().
		AppendLocation(ctx, int64(10), &entity.LocationSample{Latitude: 25.033, Longitude: 121.5654}).
		Return(nil, errors.New("insert failed"))
	mockMapRepo.EXPECT().
		AppendLocation(ctx, int64(11), &entity.LocationSample{Latitude: 25.033, Longitude: 121.5654}).
		Return(&entity.LocationSample{ID: 1100, Latitude: 25.033, Longitude: 121.5654}, nil)

	// One failing walk must not take down the others.
	result, err := trackingService.ReportPosition(ctx, walkerID, input)
	require.NoError(t, err)
	assert.Equal(t, 1, result.SavedCount)
	require.Len(t, result.Locations, 1)
	assert.Equal(t, int64(11), result.Locations[0].WalkID)
}

func TestTrackingService_ReportPosition_TrackingDisabled(t *testing.T) {
	mockWalkRepo := mockRepo.NewMockWalkRepository(t)
	mockMapRepo := mockRepo.NewMockWalkMapRepository(t)
	mockSettings := mockSvc.NewMockWalkerSettingsProvider(t)
	trackingService := NewTrackingService(mockWalkRepo, mockMapRepo, mockSettings, nil, newDiscardLogger())

	ctx := context.Background()
	walkerID := int64(1)

	mockSettings.EXPECT().
		GpsSettings(ctx, walkerID).
		Return(&service.WalkerGpsSettings{TrackingEnabled: false}, nil)

	result, err := trackingService.ReportPosition(ctx, walkerID, &usecase.ReportPositionInput{Latitude: 25, Longitude: 121})
	require.NoError(t, err)
	assert.Equal(t, 0, result.SavedCount)
	assert.Empty(t, result.Locations)
}

func TestTrackingService_ReportPosition_NoActiveWalks(t *testing.T) {
	mockWalkRepo := mockRepo.NewMockWalkRepository(t)
	mockMapRepo := mockRepo.NewMockWalkMapRepository(t)
	mockSettings := mockSvc.NewMockWalkerSettingsProvider(t)
	trackingService := NewTrackingService(mockWalkRepo, mockMapRepo, mockSettings, nil, newDiscardLogger())

	ctx := context.Background()
	walkerID := int64(1)

	mockSettings.EXPECT().
		GpsSettings(ctx, walkerID).
		Return(&service.WalkerGpsSettings{TrackingEnabled: true}, nil)
	mockWalkRepo.EXPECT().
		FindWalksByWalkerAndStatus(ctx, walkerID, entity.StatusActive).
		Return([]*entity.Walk{}, nil)

	result, err := trackingService.ReportPosition(ctx, walkerID, &usecase.ReportPositionInput{Latitude: 25, Longitude: 121})
	require.NoError(t, err)
	assert.Equal(t, 0, result.SavedCount)
	assert.Empty(t, result.Locations)
}

func TestTrackingService_ReportPosition_InvalidCoordinates(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.ReportPositionInput
	}{
		{name: "latitude too high", input: &usecase.ReportPositionInput{Latitude: 90.1, Longitude: 0}},
		{name: "latitude too low", input: &usecase.ReportPositionInput{Latitude: -90.1, Longitude: 0}},
		{name: "longitude too high", input: &usecase.ReportPositionInput{Latitude: 0, Longitude: 180.1}},
		{name: "longitude too low", input: &usecase.ReportPositionInput{Latitude: 0, Longitude: -180.1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWalkRepo := mockRepo.NewMockWalkRepository(t)
			mockMapRepo := mockRepo.NewMockWalkMapRepository(t)
			mockSettings := mockSvc.NewMockWalkerSettingsProvider(t)
			trackingService := NewTrackingService(mockWalkRepo, mockMapRepo, mockSettings, nil, newDiscardLogger())

			result, err := trackingService.ReportPosition(context.Background(), 1, tt.input)
			require.Error(t, err)
			assert.Nil(t, result)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "INVALID_COORDINATES", appErr.ErrorCode())
		})
	}
}

func TestTrackingService_GetRoute_ResolvesAddresses(t *testing.T) {
	mockWalkRepo := mockRepo.NewMockWalkRepository(t)
	mockMapRepo := mockRepo.NewMockWalkMapRepository(t)
	mockSettings := mockSvc.NewMockWalkerSettingsProvider(t)
	mockGeocoder := mockSvc.NewMockGeocodingResolver(t)
	trackingService := NewTrackingService(mockWalkRepo, mockMapRepo, mockSettings, mockGeocoder, newDiscardLogger())

	ctx := context.Background()
	mockMapRepo.EXPECT().
		FindRouteByWalk(ctx, int64(10)).
		Return(&entity.WalkRoute{
			HasMap: true,
			MapID:  5,
			WalkID: 10,
			Locations: []*entity.LocationSample{
				{ID: 1, Latitude: 25.033, Longitude: 121.5654},
				{ID: 2, Latitude: 25.034, Longitude: 121.5655},
			},
		}, nil)

	mockGeocoder.EXPECT().Resolve(ctx, 25.033, 121.5654).Return("1 Example Road, Taipei", nil)
	mockGeocoder.EXPECT().Resolve(ctx, 25.034, 121.5655).Return("", errors.New("geocoder unavailable"))

	route, err := trackingService.GetRoute(ctx, 10)
	require.NoError(t, err)
	require.Len(t, route.Locations, 2)
	assert.Equal(t, "1 Example Road, Taipei", route.Locations[0].Address)
	assert.Equal(t, "Lat: 25.034000, Lng: 121.565500", route.Locations[1].Address)
}

func TestTrackingService_GetRoute_NoMap(t *testing.T) {
	mockWalkRepo := mockRepo.NewMockWalkRepository(t)
	mockMapRepo := mockRepo.NewMockWalkMapRepository(t)
	mockSettings := mockSvc.NewMockWalkerSettingsProvider(t)
	trackingService := NewTrackingService(mockWalkRepo, mockMapRepo, mockSettings, nil, newDiscardLogger())

	ctx := context.Background()
	mockMapRepo.EXPECT().
		FindRouteByWalk(ctx, int64(10)).
		Return(&entity.WalkRoute{HasMap: false, WalkID: 10, Locations: []*entity.LocationSample{}}, nil)

	route, err := trackingService.GetRoute(ctx, 10)
	require.NoError(t, err)
	assert.False(t, route.HasMap)
	assert.Empty(t, route.Locations)
}

func TestTrackingService_CheckMapAvailability(t *testing.T) {
	mockWalkRepo := mockRepo.NewMockWalkRepository(t)
	mockMapRepo := mockRepo.NewMockWalkMapRepository(t)
	mockSettings := mockSvc.NewMockWalkerSettingsProvider(t)
	trackingService := NewTrackingService(mockWalkRepo, mockMapRepo, mockSettings, nil, newDiscardLogger())

	ctx := context.Background()
	mockMapRepo.EXPECT().
		CheckAvailability(ctx, int64(10)).
		Return(&entity.MapAvailability{HasMap: true, MapID: 5, LocationCount: 42}, nil)

	availability, err := trackingService.CheckMapAvailability(ctx, 10)
	require.NoError(t, err)
	assert.True(t, availability.HasMap)
	assert.Equal(t, int64(42), availability.LocationCount)
}

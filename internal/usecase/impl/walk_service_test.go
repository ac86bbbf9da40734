package impl

import (
	"context"
	"testing"
	"time"

	"paseo/config"
	"paseo/internal/domain/entity"
	domainerrors "paseo/internal/domain/errors"
	"paseo/internal/domain/repository"
	mockRepo "paseo/internal/mocks/repository"
	"paseo/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newTestWalkService builds a walk service with a fixed clock so the
// time-dependent rules can be exercised deterministically.
func newTestWalkService(repo repository.WalkRepository, now time.Time) usecase.WalkUsecase {
	svc := NewWalkService(repo, &config.Config{}).(*walkService)
	svc.now = func() time.Time { return now }

	return svc
}

func fixedNow() time.Time {
	return time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
}

func TestWalkService_RequestWalk_Success(t *testing.T) {
	mockWalkRepo := mockRepo.NewMockWalkRepository(t)
	service := newTestWalkService(mockWalkRepo, fixedNow())

	ctx := context.Background()
	scheduledStart := time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)
	input := &usecase.RequestWalkInput{
		WalkerID:       1,
		OwnerID:        2,
		PetIDs:         []int64{7},
		ScheduledStart: scheduledStart,
		StartAddress:   "123 Bark Street",
		TotalPrice:     500,
	}

	mockWalkRepo.EXPECT().
		CreateWalk(ctx, mock.AnythingOfType("*entity.Walk")).
		Run(func(ctx context.Context, walk *entity.Walk) {
			walk.ID = 42
		}).
		Return(nil)

	walk, err := service.RequestWalk(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, walk)
	assert.Equal(t, int64(42), walk.ID)
	assert.Equal(t, entity.StatusRequested, walk.Status)
	assert.Equal(t, scheduledStart, walk.ScheduledStart)
	assert.Equal(t, scheduledStart.Add(time.Hour), walk.ScheduledEnd)
	assert.Nil(t, walk.ActualStart)
	assert.Nil(t, walk.ActualEnd)
}

func TestWalkService_RequestWalk_Validation(t *testing.T) {
	scheduledStart := fixedNow().Add(time.Hour)

	tests := []struct {
		name  string
		input *usecase.RequestWalkInput
	}{
		{
			name: "no pets",
			input: &usecase.RequestWalkInput{
				WalkerID: 1, OwnerID: 2, PetIDs: []int64{},
				ScheduledStart: scheduledStart, TotalPrice: 500,
			},
		},
		{
			name: "zero price",
			input: &usecase.RequestWalkInput{
				WalkerID: 1, OwnerID: 2, PetIDs: []int64{7},
				ScheduledStart: scheduledStart, TotalPrice: 0,
			},
		},
		{
			name: "negative price",
			input: &usecase.RequestWalkInput{
				WalkerID: 1, OwnerID: 2, PetIDs: []int64{7},
				ScheduledStart: scheduledStart, TotalPrice: -10,
			},
		},
		{
			name: "start in the past",
			input: &usecase.RequestWalkInput{
				WalkerID: 1, OwnerID: 2, PetIDs: []int64{7},
				ScheduledStart: fixedNow().Add(-time.Minute), TotalPrice: 500,
			},
		},
		{
			name: "missing participants",
			input: &usecase.RequestWalkInput{
				PetIDs:         []int64{7},
				ScheduledStart: scheduledStart, TotalPrice: 500,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWalkRepo := mockRepo.NewMockWalkRepository(t)
			service := newTestWalkService(mockWalkRepo, fixedNow())

			walk, err := service.RequestWalk(context.Background(), tt.input)
			require.Error(t, err)
			assert.Nil(t, walk)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
		})
	}
}

func TestWalkService_AcceptRequest_Success(t *testing.T) {
	mockWalkRepo := mockRepo.NewMockWalkRepository(t)
	service := newTestWalkService(mockWalkRepo, fixedNow())

	ctx := context.Background()
	current := &entity.Walk{ID: 1, Status: entity.StatusRequested, Version: 3}
	refreshed := &entity.Walk{ID: 1, Status: entity.StatusAwaitingPayment, Version: 4}

	mockWalkRepo.EXPECT().FindWalkByID(ctx, int64(1)).Return(current, nil).Once()
	mockWalkRepo.EXPECT().
		UpdateWalkStatus(ctx, int64(1), int64(3), repository.StatusUpdate{Status: entity.StatusAwaitingPayment}).
		Return(nil)
	mockWalkRepo.EXPECT().FindWalkByID(ctx, int64(1)).Return(refreshed, nil).Once()

	walk, err := service.AcceptRequest(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusAwaitingPayment, walk.Status)
}

func TestWalkService_Transition_Illegal(t *testing.T) {
	tests := []struct {
		name    string
		current entity.WalkStatus
		target  entity.WalkStatus
	}{
		{name: "requested to active", current: entity.StatusRequested, target: entity.StatusActive},
		{name: "requested to finished", current: entity.StatusRequested, target: entity.StatusFinished},
		{name: "awaiting payment to active", current: entity.StatusAwaitingPayment, target: entity.StatusActive},
		{name: "active to cancelled", current: entity.StatusActive, target: entity.StatusCancelled},
		{name: "finished is terminal", current: entity.StatusFinished, target: entity.StatusActive},
		{name: "rejected is terminal", current: entity.StatusRejected, target: entity.StatusAwaitingPayment},
		{name: "cancelled is terminal", current: entity.StatusCancelled, target: entity.StatusScheduled},
		{name: "self transition", current: entity.StatusScheduled, target: entity.StatusScheduled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWalkRepo := mockRepo.NewMockWalkRepository(t)
			service := newTestWalkService(mockWalkRepo, fixedNow())

			ctx := context.Background()
			mockWalkRepo.EXPECT().
				FindWalkByID(ctx, int64(1)).
				Return(&entity.Walk{ID: 1, Status: tt.current, Version: 1}, nil)

			walk, err := service.Transition(ctx, 1, tt.target)
			require.Error(t, err)
			assert.Nil(t, walk)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "ILLEGAL_TRANSITION", appErr.ErrorCode())
			assert.Contains(t, appErr.Message(), tt.current.DisplayName())
			assert.Contains(t, appErr.Message(), tt.target.DisplayName())
		})
	}
}

func TestWalkService_StartWalk_WithinWindow(t *testing.T) {
	scheduledStart := time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
	}{
		{name: "exactly on time", now: scheduledStart},
		{name: "20 minutes early", now: scheduledStart.Add(-20 * time.Minute)},
		{name: "20 minutes late", now: scheduledStart.Add(20 * time.Minute)},
		{name: "just inside early edge", now: scheduledStart.Add(-19*time.Minute - 59*time.Second)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWalkRepo := mockRepo.NewMockWalkRepository(t)
			service := newTestWalkService(mockWalkRepo, tt.now)

			ctx := context.Background()
			current := &entity.Walk{ID: 1, Status: entity.StatusScheduled, ScheduledStart: scheduledStart, Version: 2}
			started := &entity.Walk{ID: 1, Status: entity.StatusActive, ScheduledStart: scheduledStart, ActualStart: &tt.now, Version: 3}

			mockWalkRepo.EXPECT().FindWalkByID(ctx, int64(1)).Return(current, nil).Once()

			var captured repository.StatusUpdate
			mockWalkRepo.EXPECT().
				UpdateWalkStatus(ctx, int64(1), int64(2), mock.AnythingOfType("repository.StatusUpdate")).
				Run(func(ctx context.Context, walkID, expectedVersion int64, update repository.StatusUpdate) {
					captured = update
				}).
				Return(nil)
			mockWalkRepo.EXPECT().FindWalkByID(ctx, int64(1)).Return(started, nil).Once()

			walk, err := service.StartWalk(ctx, 1)
			require.NoError(t, err)
			assert.Equal(t, entity.StatusActive, walk.Status)

			assert.Equal(t, entity.StatusActive, captured.Status)
			require.NotNil(t, captured.ActualStart)
			assert.Equal(t, tt.now, *captured.ActualStart)
			assert.Nil(t, captured.ActualEnd)
		})
	}
}

func TestWalkService_StartWalk_OutsideWindow(t *testing.T) {
	scheduledStart := time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
	}{
		{name: "just too early", now: scheduledStart.Add(-20*time.Minute - time.Second)},
		{name: "just too late", now: scheduledStart.Add(20*time.Minute + time.Second)},
		{name: "one hour early", now: scheduledStart.Add(-time.Hour)},
		{name: "a day late", now: scheduledStart.Add(24 * time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWalkRepo := mockRepo.NewMockWalkRepository(t)
			service := newTestWalkService(mockWalkRepo, tt.now)

			ctx := context.Background()
			mockWalkRepo.EXPECT().
				FindWalkByID(ctx, int64(1)).
				Return(&entity.Walk{ID: 1, Status: entity.StatusScheduled, ScheduledStart: scheduledStart, Version: 2}, nil)

			walk, err := service.StartWalk(ctx, 1)
			require.Error(t, err)
			assert.Nil(t, walk)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "START_OUTSIDE_WINDOW", appErr.ErrorCode())
			assert.Contains(t, appErr.Message(), scheduledStart.Format(time.RFC3339))
		})
	}
}

func TestWalkService_FinishWalk_StampsActualEnd(t *testing.T) {
	now := fixedNow()
	mockWalkRepo := mockRepo.NewMockWalkRepository(t)
	service := newTestWalkService(mockWalkRepo, now)

	ctx := context.Background()
	current := &entity.Walk{ID: 1, Status: entity.StatusActive, Version: 5}
	finished := &entity.Walk{ID: 1, Status: entity.StatusFinished, ActualEnd: &now, Version: 6}

	mockWalkRepo.EXPECT().FindWalkByID(ctx, int64(1)).Return(current, nil).Once()

	var captured repository.StatusUpdate
	mockWalkRepo.EXPECT().
		UpdateWalkStatus(ctx, int64(1), int64(5), mock.AnythingOfType("repository.StatusUpdate")).
		Run(func(ctx context.Context, walkID, expectedVersion int64, update repository.StatusUpdate) {
			captured = update
		}).
		Return(nil)
	mockWalkRepo.EXPECT().FindWalkByID(ctx, int64(1)).Return(finished, nil).Once()

	walk, err := service.FinishWalk(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusFinished, walk.Status)

	assert.Nil(t, captured.ActualStart)
	require.NotNil(t, captured.ActualEnd)
	assert.Equal(t, now, *captured.ActualEnd)
}

func TestWalkService_Transition_VersionConflict(t *testing.T) {
	mockWalkRepo := mockRepo.NewMockWalkRepository(t)
	service := newTestWalkService(mockWalkRepo, fixedNow())

	ctx := context.Background()
	mockWalkRepo.EXPECT().
		FindWalkByID(ctx, int64(1)).
		Return(&entity.Walk{ID: 1, Status: entity.StatusRequested, Version: 1}, nil)
	mockWalkRepo.EXPECT().
		UpdateWalkStatus(ctx, int64(1), int64(1), repository.StatusUpdate{Status: entity.StatusCancelled}).
		Return(repository.ErrWalkVersionConflict)

	walk, err := service.CancelWalk(ctx, 1)
	require.Error(t, err)
	assert.Nil(t, walk)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "WALK_CONFLICT", appErr.ErrorCode())
}

func TestWalkService_GetWalk_NotFound(t *testing.T) {
	mockWalkRepo := mockRepo.NewMockWalkRepository(t)
	service := newTestWalkService(mockWalkRepo, fixedNow())

	ctx := context.Background()
	mockWalkRepo.EXPECT().FindWalkByID(ctx, int64(99)).Return(nil, repository.ErrWalkNotFound)

	walk, err := service.GetWalk(ctx, 99)
	require.Error(t, err)
	assert.Nil(t, walk)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "WALK_NOT_FOUND", appErr.ErrorCode())
}

func TestWalkService_ListWalksByStatus(t *testing.T) {
	mockWalkRepo := mockRepo.NewMockWalkRepository(t)
	service := newTestWalkService(mockWalkRepo, fixedNow())

	ctx := context.Background()
	expected := []*entity.Walk{
		{ID: 1, Status: entity.StatusActive},
		{ID: 2, Status: entity.StatusActive},
	}

	mockWalkRepo.EXPECT().FindWalksByStatus(ctx, entity.StatusActive).Return(expected, nil)

	walks, err := service.ListWalksByStatus(ctx, entity.StatusActive)
	require.NoError(t, err)
	assert.Equal(t, expected, walks)
}

func TestWalkService_ListWalksByStatus_Unknown(t *testing.T) {
	mockWalkRepo := mockRepo.NewMockWalkRepository(t)
	service := newTestWalkService(mockWalkRepo, fixedNow())

	walks, err := service.ListWalksByStatus(context.Background(), entity.WalkStatus("in_progress"))
	require.Error(t, err)
	assert.Nil(t, walks)
}

func TestWalkService_UpdateWalkDetails_Success(t *testing.T) {
	mockWalkRepo := mockRepo.NewMockWalkRepository(t)
	service := newTestWalkService(mockWalkRepo, fixedNow())

	ctx := context.Background()
	duration := 55
	distance := 3.2
	notes := "Played fetch in the park"
	input := &usecase.UpdateWalkDetailsInput{
		Duration:    &duration,
		Distance:    &distance,
		WalkerNotes: &notes,
	}

	current := &entity.Walk{ID: 1, Status: entity.StatusFinished}
	updated := &entity.Walk{ID: 1, Status: entity.StatusFinished, Duration: &duration, Distance: &distance, WalkerNotes: notes}

	mockWalkRepo.EXPECT().FindWalkByID(ctx, int64(1)).Return(current, nil).Once()
	mockWalkRepo.EXPECT().
		UpdateWalkDetails(ctx, int64(1), repository.DetailsUpdate{
			Duration:    &duration,
			Distance:    &distance,
			WalkerNotes: &notes,
		}).
		Return(nil)
	mockWalkRepo.EXPECT().FindWalkByID(ctx, int64(1)).Return(updated, nil).Once()

	walk, err := service.UpdateWalkDetails(ctx, 1, input)
	require.NoError(t, err)
	assert.Equal(t, notes, walk.WalkerNotes)
	assert.Equal(t, entity.StatusFinished, walk.Status, "details update must not touch the status")
}

func TestWalkService_UpdateWalkDetails_NegativeValues(t *testing.T) {
	mockWalkRepo := mockRepo.NewMockWalkRepository(t)
	service := newTestWalkService(mockWalkRepo, fixedNow())

	duration := -5
	walk, err := service.UpdateWalkDetails(context.Background(), 1, &usecase.UpdateWalkDetailsInput{Duration: &duration})
	require.Error(t, err)
	assert.Nil(t, walk)
}

func TestWalkService_DeleteWalk_NotFound(t *testing.T) {
	mockWalkRepo := mockRepo.NewMockWalkRepository(t)
	service := newTestWalkService(mockWalkRepo, fixedNow())

	ctx := context.Background()
	mockWalkRepo.EXPECT().DeleteWalk(ctx, int64(99)).Return(repository.ErrWalkNotFound)

	err := service.DeleteWalk(ctx, 99)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "WALK_NOT_FOUND", appErr.ErrorCode())
}

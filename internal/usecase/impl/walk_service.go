// Package impl provides the implementations of the use case interfaces.
package impl

import (
	"context"
	"time"

	"paseo/config"
	"paseo/internal/domain/entity"
	domainerrors "paseo/internal/domain/errors"
	"paseo/internal/domain/repository"
	"paseo/internal/errors"
	"paseo/internal/usecase"
)

// defaultStartWindow is the allowed deviation from the scheduled start when
// starting a walk, used when the config does not override it.
const defaultStartWindow = 20 * time.Minute

type walkService struct {
	walkRepo    repository.WalkRepository
	startWindow time.Duration

	// now is swappable so the start gate can be exercised in tests.
	now func() time.Time
}

// NewWalkService creates a new walk service instance
func NewWalkService(walkRepo repository.WalkRepository, cfg *config.Config) usecase.WalkUsecase {
	window := defaultStartWindow
	if cfg != nil && cfg.Walk != nil && cfg.Walk.StartWindow > 0 {
		window = cfg.Walk.StartWindow
	}

	return &walkService{
		walkRepo:    walkRepo,
		startWindow: window,
		now:         time.Now,
	}
}

// RequestWalk validates and persists a new walk request
func (s *walkService) RequestWalk(ctx context.Context, input *usecase.RequestWalkInput) (*entity.Walk, error) {
	if input.WalkerID <= 0 || input.OwnerID <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("walkerId and ownerId are required")
	}
	if len(input.PetIDs) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("at least one pet is required")
	}
	if input.TotalPrice <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("totalPrice must be positive")
	}
	if input.ScheduledStart.IsZero() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("scheduledDateTime is required")
	}
	if input.ScheduledStart.Before(s.now()) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("scheduledDateTime must not be in the past")
	}

	walk := &entity.Walk{
		WalkerID:       input.WalkerID,
		OwnerID:        input.OwnerID,
		PetIDs:         input.PetIDs,
		ScheduledStart: input.ScheduledStart,
		ScheduledEnd:   input.ScheduledStart.Add(entity.FixedWalkDuration),
		StartAddress:   input.StartAddress,
		TotalPrice:     input.TotalPrice,
		Status:         entity.StatusRequested,
	}

	if err := s.walkRepo.CreateWalk(ctx, walk); err != nil {
		return nil, domainerrors.ErrWalkCreationFailed.WrapMessage(err.Error())
	}

	return walk, nil
}

// Transition moves a walk to the target status through the transition table.
// The persisted update is guarded by the walk's version so that two racing
// transitions cannot both win.
func (s *walkService) Transition(ctx context.Context, walkID int64, target entity.WalkStatus) (*entity.Walk, error) {
	if !target.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown target status: " + target.String())
	}

	walk, err := s.findWalk(ctx, walkID)
	if err != nil {
		return nil, err
	}

	if !walk.Status.CanTransitionTo(target) {
		return nil, domainerrors.NewIllegalTransitionError(walk.Status, target)
	}

	update := repository.StatusUpdate{Status: target}

	switch target {
	case entity.StatusActive:
		now := s.now()
		if err := s.checkStartWindow(walk.ScheduledStart, now); err != nil {
			return nil, err
		}
		update.ActualStart = &now
	case entity.StatusFinished:
		now := s.now()
		update.ActualEnd = &now
	}

	if err := s.walkRepo.UpdateWalkStatus(ctx, walkID, walk.Version, update); err != nil {
		switch {
		case errors.Is(err, repository.ErrWalkVersionConflict):
			return nil, domainerrors.ErrWalkConflict
		case errors.Is(err, repository.ErrWalkNotFound):
			return nil, domainerrors.ErrWalkNotFound
		default:
			return nil, domainerrors.ErrWalkUpdateFailed.WrapMessage(err.Error())
		}
	}

	return s.findWalk(ctx, walkID)
}

// checkStartWindow enforces that a walk only starts within the allowed window
// around its scheduled start. Both window edges are inclusive.
func (s *walkService) checkStartWindow(scheduledStart, now time.Time) error {
	offset := now.Sub(scheduledStart)
	if offset < -s.startWindow || offset > s.startWindow {
		return domainerrors.NewStartWindowError(scheduledStart, s.startWindow)
	}

	return nil
}

// AcceptRequest moves a requested walk to awaiting payment
func (s *walkService) AcceptRequest(ctx context.Context, walkID int64) (*entity.Walk, error) {
	return s.Transition(ctx, walkID, entity.StatusAwaitingPayment)
}

// RejectRequest declines a requested walk
func (s *walkService) RejectRequest(ctx context.Context, walkID int64) (*entity.Walk, error) {
	return s.Transition(ctx, walkID, entity.StatusRejected)
}

// ConfirmPayment moves a walk awaiting payment to scheduled
func (s *walkService) ConfirmPayment(ctx context.Context, walkID int64) (*entity.Walk, error) {
	return s.Transition(ctx, walkID, entity.StatusScheduled)
}

// StartWalk moves a scheduled walk to active, subject to the start window
func (s *walkService) StartWalk(ctx context.Context, walkID int64) (*entity.Walk, error) {
	return s.Transition(ctx, walkID, entity.StatusActive)
}

// FinishWalk completes an active walk
func (s *walkService) FinishWalk(ctx context.Context, walkID int64) (*entity.Walk, error) {
	return s.Transition(ctx, walkID, entity.StatusFinished)
}

// CancelWalk cancels a walk that has not started yet
func (s *walkService) CancelWalk(ctx context.Context, walkID int64) (*entity.Walk, error) {
	return s.Transition(ctx, walkID, entity.StatusCancelled)
}

// GetWalk retrieves a single walk by ID
func (s *walkService) GetWalk(ctx context.Context, walkID int64) (*entity.Walk, error) {
	return s.findWalk(ctx, walkID)
}

// ListWalks retrieves every walk
func (s *walkService) ListWalks(ctx context.Context) ([]*entity.Walk, error) {
	walks, err := s.walkRepo.FindAllWalks(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find walks")
	}

	return walks, nil
}

// ListWalksByStatus retrieves all walks in the given status
func (s *walkService) ListWalksByStatus(ctx context.Context, status entity.WalkStatus) ([]*entity.Walk, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown status: " + status.String())
	}

	walks, err := s.walkRepo.FindWalksByStatus(ctx, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find walks by status")
	}

	return walks, nil
}

// ListWalksByWalker retrieves all walks assigned to a walker
func (s *walkService) ListWalksByWalker(ctx context.Context, walkerID int64) ([]*entity.Walk, error) {
	walks, err := s.walkRepo.FindWalksByWalker(ctx, walkerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find walks by walker")
	}

	return walks, nil
}

// ListWalksByOwner retrieves all walks requested by an owner
func (s *walkService) ListWalksByOwner(ctx context.Context, ownerID int64) ([]*entity.Walk, error) {
	walks, err := s.walkRepo.FindWalksByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find walks by owner")
	}

	return walks, nil
}

// UpdateWalkDetails mutates duration, distance and notes without touching the status
func (s *walkService) UpdateWalkDetails(ctx context.Context, walkID int64, input *usecase.UpdateWalkDetailsInput) (*entity.Walk, error) {
	if input.Duration != nil && *input.Duration < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("duration must not be negative")
	}
	if input.Distance != nil && *input.Distance < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("distance must not be negative")
	}

	if _, err := s.findWalk(ctx, walkID); err != nil {
		return nil, err
	}

	update := repository.DetailsUpdate{
		Duration:    input.Duration,
		Distance:    input.Distance,
		WalkerNotes: input.WalkerNotes,
		AdminNotes:  input.AdminNotes,
	}

	if err := s.walkRepo.UpdateWalkDetails(ctx, walkID, update); err != nil {
		return nil, domainerrors.ErrWalkUpdateFailed.WrapMessage(err.Error())
	}

	return s.findWalk(ctx, walkID)
}

// DeleteWalk removes a walk entirely
func (s *walkService) DeleteWalk(ctx context.Context, walkID int64) error {
	if err := s.walkRepo.DeleteWalk(ctx, walkID); err != nil {
		if errors.Is(err, repository.ErrWalkNotFound) {
			return domainerrors.ErrWalkNotFound
		}

		return errors.Wrap(err, "failed to delete walk")
	}

	return nil
}

func (s *walkService) findWalk(ctx context.Context, walkID int64) (*entity.Walk, error) {
	walk, err := s.walkRepo.FindWalkByID(ctx, walkID)
	if err != nil {
		if errors.Is(err, repository.ErrWalkNotFound) {
			return nil, domainerrors.ErrWalkNotFound
		}

		return nil, errors.Wrap(err, "failed to find walk by ID")
	}

	return walk, nil
}

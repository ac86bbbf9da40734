package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	deliverycontext "paseo/internal/delivery/context"
	"paseo/internal/delivery/http/response"
	"paseo/internal/domain/entity"
	domainerrors "paseo/internal/domain/errors"
	"paseo/internal/domain/service"
	"paseo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// WalkHandlerParams holds dependencies for WalkHandler, injected by Fx.
type WalkHandlerParams struct {
	fx.In

	WalkUC    usecase.WalkUsecase
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// WalkHandler holds dependencies for walk lifecycle handlers
type WalkHandler struct {
	walkUC    usecase.WalkUsecase
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewWalkHandler is the constructor for WalkHandler
func NewWalkHandler(params WalkHandlerParams) *WalkHandler {
	return &WalkHandler{
		walkUC:    params.WalkUC,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

// CreateWalkRequest represents the request body for requesting a walk
type CreateWalkRequest struct {
	WalkerID       int64     `json:"walkerId" validate:"required,gt=0"`
	OwnerID        int64     `json:"ownerId" validate:"required,gt=0"`
	PetIDs         []int64   `json:"petIds" validate:"required,min=1,dive,gt=0"`
	ScheduledStart time.Time `json:"scheduledDateTime" validate:"required"`
	StartAddress   string    `json:"startAddress"`
	TotalPrice     float64   `json:"totalPrice" validate:"required,gt=0"`
}

// UpdateWalkRequest represents the request body for updating walk details
type UpdateWalkRequest struct {
	Duration    *int     `json:"duration,omitempty" validate:"omitempty,min=0"`
	Distance    *float64 `json:"distance,omitempty" validate:"omitempty,min=0"`
	WalkerNotes *string  `json:"notes,omitempty"`
	AdminNotes  *string  `json:"adminNotes,omitempty"`
}

// TransitionRequest represents the request body for the generic status change
type TransitionRequest struct {
	Status string `json:"status" validate:"required"`
}

// CreateWalk handles creating a new walk request
func (h *WalkHandler) CreateWalk(c echo.Context) error {
	var req CreateWalkRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid walk input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.RequestWalkInput{
		WalkerID:       req.WalkerID,
		OwnerID:        req.OwnerID,
		PetIDs:         req.PetIDs,
		ScheduledStart: req.ScheduledStart,
		StartAddress:   req.StartAddress,
		TotalPrice:     req.TotalPrice,
	}

	walk, err := h.walkUC.RequestWalk(c.Request().Context(), input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, walk, "Walk requested successfully")
}

// GetWalk handles retrieving a single walk
func (h *WalkHandler) GetWalk(c echo.Context) error {
	walkID, err := h.walkID(c)
	if err != nil {
		return err
	}

	walk, err := h.walkUC.GetWalk(c.Request().Context(), walkID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, walk, "Walk retrieved successfully")
}

// ListWalks handles retrieving every walk
func (h *WalkHandler) ListWalks(c echo.Context) error {
	walks, err := h.walkUC.ListWalks(c.Request().Context())
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, walks, "Walks retrieved successfully")
}

// ListWalksByStatus handles retrieving walks filtered by a status path param
func (h *WalkHandler) ListWalksByStatus(c echo.Context) error {
	status, err := entity.ParseWalkStatus(c.Param("status"))
	if err != nil {
		return response.BadRequest(c, "INVALID_STATUS", "Unknown walk status: "+c.Param("status"))
	}

	return h.listByStatus(c, status)
}

// ListByFixedStatus returns a handler bound to one status, backing the
// /walks/active style shortcut routes.
func (h *WalkHandler) ListByFixedStatus(status entity.WalkStatus) echo.HandlerFunc {
	return func(c echo.Context) error {
		return h.listByStatus(c, status)
	}
}

func (h *WalkHandler) listByStatus(c echo.Context, status entity.WalkStatus) error {
	walks, err := h.walkUC.ListWalksByStatus(c.Request().Context(), status)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, walks, "Walks retrieved successfully")
}

// ListWalksByWalker handles retrieving the walks of one walker
func (h *WalkHandler) ListWalksByWalker(c echo.Context) error {
	walkerID, err := strconv.ParseInt(c.Param("walkerId"), 10, 64)
	if err != nil || walkerID <= 0 {
		return response.BadRequest(c, "INVALID_ID", "Invalid walker ID")
	}

	walks, err := h.walkUC.ListWalksByWalker(c.Request().Context(), walkerID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, walks, "Walks retrieved successfully")
}

// ListWalksByOwner handles retrieving the walks of one owner
func (h *WalkHandler) ListWalksByOwner(c echo.Context) error {
	ownerID, err := strconv.ParseInt(c.Param("ownerId"), 10, 64)
	if err != nil || ownerID <= 0 {
		return response.BadRequest(c, "INVALID_ID", "Invalid owner ID")
	}

	walks, err := h.walkUC.ListWalksByOwner(c.Request().Context(), ownerID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, walks, "Walks retrieved successfully")
}

// UpdateWalk handles updating the non-status walk fields
func (h *WalkHandler) UpdateWalk(c echo.Context) error {
	walkID, err := h.walkID(c)
	if err != nil {
		return err
	}

	var req UpdateWalkRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid walk input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateWalkDetailsInput{
		Duration:    req.Duration,
		Distance:    req.Distance,
		WalkerNotes: req.WalkerNotes,
		AdminNotes:  req.AdminNotes,
	}

	walk, err := h.walkUC.UpdateWalkDetails(c.Request().Context(), walkID, input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, walk, "Walk updated successfully")
}

// DeleteWalk handles removing a walk entirely
func (h *WalkHandler) DeleteWalk(c echo.Context) error {
	walkID, err := h.walkID(c)
	if err != nil {
		return err
	}

	if err := h.walkUC.DeleteWalk(c.Request().Context(), walkID); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Walk deleted successfully"}, "Walk deleted successfully")
}

// ChangeStatus handles the generic status transition endpoint
func (h *WalkHandler) ChangeStatus(c echo.Context) error {
	walkID, err := h.walkID(c)
	if err != nil {
		return err
	}

	var req TransitionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	target, err := entity.ParseWalkStatus(req.Status)
	if err != nil {
		return response.BadRequest(c, "INVALID_STATUS", "Unknown walk status: "+req.Status)
	}

	return h.transition(c, walkID, func(ctx echo.Context) (*entity.Walk, error) {
		return h.walkUC.Transition(ctx.Request().Context(), walkID, target)
	}, "Walk status updated successfully")
}

// AcceptWalk moves a requested walk to awaiting payment
func (h *WalkHandler) AcceptWalk(c echo.Context) error {
	return h.namedTransition(c, h.walkUC.AcceptRequest, "Walk accepted successfully")
}

// RejectWalk declines a requested walk
func (h *WalkHandler) RejectWalk(c echo.Context) error {
	return h.namedTransition(c, h.walkUC.RejectRequest, "Walk rejected")
}

// ConfirmPayment books a walk once payment clears
func (h *WalkHandler) ConfirmPayment(c echo.Context) error {
	return h.namedTransition(c, h.walkUC.ConfirmPayment, "Payment confirmed, walk scheduled")
}

// StartWalk begins a scheduled walk
func (h *WalkHandler) StartWalk(c echo.Context) error {
	return h.namedTransition(c, h.walkUC.StartWalk, "Walk started")
}

// FinishWalk completes an active walk
func (h *WalkHandler) FinishWalk(c echo.Context) error {
	return h.namedTransition(c, h.walkUC.FinishWalk, "Walk finished")
}

// CancelWalk cancels a walk that has not started yet
func (h *WalkHandler) CancelWalk(c echo.Context) error {
	return h.namedTransition(c, h.walkUC.CancelWalk, "Walk cancelled")
}

type transitionFunc func(ctx echo.Context) (*entity.Walk, error)

func (h *WalkHandler) namedTransition(c echo.Context, op func(ctx context.Context, walkID int64) (*entity.Walk, error), message string) error {
	walkID, err := h.walkID(c)
	if err != nil {
		return err
	}

	return h.transition(c, walkID, func(ctx echo.Context) (*entity.Walk, error) {
		return op(ctx.Request().Context(), walkID)
	}, message)
}

// transition runs one status change and publishes the resulting event. The
// previous status is read first so the event can carry both sides of the
// change; publishing is best effort and never fails the request.
func (h *WalkHandler) transition(c echo.Context, walkID int64, run transitionFunc, message string) error {
	before, err := h.walkUC.GetWalk(c.Request().Context(), walkID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	walk, err := run(c)
	if err != nil {
		return h.handleAppError(c, err)
	}

	h.publishStatusEvent(c, before.Status, walk)

	return response.Success(c, http.StatusOK, walk, message)
}

func (h *WalkHandler) publishStatusEvent(c echo.Context, from entity.WalkStatus, walk *entity.Walk) {
	ctx := c.Request().Context()
	event := &service.WalkStatusEvent{
		RequestID:  deliverycontext.GetRequestID(c),
		WalkID:     walk.ID,
		WalkerID:   walk.WalkerID,
		OwnerID:    walk.OwnerID,
		FromStatus: from.String(),
		ToStatus:   walk.Status.String(),
		OccurredAt: time.Now().UTC(),
	}

	if err := h.publisher.PublishWalkStatusEvent(ctx, event); err != nil {
		h.logger.WarnContext(ctx, "failed to publish walk status event",
			slog.Int64("walk_id", walk.ID),
			slog.String("to_status", walk.Status.String()),
			slog.Any("error", err),
		)
	}
}

// walkID extracts and validates the walk ID path param
func (h *WalkHandler) walkID(c echo.Context) (int64, error) {
	walkID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || walkID <= 0 {
		return 0, response.BadRequest(c, "INVALID_ID", "Invalid walk ID")
	}

	return walkID, nil
}

// handleAppError handles application errors
func (h *WalkHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

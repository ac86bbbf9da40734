package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"paseo/internal/delivery/http/response"
	domainerrors "paseo/internal/domain/errors"
	"paseo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// TrackingHandlerParams holds dependencies for TrackingHandler, injected by Fx.
type TrackingHandlerParams struct {
	fx.In

	TrackingUC usecase.TrackingUsecase
	Logger     *slog.Logger
}

// TrackingHandler holds dependencies for GPS tracking handlers
type TrackingHandler struct {
	trackingUC usecase.TrackingUsecase
	logger     *slog.Logger
}

// NewTrackingHandler is the constructor for TrackingHandler
func NewTrackingHandler(params TrackingHandlerParams) *TrackingHandler {
	return &TrackingHandler{
		trackingUC: params.TrackingUC,
		logger:     params.Logger,
	}
}

// ReportPositionRequest represents one GPS sample reported by a walker
type ReportPositionRequest struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
	Altitude  float64 `json:"altitude"`
}

// ReportPosition handles a walker reporting their current position. The
// walker identity comes from the access token, never from the body.
func (h *TrackingHandler) ReportPosition(c echo.Context) error {
	walkerID, err := h.callerID(c)
	if err != nil {
		return err
	}

	var req ReportPositionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid position input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.ReportPositionInput{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Altitude:  req.Altitude,
	}

	result, err := h.trackingUC.ReportPosition(c.Request().Context(), walkerID, input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Position recorded")
}

// GetRoute handles retrieving the recorded route of a walk
func (h *TrackingHandler) GetRoute(c echo.Context) error {
	walkID, err := h.walkID(c)
	if err != nil {
		return err
	}

	route, err := h.trackingUC.GetRoute(c.Request().Context(), walkID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, route, "Route retrieved successfully")
}

// CheckAvailability handles probing whether a walk has tracking data
func (h *TrackingHandler) CheckAvailability(c echo.Context) error {
	walkID, err := h.walkID(c)
	if err != nil {
		return err
	}

	availability, err := h.trackingUC.CheckMapAvailability(c.Request().Context(), walkID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, availability, "Map availability retrieved successfully")
}

// callerID extracts the authenticated user ID from the context
func (h *TrackingHandler) callerID(c echo.Context) (int64, error) {
	userIDVal := c.Get("userID")
	userID, ok := userIDVal.(int64)
	if !ok || userID <= 0 {
		return 0, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, nil
}

// walkID extracts and validates the walk ID path param
func (h *TrackingHandler) walkID(c echo.Context) (int64, error) {
	walkID, err := strconv.ParseInt(c.Param("walkId"), 10, 64)
	if err != nil || walkID <= 0 {
		return 0, response.BadRequest(c, "INVALID_ID", "Invalid walk ID")
	}

	return walkID, nil
}

// handleAppError handles application errors
func (h *TrackingHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}

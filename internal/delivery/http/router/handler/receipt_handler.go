package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"paseo/internal/delivery/http/response"
	"paseo/internal/domain/entity"
	domainerrors "paseo/internal/domain/errors"
	"paseo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ReceiptHandlerParams holds dependencies for ReceiptHandler, injected by Fx.
type ReceiptHandlerParams struct {
	fx.In

	ReceiptUC usecase.ReceiptUsecase
	Logger    *slog.Logger
}

// ReceiptHandler holds dependencies for receipt handlers
type ReceiptHandler struct {
	receiptUC usecase.ReceiptUsecase
	logger    *slog.Logger
}

// NewReceiptHandler is the constructor for ReceiptHandler
func NewReceiptHandler(params ReceiptHandlerParams) *ReceiptHandler {
	return &ReceiptHandler{
		receiptUC: params.ReceiptUC,
		logger:    params.Logger,
	}
}

// GetWalkReceipt handles retrieving the receipt of one walk
func (h *ReceiptHandler) GetWalkReceipt(c echo.Context) error {
	walkID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || walkID <= 0 {
		return response.BadRequest(c, "INVALID_ID", "Invalid walk ID")
	}

	receipt, err := h.receiptUC.GetReceiptByWalk(c.Request().Context(), walkID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, receipt, "Receipt retrieved successfully")
}

// ListUserReceipts handles retrieving the receipt summaries of a user in one
// marketplace role
func (h *ReceiptHandler) ListUserReceipts(c echo.Context) error {
	userType := entity.UserType(c.Param("userType"))
	if !userType.IsValid() {
		return response.BadRequest(c, "INVALID_USER_TYPE", "User type must be 'owner' or 'walker'")
	}

	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil || userID <= 0 {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	receipts, err := h.receiptUC.ListReceiptsByUser(c.Request().Context(), userID, userType)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, receipts, "Receipts retrieved successfully")
}

// handleAppError handles application errors
func (h *ReceiptHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}

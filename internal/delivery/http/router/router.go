// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"paseo/internal/delivery/http/middleware"
	"paseo/internal/delivery/http/router/handler"
	"paseo/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	WalkHandler     *handler.WalkHandler
	TrackingHandler *handler.TrackingHandler
	ReceiptHandler  *handler.ReceiptHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	walkHandler     *handler.WalkHandler
	trackingHandler *handler.TrackingHandler
	receiptHandler  *handler.ReceiptHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		walkHandler:     params.WalkHandler,
		trackingHandler: params.TrackingHandler,
		receiptHandler:  params.ReceiptHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Walk lifecycle routes
	walkGroup := e.Group("/walks")
	walkGroup.Use(r.authMiddleware.Authenticate)
	{
		walkGroup.POST("", r.walkHandler.CreateWalk)
		walkGroup.GET("", r.walkHandler.ListWalks)

		// Status shortcut routes; registered before /:id so the static
		// segments win.
		walkGroup.GET("/requested", r.walkHandler.ListByFixedStatus(entity.StatusRequested))
		walkGroup.GET("/awaiting-payment", r.walkHandler.ListByFixedStatus(entity.StatusAwaitingPayment))
		walkGroup.GET("/scheduled", r.walkHandler.ListByFixedStatus(entity.StatusScheduled))
		walkGroup.GET("/active", r.walkHandler.ListByFixedStatus(entity.StatusActive))
		walkGroup.GET("/status/:status", r.walkHandler.ListWalksByStatus)
		walkGroup.GET("/walker/:walkerId", r.walkHandler.ListWalksByWalker)
		walkGroup.GET("/owner/:ownerId", r.walkHandler.ListWalksByOwner)
		walkGroup.GET("/receipts/:userType/:userId", r.receiptHandler.ListUserReceipts)

		walkGroup.GET("/:id", r.walkHandler.GetWalk)
		walkGroup.PUT("/:id", r.walkHandler.UpdateWalk)
		walkGroup.DELETE("/:id", r.walkHandler.DeleteWalk)
		walkGroup.GET("/:id/receipt", r.receiptHandler.GetWalkReceipt)

		walkGroup.PATCH("/:id/status", r.walkHandler.ChangeStatus)
		walkGroup.PATCH("/:id/accept", r.walkHandler.AcceptWalk)
		walkGroup.PATCH("/:id/reject", r.walkHandler.RejectWalk)
		walkGroup.PATCH("/:id/confirm-payment", r.walkHandler.ConfirmPayment)
		walkGroup.PATCH("/:id/start", r.walkHandler.StartWalk)
		walkGroup.PATCH("/:id/finish", r.walkHandler.FinishWalk)
		walkGroup.PATCH("/:id/cancel", r.walkHandler.CancelWalk)
	}

	// GPS tracking routes
	trackingGroup := e.Group("/tracking")
	trackingGroup.Use(r.authMiddleware.Authenticate)
	{
		trackingGroup.POST("/location", r.trackingHandler.ReportPosition)
		trackingGroup.GET("/walks/:walkId/route", r.trackingHandler.GetRoute)
		trackingGroup.GET("/walks/:walkId/availability", r.trackingHandler.CheckAvailability)
	}
}

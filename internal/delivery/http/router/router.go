// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"clinica/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	AppointmentHandler *handler.AppointmentHandler
	OpsHandler         *handler.OpsHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler        *handler.AuthHandler
	appointmentHandler *handler.AppointmentHandler
	opsHandler         *handler.OpsHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:        params.AuthHandler,
		appointmentHandler: params.AppointmentHandler,
		opsHandler:         params.OpsHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Token link routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/activation/request", r.authHandler.RequestActivation)
		authGroup.POST("/activation/confirm", r.authHandler.ConfirmActivation)
		authGroup.POST("/password-reset/request", r.authHandler.RequestPasswordReset)
		authGroup.POST("/password-reset/confirm", r.authHandler.ConfirmPasswordReset)
		authGroup.POST("/deep-link/consume", r.authHandler.ConsumeDeepLink)
	}

	// Appointment routes
	appointmentGroup := e.Group("/appointments")
	{
		appointmentGroup.POST("/:id/confirm", r.appointmentHandler.Confirm)
	}

	// Operational routes
	opsGroup := e.Group("/ops")
	{
		opsGroup.GET("/auto-cancel/pending", r.opsHandler.PendingCancellations)
		opsGroup.POST("/auto-cancel/run", r.opsHandler.RunAutoCancel)
	}
}

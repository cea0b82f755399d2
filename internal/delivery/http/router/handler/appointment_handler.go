package handler

import (
	"log/slog"
	"net/http"

	"clinica/internal/delivery/http/response"
	"clinica/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AppointmentHandler holds dependencies for the appointment endpoints.
type AppointmentHandler struct {
	appointments usecase.AppointmentUsecase
	logger       *slog.Logger
}

// NewAppointmentHandler is the constructor for AppointmentHandler, injected by Fx.
func NewAppointmentHandler(appointments usecase.AppointmentUsecase, logger *slog.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		appointments: appointments,
		logger:       logger,
	}
}

// Confirm handles the appointment confirmation request.
func (h *AppointmentHandler) Confirm(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid appointment ID")
	}

	if err := h.appointments.Confirm(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cita confirmada")
}

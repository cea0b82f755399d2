package handler

import (
	"log/slog"
	"net/http"

	"clinica/internal/delivery/http/response"
	"clinica/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OpsHandler exposes the operational surface of the auto-cancel sweep.
type OpsHandler struct {
	autoCancel usecase.AutoCancelUsecase
	logger     *slog.Logger
}

// NewOpsHandler is the constructor for OpsHandler, injected by Fx.
func NewOpsHandler(autoCancel usecase.AutoCancelUsecase, logger *slog.Logger) *OpsHandler {
	return &OpsHandler{
		autoCancel: autoCancel,
		logger:     logger,
	}
}

// PendingCancellations reports how many appointments the next sweep would cancel.
func (h *OpsHandler) PendingCancellations(c echo.Context) error {
	pending, err := h.autoCancel.CountPending(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"pending": pending}, "")
}

// RunAutoCancel triggers one sweep outside the schedule. Safe to re-run: the
// conditional updates make a repeated sweep a no-op.
func (h *OpsHandler) RunAutoCancel(c echo.Context) error {
	summary, err := h.autoCancel.Run(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "Sweep completed")
}

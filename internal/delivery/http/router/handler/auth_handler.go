// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"clinica/internal/delivery/http/response"
	"clinica/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the token link endpoints.
type AuthHandler struct {
	tokens usecase.TokenUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(tokens usecase.TokenUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		tokens: tokens,
		logger: logger,
	}
}

type requestLinkInput struct {
	Email string `json:"email" validate:"required,email"`
}

type consumeTokenInput struct {
	Token string `json:"token" validate:"required"`
}

type resetPasswordInput struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// RequestActivation handles the activation link request.
// The response is identical whether or not the email has an account.
func (h *AuthHandler) RequestActivation(c echo.Context) error {
	var input requestLinkInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid activation request")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.tokens.RequestActivation(c.Request().Context(), input.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusAccepted, nil, "Si la cuenta existe, se envió un enlace de activación")
}

// ConfirmActivation handles the activation link consumption.
func (h *AuthHandler) ConfirmActivation(c echo.Context) error {
	var input consumeTokenInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid activation confirmation")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.tokens.ConsumeActivation(c.Request().Context(), input.Token); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cuenta activada")
}

// RequestPasswordReset handles the reset link request.
func (h *AuthHandler) RequestPasswordReset(c echo.Context) error {
	var input requestLinkInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password reset request")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.tokens.RequestPasswordReset(c.Request().Context(), input.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusAccepted, nil, "Si la cuenta existe, se envió un enlace de restablecimiento")
}

// ConfirmPasswordReset handles the reset link consumption.
func (h *AuthHandler) ConfirmPasswordReset(c echo.Context) error {
	var input resetPasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password reset confirmation")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.tokens.ConsumePasswordReset(c.Request().Context(), input.Token, input.NewPassword); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Contraseña actualizada")
}

type deepLinkOutput struct {
	AppointmentID string `json:"appointment_id"`
	Context       string `json:"context"`
	SessionToken  string `json:"session_token"`
}

// ConsumeDeepLink handles the deep-link consumption, returning the
// appointment reference and a short-lived session credential.
func (h *AuthHandler) ConsumeDeepLink(c echo.Context) error {
	var input consumeTokenInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid deep link")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	payload, session, err := h.tokens.ConsumeDeepLink(c.Request().Context(), input.Token)
	if err != nil {
		return errors.WithStack(err)
	}

	output := deepLinkOutput{
		AppointmentID: payload.AppointmentID.String(),
		Context:       payload.Context,
		SessionToken:  session,
	}

	return response.Success(c, http.StatusOK, output, "Enlace consumido")
}

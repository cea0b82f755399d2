package usecase

import (
	"context"

	"github.com/google/uuid"
)

// AppointmentUsecase covers the request-driven side of the appointment state
// machine. Booking CRUD is out of scope; only the confirmation transition that
// races against the auto-cancel sweep lives here.
type AppointmentUsecase interface {
	// Confirm moves the appointment to CONFIRMADO, conditional on it still
	// awaiting confirmation. A lost race with the auto-cancel sweep surfaces as
	// ErrInvalidAppointmentState.
	Confirm(ctx context.Context, id uuid.UUID) error
}

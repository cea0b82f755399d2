package repository

import (
	"context"
	"time"

	"clinica/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrAppointmentNotFound is returned when an appointment does not exist.
var ErrAppointmentNotFound = errors.New("appointment not found")

// AppointmentRepository defines the persistence operations the schedulers and the
// confirmation flow need. Booking CRUD lives elsewhere and is out of scope here.
type AppointmentRepository interface {
	// FindByID retrieves a single appointment.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)

	// FindByStateAndWindow returns appointments in any of the given states whose
	// scheduled instant falls in (from, to]. Ordered by scheduled time ascending.
	FindByStateAndWindow(ctx context.Context, states []entity.AppointmentState, from, to time.Time) ([]*entity.Appointment, error)

	// CountByStateAndWindow is the count-only form of FindByStateAndWindow.
	// Never mutates; used for operational visibility.
	CountByStateAndWindow(ctx context.Context, states []entity.AppointmentState, from, to time.Time) (int, error)

	// ConditionalUpdateState moves the appointment to next only if its current
	// state is one of expected ("UPDATE ... WHERE id = ? AND state IN (...)").
	// Returns true iff a row was affected. A false return is the benign loser
	// of a race, not an error; the caller decides whether that matters.
	ConditionalUpdateState(ctx context.Context, id uuid.UUID, expected []entity.AppointmentState, next entity.AppointmentState) (bool, error)

	// MarkReminded stamps reminded_at, conditional on it being unset. Returns
	// true iff this sweep won the stamp. This is the one mutation the reminder
	// dispatcher performs, and only under the remind-once policy.
	MarkReminded(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
}

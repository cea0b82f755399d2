// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentState enumerates the lifecycle states of an appointment.
// State names follow the clinic's operational vocabulary.
type AppointmentState string

const (
	StateProgramado AppointmentState = "PROGRAMADO" // scheduled, awaiting confirmation
	StateConfirmado AppointmentState = "CONFIRMADO" // explicitly confirmed by the patient
	StateReagendado AppointmentState = "REAGENDADO" // rescheduled, awaiting confirmation again
	StateCancelado  AppointmentState = "CANCELADO"  // cancelled (terminal)
	StateCompleto   AppointmentState = "COMPLETO"   // attended (terminal)
	StateAusente    AppointmentState = "AUSENTE"    // no-show (terminal)
)

// IsTerminal reports whether the state admits no further transitions.
// No scheduler may move an appointment out of a terminal state.
func (s AppointmentState) IsTerminal() bool {
	switch s {
	case StateCancelado, StateCompleto, StateAusente:
		return true
	}

	return false
}

// Appointment represents a booked slot with a physician.
type Appointment struct {
	ID          uuid.UUID        `json:"id"`
	PatientID   uuid.UUID        `json:"patient_id"`
	ScheduledAt time.Time        `json:"scheduled_at"` // Date and start time of the slot.
	Specialty   string           `json:"specialty"`
	Physician   string           `json:"physician"`
	Room        string           `json:"room,omitempty"` // Empty until a room is assigned.
	State       AppointmentState `json:"state"`
	RemindedAt  *time.Time       `json:"reminded_at,omitempty"` // Set by the reminder sweep under the "once" policy.
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// ConfirmationDeadline returns the instant after which an unconfirmed appointment
// becomes eligible for automatic cancellation. It is derived, never stored.
func (a *Appointment) ConfirmationDeadline(leadHours int) time.Time {
	return a.ScheduledAt.Add(-time.Duration(leadHours) * time.Hour)
}

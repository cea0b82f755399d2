package repository

import (
	"context"

	"clinica/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrPatientNotFound is returned when a patient does not exist.
var ErrPatientNotFound = errors.New("patient not found")

// PatientRepository exposes the patient operations the token flows need.
type PatientRepository interface {
	// FindByID retrieves a patient by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error)

	// FindByEmail retrieves a patient by email address.
	// Returns ErrPatientNotFound for unknown addresses; the request flows
	// translate that into a success-shaped no-op to avoid account enumeration.
	FindByEmail(ctx context.Context, email string) (*entity.Patient, error)

	// Activate flips the patient to active, conditional on being inactive.
	// Returns true iff a row was affected.
	Activate(ctx context.Context, id uuid.UUID) (bool, error)

	// UpdatePasswordHash replaces the stored password hash.
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error
}

// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient is the owner of security tokens and the subject of appointments.
// Only the fields the automation core touches are modeled here.
type Patient struct {
	ID           uuid.UUID // The unique ID for the patient record.
	Email        string    // Contact address; activation and reset links are sent here.
	FullName     string
	PasswordHash string // bcrypt hash, set through the password reset flow.
	Active       bool   // Flips true when an activation token is consumed.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

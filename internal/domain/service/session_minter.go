package service

import "github.com/google/uuid"

// SessionMinter creates a short-lived signed session credential when a deep-link
// token is consumed, so the patient lands authenticated on the confirmation page.
// Minting is pure computation; nothing is persisted.
type SessionMinter interface {
	Mint(patientID, appointmentID uuid.UUID) (string, error)
}

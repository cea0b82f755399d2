// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Audit actions recorded by the automation core.
const (
	AuditActionAutoCancel   = "auto_cancel"
	AuditActionConfirm      = "confirm"
	AuditActionTokenConsume = "token_consume"
)

// Audit entity types.
const (
	AuditEntityAppointment   = "appointment"
	AuditEntitySecurityToken = "security_token"
)

// AuditRecord is one append-only entry describing a state mutation.
// It is written synchronously, inside the same transaction as the mutation it describes.
type AuditRecord struct {
	ID         uuid.UUID
	EntityType string
	EntityID   uuid.UUID
	Action     string
	Actor      string // "scheduler", "patient", or another principal.
	Before     string
	After      string
	Reason     string
	RecordedAt time.Time
}

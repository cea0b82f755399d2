// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// TokenPurpose classifies what a security token grants access to.
type TokenPurpose string

const (
	// TokenPurposeActivation marks tokens sent with account activation links.
	TokenPurposeActivation TokenPurpose = "activation"
	// TokenPurposePasswordReset marks tokens sent with password reset links.
	TokenPurposePasswordReset TokenPurpose = "password_reset"
	// TokenPurposeDeepLink marks tokens embedded in appointment deep links.
	TokenPurposeDeepLink TokenPurpose = "deep_link"
)

// SecurityToken represents a single-use, expiring credential delivered out of band
// (an email link). The same record shape backs all three purposes; behavior differences
// live in the per-purpose policy of the token lifecycle service.
type SecurityToken struct {
	ID        uuid.UUID    // The unique ID for this token record.
	Value     string       // Opaque random value embedded in the link; unique and unguessable.
	Purpose   TokenPurpose // What consuming this token does.
	OwnerID   uuid.UUID    // The patient this token grants access for.
	Payload   string       // Purpose-specific JSON context (empty for activation/reset).
	IssuedAt  time.Time    // When the token was created.
	ExpiresAt time.Time    // IssuedAt plus the purpose TTL.
	Used      bool         // Flips false->true exactly once, at consumption.
	UsedAt    *time.Time   // When the token was consumed, nil while unused.
}

// ValidAt reports whether the token can still be consumed at the given instant.
// Validity is always evaluated at the moment of use, never cached.
func (t *SecurityToken) ValidAt(now time.Time) bool {
	return !t.Used && now.Before(t.ExpiresAt)
}

// DeepLinkPayload is the purpose-specific context carried by deep-link tokens.
type DeepLinkPayload struct {
	AppointmentID uuid.UUID `json:"appointment_id"`
	Context       string    `json:"context"` // e.g. "confirmation"
}

// Encode serializes the payload for storage on a SecurityToken.
func (p DeepLinkPayload) Encode() (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode deep link payload")
	}

	return string(data), nil
}

// DecodeDeepLinkPayload parses the payload stored on a deep-link token.
func DecodeDeepLinkPayload(raw string) (*DeepLinkPayload, error) {
	var payload DeepLinkPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, errors.Wrap(err, "failed to decode deep link payload")
	}

	return &payload, nil
}

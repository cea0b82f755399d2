// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"clinica/config"
	"clinica/internal/domain/service"
)

// jwtSessionMinter mints the short-lived session credential handed out when a
// deep-link token is consumed.
type jwtSessionMinter struct {
	secret []byte
	ttl    time.Duration
	clock  service.Clock
}

// NewSessionMinter is the constructor for jwtSessionMinter.
func NewSessionMinter(cfg *config.Config, clock service.Clock) (service.SessionMinter, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session secret must be provided")
	}

	return &jwtSessionMinter{
		secret: []byte(cfg.SecretKey.Session),
		ttl:    cfg.Auth.SessionTTL,
		clock:  clock,
	}, nil
}

// Mint signs a session token scoped to one patient and one appointment.
func (m *jwtSessionMinter) Mint(patientID, appointmentID uuid.UUID) (string, error) {
	now := m.clock.Now()
	claims := jwt.MapClaims{
		"sub":  patientID.String(),
		"appt": appointmentID.String(),
		"iat":  now.Unix(),
		"exp":  now.Add(m.ttl).Unix(),
		"type": "deep_link_session",
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"clinica/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrTokenNotFound is returned when no token exists for a given value.
var ErrTokenNotFound = errors.New("security token not found")

// TokenRepository is the durable store for security tokens. The token lifecycle
// service is its only consumer; no other component reads or writes tokens.
type TokenRepository interface {
	// Save persists a newly issued token.
	Save(ctx context.Context, token *entity.SecurityToken) error

	// FindByValue retrieves a token by its opaque value.
	// Returns ErrTokenNotFound when no such token exists; expiry and usage are
	// NOT evaluated here, validity belongs to the caller.
	FindByValue(ctx context.Context, value string) (*entity.SecurityToken, error)

	// CountValid counts the owner's unused, unexpired tokens of a purpose at the
	// given instant. Backs the per-owner issuance quota.
	CountValid(ctx context.Context, ownerID uuid.UUID, purpose entity.TokenPurpose, now time.Time) (int, error)

	// ConsumeByValue atomically marks the token used, conditional on it being
	// unused ("UPDATE ... SET used = true WHERE value = ? AND used = false").
	// Returns true iff this caller won the flip. Two racing consumers observe
	// exactly one true; there is no read-then-write window.
	ConsumeByValue(ctx context.Context, value string, usedAt time.Time) (bool, error)

	// InvalidateAll marks every unused token of the owner and purpose as used at
	// usedAt, except the given token ID. One successful reset closes every other
	// in-flight reset attempt.
	InvalidateAll(ctx context.Context, ownerID uuid.UUID, purpose entity.TokenPurpose, exceptID uuid.UUID, usedAt time.Time) (int64, error)

	// DeleteExpiredBefore hard-deletes tokens whose expiry predates expiredCutoff
	// and used tokens consumed before usedCutoff. Returns the number of rows removed.
	DeleteExpiredBefore(ctx context.Context, expiredCutoff, usedCutoff time.Time) (int64, error)
}

// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"clinica/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenUsecase defines the single-use token lifecycle operations.
// All three purposes (activation, password reset, deep link) share the same
// issue/validate/consume shape; the per-purpose side effect happens inside the
// consume transaction.
type TokenUsecase interface {
	// RequestActivation issues and dispatches an activation link for the account
	// registered under email. Unknown or already-active accounts are a silent
	// no-op so the endpoint cannot be used to probe which emails exist.
	RequestActivation(ctx context.Context, email string) error

	// RequestPasswordReset issues and dispatches a password reset link.
	// Unknown accounts are a silent no-op, same as RequestActivation.
	RequestPasswordReset(ctx context.Context, email string) error

	// Issue creates and persists a token for the owner under the purpose's
	// policy (TTL, per-owner quota). Payload carries purpose-specific context.
	Issue(ctx context.Context, ownerID uuid.UUID, purpose entity.TokenPurpose, payload string) (*entity.SecurityToken, error)

	// Validate reports whether the value identifies a currently consumable token.
	// Pure predicate: no mutation, and every failure reason collapses to false.
	Validate(ctx context.Context, value string) bool

	// ConsumeActivation consumes an activation token and activates its owner.
	ConsumeActivation(ctx context.Context, value string) error

	// ConsumePasswordReset consumes a reset token and replaces the owner's password.
	ConsumePasswordReset(ctx context.Context, value, newPassword string) error

	// ConsumeDeepLink consumes a deep-link token and returns its payload plus a
	// short-lived session credential for the owner.
	ConsumeDeepLink(ctx context.Context, value string) (*entity.DeepLinkPayload, string, error)

	// Purge hard-deletes expired tokens and used tokens past the retention
	// window, returning the number of rows removed.
	Purge(ctx context.Context) (int64, error)
}

// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"clinica/config"
	deliverycontext "clinica/internal/delivery/context"
	"clinica/internal/domain/entity"
	domainerrors "clinica/internal/domain/errors"
	"clinica/internal/domain/repository"
	"clinica/internal/domain/service"
	"clinica/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// tokenPolicy is the per-purpose issuance policy. A zero MaxActive means the
// purpose is uncapped.
type tokenPolicy struct {
	ttl       time.Duration
	maxActive int
}

// tokenService implements the TokenUsecase interface.
type tokenService struct {
	txManager repository.TransactionManager
	notifier  service.Notifier
	hasher    service.PasswordHasher
	generator service.TokenGenerator
	minter    service.SessionMinter
	clock     service.Clock
	policies  map[entity.TokenPurpose]tokenPolicy
	retention time.Duration
	logger    *slog.Logger
}

// NewTokenService is the constructor for tokenService.
func NewTokenService(
	cfg *config.Config,
	txManager repository.TransactionManager,
	notifier service.Notifier,
	hasher service.PasswordHasher,
	generator service.TokenGenerator,
	minter service.SessionMinter,
	clock service.Clock,
	logger *slog.Logger,
) usecase.TokenUsecase {
	return &tokenService{
		txManager: txManager,
		notifier:  notifier,
		hasher:    hasher,
		generator: generator,
		minter:    minter,
		clock:     clock,
		policies: map[entity.TokenPurpose]tokenPolicy{
			entity.TokenPurposeActivation: {
				ttl:       cfg.Tokens.ActivationTTL,
				maxActive: cfg.Tokens.MaxActivePerOwner,
			},
			entity.TokenPurposePasswordReset: {
				ttl:       cfg.Tokens.PasswordResetTTL,
				maxActive: cfg.Tokens.MaxActivePerOwner,
			},
			// Deep links are minted by the reminder sweep, one per upcoming
			// appointment; capping them would silence reminders.
			entity.TokenPurposeDeepLink: {
				ttl: cfg.Tokens.DeepLinkTTL,
			},
		},
		retention: cfg.Tokens.UsedRetention,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *tokenService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RequestActivation issues and dispatches an activation link.
// Unknown and already-active accounts return nil without issuing anything, so
// the response shape never reveals whether the email has an account.
func (srv *tokenService) RequestActivation(ctx context.Context, email string) error {
	var (
		token   *entity.SecurityToken
		patient *entity.Patient
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.PatientRepo().FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrPatientNotFound) {
				srv.log(ctx).Info("Activation requested for unknown email")

				return nil
			}

			return errors.Wrap(err, "failed to find patient by email")
		}

		if found.Active {
			srv.log(ctx).Info("Activation requested for active account", slog.Any("patient_id", found.ID))

			return nil
		}

		token, err = srv.issueInTx(ctx, repoFactory, found.ID, entity.TokenPurposeActivation, "")
		if err != nil {
			// A capped account answers exactly like an unknown one; the earlier
			// links are still live, so nothing is lost by not issuing another.
			if errors.Is(err, domainerrors.ErrTokenQuotaExceeded) {
				srv.log(ctx).Info("Activation quota reached, request absorbed", slog.Any("patient_id", found.ID))
				token = nil

				return nil
			}

			return err
		}
		patient = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to request activation", slog.Any("error", err))

		return errors.Wrap(err, "failed to request activation")
	}

	if token == nil {
		return nil
	}

	srv.dispatch(ctx, service.NotificationActivationLink, patient.Email, map[string]string{
		"token":      token.Value,
		"expires_at": token.ExpiresAt.Format(time.RFC3339),
	})
	srv.log(ctx).Info("Activation link issued", slog.Any("patient_id", patient.ID), slog.Any("token_id", token.ID))

	return nil
}

// RequestPasswordReset issues and dispatches a password reset link.
func (srv *tokenService) RequestPasswordReset(ctx context.Context, email string) error {
	var (
		token   *entity.SecurityToken
		patient *entity.Patient
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.PatientRepo().FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrPatientNotFound) {
				srv.log(ctx).Info("Password reset requested for unknown email")

				return nil
			}

			return errors.Wrap(err, "failed to find patient by email")
		}

		token, err = srv.issueInTx(ctx, repoFactory, found.ID, entity.TokenPurposePasswordReset, "")
		if err != nil {
			return err
		}
		patient = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to request password reset", slog.Any("error", err))

		return errors.Wrap(err, "failed to request password reset")
	}

	if token == nil {
		return nil
	}

	srv.dispatch(ctx, service.NotificationResetLink, patient.Email, map[string]string{
		"token":      token.Value,
		"expires_at": token.ExpiresAt.Format(time.RFC3339),
	})
	srv.log(ctx).Info("Password reset link issued", slog.Any("patient_id", patient.ID), slog.Any("token_id", token.ID))

	return nil
}

// Issue creates and persists a token under the purpose's policy.
func (srv *tokenService) Issue(ctx context.Context, ownerID uuid.UUID, purpose entity.TokenPurpose, payload string) (*entity.SecurityToken, error) {
	var token *entity.SecurityToken

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		issued, err := srv.issueInTx(ctx, repoFactory, ownerID, purpose, payload)
		if err != nil {
			return err
		}
		token = issued

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to issue token",
			slog.Any("error", err), slog.Any("owner_id", ownerID), slog.String("purpose", string(purpose)))

		return nil, err
	}

	return token, nil
}

// issueInTx runs the quota check and the insert on the caller's transaction.
func (srv *tokenService) issueInTx(ctx context.Context, repoFactory repository.RepositoryFactory, ownerID uuid.UUID, purpose entity.TokenPurpose, payload string) (*entity.SecurityToken, error) {
	policy, ok := srv.policies[purpose]
	if !ok {
		return nil, errors.Errorf("unknown token purpose: %s", purpose)
	}

	tokenRepo := repoFactory.TokenRepo()
	now := srv.clock.Now()

	if policy.maxActive > 0 {
		active, err := tokenRepo.CountValid(ctx, ownerID, purpose, now)
		if err != nil {
			return nil, errors.Wrap(err, "failed to count valid tokens")
		}
		if active >= policy.maxActive {
			return nil, errors.Wrap(domainerrors.ErrTokenQuotaExceeded, "active token quota reached")
		}
	}

	value, err := srv.generator.Generate()
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	token := &entity.SecurityToken{
		Value:     value,
		Purpose:   purpose,
		OwnerID:   ownerID,
		Payload:   payload,
		IssuedAt:  now,
		ExpiresAt: now.Add(policy.ttl),
	}
	if err := tokenRepo.Save(ctx, token); err != nil {
		return nil, errors.Wrap(err, "failed to save token")
	}

	return token, nil
}

// Validate reports whether the value identifies a currently consumable token.
// Every failure reason (unknown, expired, used, storage error) collapses to
// false; the sub-reason is only logged.
func (srv *tokenService) Validate(ctx context.Context, value string) bool {
	valid := false

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		token, err := repoFactory.TokenRepo().FindByValue(ctx, value)
		if err != nil {
			if errors.Is(err, repository.ErrTokenNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to find token")
		}

		valid = token.ValidAt(srv.clock.Now())

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Token validation failed", slog.Any("error", err))

		return false
	}

	return valid
}

// ConsumeActivation consumes an activation token and activates its owner.
func (srv *tokenService) ConsumeActivation(ctx context.Context, value string) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		token, err := srv.consumeInTx(ctx, repoFactory, value, entity.TokenPurposeActivation)
		if err != nil {
			return err
		}

		// A false return means the account was already active; the token is
		// still spent, which is the point.
		if _, err := repoFactory.PatientRepo().Activate(ctx, token.OwnerID); err != nil {
			return errors.Wrap(err, "failed to activate patient")
		}

		if _, err := repoFactory.TokenRepo().InvalidateAll(ctx, token.OwnerID, token.Purpose, token.ID, *token.UsedAt); err != nil {
			return errors.Wrap(err, "failed to invalidate sibling tokens")
		}

		return srv.auditConsume(ctx, repoFactory, token)
	})
	if err != nil {
		srv.log(ctx).Warn("Activation consume rejected", slog.Any("error", err))

		return consumeError(err)
	}

	srv.log(ctx).Info("Activation token consumed")

	return nil
}

// ConsumePasswordReset consumes a reset token and replaces the owner's password.
func (srv *tokenService) ConsumePasswordReset(ctx context.Context, value, newPassword string) error {
	hash, err := srv.hasher.Hash(newPassword)
	if err != nil {
		return errors.Wrap(domainerrors.ErrInternalError, "failed to hash password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		token, err := srv.consumeInTx(ctx, repoFactory, value, entity.TokenPurposePasswordReset)
		if err != nil {
			return err
		}

		if err := repoFactory.PatientRepo().UpdatePasswordHash(ctx, token.OwnerID, hash); err != nil {
			return errors.Wrap(err, "failed to update password hash")
		}

		if _, err := repoFactory.TokenRepo().InvalidateAll(ctx, token.OwnerID, token.Purpose, token.ID, *token.UsedAt); err != nil {
			return errors.Wrap(err, "failed to invalidate sibling tokens")
		}

		return srv.auditConsume(ctx, repoFactory, token)
	})
	if err != nil {
		srv.log(ctx).Warn("Password reset consume rejected", slog.Any("error", err))

		return consumeError(err)
	}

	srv.log(ctx).Info("Password reset token consumed")

	return nil
}

// ConsumeDeepLink consumes a deep-link token and mints a session credential so
// the patient lands authenticated. Minting is pure, so a minting failure rolls
// the consume back and the link stays usable.
func (srv *tokenService) ConsumeDeepLink(ctx context.Context, value string) (*entity.DeepLinkPayload, string, error) {
	var (
		payload *entity.DeepLinkPayload
		session string
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		token, err := srv.consumeInTx(ctx, repoFactory, value, entity.TokenPurposeDeepLink)
		if err != nil {
			return err
		}

		decoded, err := entity.DecodeDeepLinkPayload(token.Payload)
		if err != nil {
			return errors.Wrap(err, "failed to decode deep link payload")
		}

		minted, err := srv.minter.Mint(token.OwnerID, decoded.AppointmentID)
		if err != nil {
			return errors.Wrap(err, "failed to mint session")
		}

		payload = decoded
		session = minted

		return srv.auditConsume(ctx, repoFactory, token)
	})
	if err != nil {
		srv.log(ctx).Warn("Deep link consume rejected", slog.Any("error", err))

		return nil, "", consumeError(err)
	}

	srv.log(ctx).Info("Deep link token consumed", slog.Any("appointment_id", payload.AppointmentID))

	return payload, session, nil
}

// consumeInTx is the shared consume path: load, check purpose and validity,
// then win the used flip. Any failure maps to ErrInvalidToken with the
// sub-reason preserved for logs only.
func (srv *tokenService) consumeInTx(ctx context.Context, repoFactory repository.RepositoryFactory, value string, purpose entity.TokenPurpose) (*entity.SecurityToken, error) {
	tokenRepo := repoFactory.TokenRepo()

	token, err := tokenRepo.FindByValue(ctx, value)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidToken, "token not found")
		}

		return nil, errors.Wrap(err, "failed to find token")
	}

	if token.Purpose != purpose {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "purpose mismatch")
	}

	now := srv.clock.Now()
	if !token.ValidAt(now) {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "token expired or already used")
	}

	won, err := tokenRepo.ConsumeByValue(ctx, value, now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to consume token")
	}
	if !won {
		// The update only guards used = false (expiry was checked above with
		// the same now); losing here means a concurrent consumer won the flip.
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "lost consume race")
	}

	token.Used = true
	token.UsedAt = &now

	return token, nil
}

func (srv *tokenService) auditConsume(ctx context.Context, repoFactory repository.RepositoryFactory, token *entity.SecurityToken) error {
	record := &entity.AuditRecord{
		EntityType: entity.AuditEntitySecurityToken,
		EntityID:   token.ID,
		Action:     entity.AuditActionTokenConsume,
		Actor:      "patient",
		Before:     "used=false",
		After:      "used=true",
		Reason:     string(token.Purpose),
		RecordedAt: srv.clock.Now(),
	}
	if err := repoFactory.AuditRepo().Record(ctx, record); err != nil {
		return errors.Wrap(err, "failed to record audit entry")
	}

	return nil
}

// Purge hard-deletes expired tokens and used tokens past retention.
func (srv *tokenService) Purge(ctx context.Context) (int64, error) {
	var deleted int64
	now := srv.clock.Now()

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		count, err := repoFactory.TokenRepo().DeleteExpiredBefore(ctx, now, now.Add(-srv.retention))
		if err != nil {
			return errors.Wrap(err, "failed to purge tokens")
		}
		deleted = count

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Token purge failed", slog.Any("error", err))

		return 0, errors.Wrap(err, "failed to purge tokens")
	}

	srv.log(ctx).Info("Token purge completed", slog.Int64("deleted", deleted))

	return deleted, nil
}

// dispatch hands a notification to the (asynchronous) notifier. Delivery is
// best-effort and never blocks or reverses the state change behind it.
func (srv *tokenService) dispatch(ctx context.Context, kind service.NotificationKind, recipient string, context map[string]string) {
	notification := &service.Notification{
		Kind:      kind,
		Recipient: recipient,
		Context:   context,
	}
	if err := srv.notifier.Send(ctx, notification); err != nil {
		srv.log(ctx).Warn("Notification dispatch failed", slog.Any("error", err), slog.String("kind", string(kind)))
	}
}

// consumeError keeps AppError causes intact and wraps everything else as a
// generic invalid-token response, so storage hiccups do not leak detail either.
func consumeError(err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return errors.Wrap(domainerrors.ErrInvalidToken, err.Error())
}

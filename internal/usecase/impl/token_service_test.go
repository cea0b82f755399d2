package impl

import (
	"context"
	"testing"
	"time"

	"clinica/internal/domain/entity"
	domainerrors "clinica/internal/domain/errors"
	"clinica/internal/domain/repository"
	"clinica/internal/domain/service"
	mockRepo "clinica/internal/mocks/repository"
	mockSvc "clinica/internal/mocks/service"
	"clinica/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type tokenServiceFixture struct {
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	notifier  *mockSvc.MockNotifier
	hasher    *mockSvc.MockPasswordHasher
	generator *mockSvc.MockTokenGenerator
	minter    *mockSvc.MockSessionMinter
	clock     *mockSvc.MockClock
	service   usecase.TokenUsecase
}

func newTokenServiceFixture(t *testing.T) *tokenServiceFixture {
	t.Helper()

	txManager, factory := newPassthroughTx(t)
	fixture := &tokenServiceFixture{
		txManager: txManager,
		factory:   factory,
		notifier:  mockSvc.NewMockNotifier(t),
		hasher:    mockSvc.NewMockPasswordHasher(t),
		generator: mockSvc.NewMockTokenGenerator(t),
		minter:    mockSvc.NewMockSessionMinter(t),
		clock:     mockSvc.NewMockClock(t),
	}
	fixture.service = NewTokenService(tokenTestConfig(), txManager, fixture.notifier,
		fixture.hasher, fixture.generator, fixture.minter, fixture.clock, discardLogger())

	return fixture
}

func TestTokenService_Issue_Success(t *testing.T) {
	fixture := newTokenServiceFixture(t)
	ctx := context.Background()
	ownerID := uuid.New()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, testZone)
	fixture.clock.EXPECT().Now().Return(now)

	mockTokenRepo := mockRepo.NewMockTokenRepository(t)
	fixture.factory.EXPECT().TokenRepo().Return(mockTokenRepo)

	mockTokenRepo.EXPECT().
		CountValid(ctx, ownerID, entity.TokenPurposeActivation, now).
		Return(1, nil)
	fixture.generator.EXPECT().Generate().Return("opaque-token-value", nil)
	mockTokenRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.SecurityToken")).
		Return(nil)

	token, err := fixture.service.Issue(ctx, ownerID, entity.TokenPurposeActivation, "")
	require.NoError(t, err)
	require.NotNil(t, token)
	assert.Equal(t, "opaque-token-value", token.Value)
	assert.Equal(t, entity.TokenPurposeActivation, token.Purpose)
	assert.Equal(t, ownerID, token.OwnerID)
	assert.Equal(t, now, token.IssuedAt)
	assert.Equal(t, now.Add(48*time.Hour), token.ExpiresAt)
	assert.False(t, token.Used)
}

func TestTokenService_Issue_QuotaExceeded(t *testing.T) {
	fixture := newTokenServiceFixture(t)
	ctx := context.Background()
	ownerID := uuid.New()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, testZone)
	fixture.clock.EXPECT().Now().Return(now)

	mockTokenRepo := mockRepo.NewMockTokenRepository(t)
	fixture.factory.EXPECT().TokenRepo().Return(mockTokenRepo)

	// Quota is 3; the fourth concurrent request must be refused.
	mockTokenRepo.EXPECT().
		CountValid(ctx, ownerID, entity.TokenPurposePasswordReset, now).
		Return(3, nil)

	token, err := fixture.service.Issue(ctx, ownerID, entity.TokenPurposePasswordReset, "")
	require.Error(t, err)
	assert.Nil(t, token)
	assert.ErrorIs(t, err, domainerrors.ErrTokenQuotaExceeded)
}

func TestTokenService_Issue_DeepLinkSkipsQuota(t *testing.T) {
	fixture := newTokenServiceFixture(t)
	ctx := context.Background()
	ownerID := uuid.New()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, testZone)
	fixture.clock.EXPECT().Now().Return(now)

	mockTokenRepo := mockRepo.NewMockTokenRepository(t)
	fixture.factory.EXPECT().TokenRepo().Return(mockTokenRepo)

	// No CountValid expectation: deep links are uncapped, so the quota check
	// must not run at all.
	fixture.generator.EXPECT().Generate().Return("deep-link-value", nil)
	mockTokenRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.SecurityToken")).
		Return(nil)

	token, err := fixture.service.Issue(ctx, ownerID, entity.TokenPurposeDeepLink, `{"appointment_id":"x"}`)
	require.NoError(t, err)
	require.NotNil(t, token)
	assert.Equal(t, now.Add(48*time.Hour), token.ExpiresAt)
}

func TestTokenService_Issue_UnknownPurpose(t *testing.T) {
	fixture := newTokenServiceFixture(t)
	ctx := context.Background()

	token, err := fixture.service.Issue(ctx, uuid.New(), entity.TokenPurpose("bogus"), "")
	require.Error(t, err)
	assert.Nil(t, token)
}

func TestTokenService_RequestActivation_UnknownEmailIsSilent(t *testing.T) {
	fixture := newTokenServiceFixture(t)
	ctx := context.Background()

	mockPatientRepo := mockRepo.NewMockPatientRepository(t)
	fixture.factory.EXPECT().PatientRepo().Return(mockPatientRepo)

	mockPatientRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrPatientNotFound)

	// No token issued, no notification sent: the response must not reveal
	// whether the address has an account.
	err := fixture.service.RequestActivation(ctx, "nobody@example.com")
	require.NoError(t, err)
}

func TestTokenService_RequestActivation_ActiveAccountIsSilent(t *testing.T) {
	fixture := newTokenServiceFixture(t)
	ctx := context.Background()

	mockPatientRepo := mockRepo.NewMockPatientRepository(t)
	fixture.factory.EXPECT().PatientRepo().Return(mockPatientRepo)

	mockPatientRepo.EXPECT().
		FindByEmail(ctx, "active@example.com").
		Return(&entity.Patient{ID: uuid.New(), Email: "active@example.com", Active: true}, nil)

	err := fixture.service.RequestActivation(ctx, "active@example.com")
	require.NoError(t, err)
}

func TestTokenService_RequestActivation_IssuesAndDispatches(t *testing.T) {
	fixture := newTokenServiceFixture(t)
	ctx := context.Background()
	patientID := uuid.New()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, testZone)
	fixture.clock.EXPECT().Now().Return(now)

	mockPatientRepo := mockRepo.NewMockPatientRepository(t)
	mockTokenRepo := mockRepo.NewMockTokenRepository(t)
	fixture.factory.EXPECT().PatientRepo().Return(mockPatientRepo)
	fixture.factory.EXPECT().TokenRepo().Return(mockTokenRepo)

	mockPatientRepo.EXPECT().
		FindByEmail(ctx, "new@example.com").
		Return(&entity.Patient{ID: patientID, Email: "new@example.com", Active: false}, nil)
	mockTokenRepo.EXPECT().
		CountValid(ctx, patientID, entity.TokenPurposeActivation, now).
		Return(0, nil)
	fixture.generator.EXPECT().Generate().Return("activation-value", nil)
	mockTokenRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.SecurityToken")).
		Return(nil)

	var sent *service.Notification
	fixture.notifier.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.Notification")).
		Run(func(_ context.Context, notification *service.Notification) {
			sent = notification
		}).
		Return(nil)

	err := fixture.service.RequestActivation(ctx, "new@example.com")
	require.NoError(t, err)
	require.NotNil(t, sent)
	assert.Equal(t, service.NotificationActivationLink, sent.Kind)
	assert.Equal(t, "new@example.com", sent.Recipient)
	assert.Equal(t, "activation-value", sent.Context["token"])
	assert.Equal(t, now.Add(48*time.Hour).Format(time.RFC3339), sent.Context["expires_at"])
}

func TestTokenService_RequestActivation_QuotaReachedIsSilent(t *testing.T) {
	fixture := newTokenServiceFixture(t)
	ctx := context.Background()
	patientID := uuid.New()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, testZone)
	fixture.clock.EXPECT().Now().Return(now)

	mockPatientRepo := mockRepo.NewMockPatientRepository(t)
	mockTokenRepo := mockRepo.NewMockTokenRepository(t)
	fixture.factory.EXPECT().PatientRepo().Return(mockPatientRepo)
	fixture.factory.EXPECT().TokenRepo().Return(mockTokenRepo)

	mockPatientRepo.EXPECT().
		FindByEmail(ctx, "eager@example.com").
		Return(&entity.Patient{ID: patientID, Email: "eager@example.com", Active: false}, nil)
	mockTokenRepo.EXPECT().
		CountValid(ctx, patientID, entity.TokenPurposeActivation, now).
		Return(3, nil)

	// At the cap the request is absorbed: no new token, no notification, and
	// the same success the unknown-email path returns. A 429 here would tell
	// the caller the account exists.
	err := fixture.service.RequestActivation(ctx, "eager@example.com")
	require.NoError(t, err)
}

func TestTokenService_RequestPasswordReset_UnknownEmailIsSilent(t *testing.T) {
	fixture := newTokenServiceFixture(t)
	ctx := context.Background()

	mockPatientRepo := mockRepo.NewMockPatientRepository(t)
	fixture.factory.EXPECT().PatientRepo().Return(mockPatientRepo)

	mockPatientRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrPatientNotFound)

	err := fixture.service.RequestPasswordReset(ctx, "nobody@example.com")
	require.NoError(t, err)
}

func TestTokenService_Validate(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, testZone)

	tests := []struct {
		name  string
		token *entity.SecurityToken
		want  bool
	}{
		{
			name:  "unused and unexpired",
			token: &entity.SecurityToken{ExpiresAt: now.Add(time.Second)},
			want:  true,
		},
		{
			// Expiry is exclusive: a token expiring exactly now is spent.
			name:  "expires exactly now",
			token: &entity.SecurityToken{ExpiresAt: now},
			want:  false,
		},
		{
			name:  "already used",
			token: &entity.SecurityToken{ExpiresAt: now.Add(time.Hour), Used: true},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixture := newTokenServiceFixture(t)
			ctx := context.Background()
			fixture.clock.EXPECT().Now().Return(now)

			mockTokenRepo := mockRepo.NewMockTokenRepository(t)
			fixture.factory.EXPECT().TokenRepo().Return(mockTokenRepo)
			mockTokenRepo.EXPECT().FindByValue(ctx, "some-value").Return(tt.token, nil)

			assert.Equal(t, tt.want, fixture.service.Validate(ctx, "some-value"))
		})
	}
}

func TestTokenService_Validate_UnknownToken(t *testing.T) {
	fixture := newTokenServiceFixture(t)
	ctx := context.Background()

	mockTokenRepo := mockRepo.NewMockTokenRepository(t)
	fixture.factory.EXPECT().TokenRepo().Return(mockTokenRepo)
	mockTokenRepo.EXPECT().FindByValue(ctx, "missing").Return(nil, repository.ErrTokenNotFound)

	assert.False(t, fixture.service.Validate(ctx, "missing"))
}

func TestTokenService_ConsumeActivation_Success(t *testing.T) {
	fixture := newTokenServiceFixture(t)
	ctx := context.Background()
	tokenID := uuid.New()
	ownerID := uuid.New()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, testZone)
	fixture.clock.EXPECT().Now().Return(now)

	mockTokenRepo := mockRepo.NewMockTokenRepository(t)
	mockPatientRepo := mockRepo.NewMockPatientRepository(t)
	mockAuditRepo := mockRepo.NewMockAuditRepository(t)
	fixture.factory.EXPECT().TokenRepo().Return(mockTokenRepo)
	fixture.factory.EXPECT().PatientRepo().Return(mockPatientRepo)
	fixture.factory.EXPECT().AuditRepo().Return(mockAuditRepo)

	mockTokenRepo.EXPECT().
		FindByValue(ctx, "activation-value").
		Return(&entity.SecurityToken{
			ID:        tokenID,
			Value:     "activation-value",
			Purpose:   entity.TokenPurposeActivation,
			OwnerID:   ownerID,
			ExpiresAt: now.Add(time.Hour),
		}, nil)
	mockTokenRepo.EXPECT().ConsumeByValue(ctx, "activation-value", now).Return(true, nil)
	mockPatientRepo.EXPECT().Activate(ctx, ownerID).Return(true, nil)
	mockTokenRepo.EXPECT().
		InvalidateAll(ctx, ownerID, entity.TokenPurposeActivation, tokenID, now).
		Return(2, nil)

	var recorded *entity.AuditRecord
	mockAuditRepo.EXPECT().
		Record(ctx, mock.AnythingOfType("*entity.AuditRecord")).
		Run(func(_ context.Context, record *entity.AuditRecord) {
			recorded = record
		}).
		Return(nil)

	err := fixture.service.ConsumeActivation(ctx, "activation-value")
	require.NoError(t, err)
	require.NotNil(t, recorded)
	assert.Equal(t, entity.AuditEntitySecurityToken, recorded.EntityType)
	assert.Equal(t, tokenID, recorded.EntityID)
	assert.Equal(t, entity.AuditActionTokenConsume, recorded.Action)
	assert.Equal(t, string(entity.TokenPurposeActivation), recorded.Reason)
}

func TestTokenService_ConsumeActivation_LostRace(t *testing.T) {
	fixture := newTokenServiceFixture(t)
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, testZone)
	fixture.clock.EXPECT().Now().Return(now)

	mockTokenRepo := mockRepo.NewMockTokenRepository(t)
	fixture.factory.EXPECT().TokenRepo().Return(mockTokenRepo)

	mockTokenRepo.EXPECT().
		FindByValue(ctx, "contested").
		Return(&entity.SecurityToken{
			ID:        uuid.New(),
			Value:     "contested",
			Purpose:   entity.TokenPurposeActivation,
			OwnerID:   uuid.New(),
			ExpiresAt: now.Add(time.Hour),
		}, nil)
	// A concurrent consumer flipped used first; this caller must lose.
	mockTokenRepo.EXPECT().ConsumeByValue(ctx, "contested", now).Return(false, nil)

	err := fixture.service.ConsumeActivation(ctx, "contested")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestTokenService_ConsumeActivation_PurposeMismatch(t *testing.T) {
	fixture := newTokenServiceFixture(t)
	ctx := context.Background()

	mockTokenRepo := mockRepo.NewMockTokenRepository(t)
	fixture.factory.EXPECT().TokenRepo().Return(mockTokenRepo)

	mockTokenRepo.EXPECT().
		FindByValue(ctx, "reset-value").
		Return(&entity.SecurityToken{
			ID:        uuid.New(),
			Value:     "reset-value",
			Purpose:   entity.TokenPurposePasswordReset,
			OwnerID:   uuid.New(),
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil)

	err := fixture.service.ConsumeActivation(ctx, "reset-value")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestTokenService_ConsumeActivation_Expired(t *testing.T) {
	fixture := newTokenServiceFixture(t)
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, testZone)
	fixture.clock.EXPECT().Now().Return(now)

	mockTokenRepo := mockRepo.NewMockTokenRepository(t)
	fixture.factory.EXPECT().TokenRepo().Return(mockTokenRepo)

	mockTokenRepo.EXPECT().
		FindByValue(ctx, "stale").
		Return(&entity.SecurityToken{
			ID:        uuid.New(),
			Value:     "stale",
			Purpose:   entity.TokenPurposeActivation,
			OwnerID:   uuid.New(),
			ExpiresAt: now.Add(-time.Minute),
		}, nil)

	err := fixture.service.ConsumeActivation(ctx, "stale")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestTokenService_ConsumePasswordReset_Success(t *testing.T) {
	fixture := newTokenServiceFixture(t)
	ctx := context.Background()
	tokenID := uuid.New()
	ownerID := uuid.New()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, testZone)
	fixture.clock.EXPECT().Now().Return(now)

	mockTokenRepo := mockRepo.NewMockTokenRepository(t)
	mockPatientRepo := mockRepo.NewMockPatientRepository(t)
	mockAuditRepo := mockRepo.NewMockAuditRepository(t)
	fixture.factory.EXPECT().TokenRepo().Return(mockTokenRepo)
	fixture.factory.EXPECT().PatientRepo().Return(mockPatientRepo)
	fixture.factory.EXPECT().AuditRepo().Return(mockAuditRepo)

	fixture.hasher.EXPECT().Hash("new-password").Return("bcrypt-hash", nil)
	mockTokenRepo.EXPECT().
		FindByValue(ctx, "reset-value").
		Return(&entity.SecurityToken{
			ID:        tokenID,
			Value:     "reset-value",
			Purpose:   entity.TokenPurposePasswordReset,
			OwnerID:   ownerID,
			ExpiresAt: now.Add(time.Hour),
		}, nil)
	mockTokenRepo.EXPECT().ConsumeByValue(ctx, "reset-value", now).Return(true, nil)
	mockPatientRepo.EXPECT().UpdatePasswordHash(ctx, ownerID, "bcrypt-hash").Return(nil)
	// One successful reset closes every other in-flight reset attempt.
	mockTokenRepo.EXPECT().
		InvalidateAll(ctx, ownerID, entity.TokenPurposePasswordReset, tokenID, now).
		Return(1, nil)
	mockAuditRepo.EXPECT().
		Record(ctx, mock.AnythingOfType("*entity.AuditRecord")).
		Return(nil)

	err := fixture.service.ConsumePasswordReset(ctx, "reset-value", "new-password")
	require.NoError(t, err)
}

func TestTokenService_ConsumeDeepLink_Success(t *testing.T) {
	fixture := newTokenServiceFixture(t)
	ctx := context.Background()
	ownerID := uuid.New()
	appointmentID := uuid.New()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, testZone)
	fixture.clock.EXPECT().Now().Return(now)

	encoded, err := entity.DeepLinkPayload{AppointmentID: appointmentID, Context: "confirmation"}.Encode()
	require.NoError(t, err)

	mockTokenRepo := mockRepo.NewMockTokenRepository(t)
	mockAuditRepo := mockRepo.NewMockAuditRepository(t)
	fixture.factory.EXPECT().TokenRepo().Return(mockTokenRepo)
	fixture.factory.EXPECT().AuditRepo().Return(mockAuditRepo)

	mockTokenRepo.EXPECT().
		FindByValue(ctx, "deep-link-value").
		Return(&entity.SecurityToken{
			ID:        uuid.New(),
			Value:     "deep-link-value",
			Purpose:   entity.TokenPurposeDeepLink,
			OwnerID:   ownerID,
			Payload:   encoded,
			ExpiresAt: now.Add(time.Hour),
		}, nil)
	mockTokenRepo.EXPECT().ConsumeByValue(ctx, "deep-link-value", now).Return(true, nil)
	fixture.minter.EXPECT().Mint(ownerID, appointmentID).Return("session-credential", nil)
	mockAuditRepo.EXPECT().
		Record(ctx, mock.AnythingOfType("*entity.AuditRecord")).
		Return(nil)

	payload, session, err := fixture.service.ConsumeDeepLink(ctx, "deep-link-value")
	require.NoError(t, err)
	require.NotNil(t, payload)
	assert.Equal(t, appointmentID, payload.AppointmentID)
	assert.Equal(t, "confirmation", payload.Context)
	assert.Equal(t, "session-credential", session)
}

func TestTokenService_ConsumeDeepLink_MintFailure(t *testing.T) {
	fixture := newTokenServiceFixture(t)
	ctx := context.Background()
	ownerID := uuid.New()
	appointmentID := uuid.New()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, testZone)
	fixture.clock.EXPECT().Now().Return(now)

	encoded, err := entity.DeepLinkPayload{AppointmentID: appointmentID, Context: "confirmation"}.Encode()
	require.NoError(t, err)

	mockTokenRepo := mockRepo.NewMockTokenRepository(t)
	fixture.factory.EXPECT().TokenRepo().Return(mockTokenRepo)

	mockTokenRepo.EXPECT().
		FindByValue(ctx, "deep-link-value").
		Return(&entity.SecurityToken{
			ID:        uuid.New(),
			Value:     "deep-link-value",
			Purpose:   entity.TokenPurposeDeepLink,
			OwnerID:   ownerID,
			Payload:   encoded,
			ExpiresAt: now.Add(time.Hour),
		}, nil)
	mockTokenRepo.EXPECT().ConsumeByValue(ctx, "deep-link-value", now).Return(true, nil)
	fixture.minter.EXPECT().Mint(ownerID, appointmentID).Return("", errors.New("no signing key"))

	payload, session, err := fixture.service.ConsumeDeepLink(ctx, "deep-link-value")
	require.Error(t, err)
	assert.Nil(t, payload)
	assert.Empty(t, session)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestTokenService_Purge(t *testing.T) {
	fixture := newTokenServiceFixture(t)
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, testZone)
	fixture.clock.EXPECT().Now().Return(now)

	mockTokenRepo := mockRepo.NewMockTokenRepository(t)
	fixture.factory.EXPECT().TokenRepo().Return(mockTokenRepo)

	mockTokenRepo.EXPECT().
		DeleteExpiredBefore(ctx, now, now.Add(-7*24*time.Hour)).
		Return(5, nil)

	deleted, err := fixture.service.Purge(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), deleted)
}

func TestTokenService_Purge_Error(t *testing.T) {
	fixture := newTokenServiceFixture(t)
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, testZone)
	fixture.clock.EXPECT().Now().Return(now)

	mockTokenRepo := mockRepo.NewMockTokenRepository(t)
	fixture.factory.EXPECT().TokenRepo().Return(mockTokenRepo)

	mockTokenRepo.EXPECT().
		DeleteExpiredBefore(ctx, now, now.Add(-7*24*time.Hour)).
		Return(0, errors.New("connection reset"))

	deleted, err := fixture.service.Purge(ctx)
	require.Error(t, err)
	assert.Zero(t, deleted)
}

package impl

import (
	"context"
	"testing"
	"time"

	"clinica/config"
	"clinica/internal/domain/entity"
	"clinica/internal/domain/service"
	mockRepo "clinica/internal/mocks/repository"
	mockSvc "clinica/internal/mocks/service"
	mockUsecase "clinica/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reminderTestWindow mirrors the sweep window for a clock pinned at now:
// tomorrow's midnight through windowDays later, in the reference zone.
func reminderTestWindow(now time.Time, windowDays int) (time.Time, time.Time) {
	year, month, day := now.Date()
	from := time.Date(year, month, day+1, 0, 0, 0, 0, testZone)

	return from, from.AddDate(0, 0, windowDays)
}

func TestReminderService_Run_SendsReminderWithDeepLink(t *testing.T) {
	txManager, factory := newPassthroughTx(t)
	mockTokens := mockUsecase.NewMockTokenUsecase(t)
	mockNotifier := mockSvc.NewMockNotifier(t)
	mockClock := mockSvc.NewMockClock(t)
	svc := NewReminderService(sweepTestConfig(), txManager, mockTokens, mockNotifier, mockClock, discardLogger())

	ctx := context.Background()
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, testZone)
	mockClock.EXPECT().Now().Return(now)
	mockClock.EXPECT().Location().Return(testZone)

	patientID := uuid.New()
	candidate := &entity.Appointment{
		ID:          uuid.New(),
		PatientID:   patientID,
		ScheduledAt: time.Date(2025, 3, 12, 15, 0, 0, 0, testZone),
		Specialty:   "Dermatología",
		Physician:   "Dr. Salas",
		Room:        "204",
		State:       entity.StateProgramado,
	}

	from, to := reminderTestWindow(now, 3)
	mockAppointmentRepo := mockRepo.NewMockAppointmentRepository(t)
	mockPatientRepo := mockRepo.NewMockPatientRepository(t)
	factory.EXPECT().AppointmentRepo().Return(mockAppointmentRepo)
	factory.EXPECT().PatientRepo().Return(mockPatientRepo)

	mockAppointmentRepo.EXPECT().
		FindByStateAndWindow(ctx,
			[]entity.AppointmentState{entity.StateProgramado, entity.StateReagendado}, from, to).
		Return([]*entity.Appointment{candidate}, nil)
	mockAppointmentRepo.EXPECT().
		MarkReminded(ctx, candidate.ID, now).
		Return(true, nil)
	mockPatientRepo.EXPECT().
		FindByID(ctx, patientID).
		Return(&entity.Patient{ID: patientID, Email: "paciente@example.com"}, nil)

	expectedPayload, err := entity.DeepLinkPayload{AppointmentID: candidate.ID, Context: "confirmation"}.Encode()
	require.NoError(t, err)
	mockTokens.EXPECT().
		Issue(ctx, patientID, entity.TokenPurposeDeepLink, expectedPayload).
		Return(&entity.SecurityToken{Value: "deep-link-value"}, nil)

	var sent *service.Notification
	mockNotifier.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.Notification")).
		Run(func(_ context.Context, notification *service.Notification) {
			sent = notification
		}).
		Return(nil)

	summary, err := svc.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Candidates)
	assert.Equal(t, 1, summary.Sent)
	assert.Zero(t, summary.Skipped)
	assert.Zero(t, summary.Failed)

	require.NotNil(t, sent)
	assert.Equal(t, service.NotificationReminder, sent.Kind)
	assert.Equal(t, "paciente@example.com", sent.Recipient)
	assert.Equal(t, candidate.ID.String(), sent.Context["appointment_id"])
	assert.Equal(t, "2025-03-12", sent.Context["date"])
	assert.Equal(t, "15:00", sent.Context["time"])
	assert.Equal(t, "Dermatología", sent.Context["specialty"])
	assert.Equal(t, "204", sent.Context["room"])
	assert.Equal(t, "deep-link-value", sent.Context["token"])
	// Confirmation deadline derives from the 48h auto-cancel lead.
	deadline := candidate.ScheduledAt.Add(-48 * time.Hour).In(testZone).Format(time.RFC3339)
	assert.Equal(t, deadline, sent.Context["confirmation_deadline"])
}

func TestReminderService_Run_OncePolicySkipsAlreadyReminded(t *testing.T) {
	txManager, factory := newPassthroughTx(t)
	mockTokens := mockUsecase.NewMockTokenUsecase(t)
	mockNotifier := mockSvc.NewMockNotifier(t)
	mockClock := mockSvc.NewMockClock(t)
	svc := NewReminderService(sweepTestConfig(), txManager, mockTokens, mockNotifier, mockClock, discardLogger())

	ctx := context.Background()
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, testZone)
	mockClock.EXPECT().Now().Return(now)
	mockClock.EXPECT().Location().Return(testZone)

	remindedAt := now.Add(-24 * time.Hour)
	candidate := &entity.Appointment{
		ID:         uuid.New(),
		PatientID:  uuid.New(),
		State:      entity.StateProgramado,
		RemindedAt: &remindedAt,
	}

	from, to := reminderTestWindow(now, 3)
	mockAppointmentRepo := mockRepo.NewMockAppointmentRepository(t)
	factory.EXPECT().AppointmentRepo().Return(mockAppointmentRepo)

	// Overlapping windows surface the same appointment on consecutive days;
	// the stamp keeps it to a single reminder.
	mockAppointmentRepo.EXPECT().
		FindByStateAndWindow(ctx,
			[]entity.AppointmentState{entity.StateProgramado, entity.StateReagendado}, from, to).
		Return([]*entity.Appointment{candidate}, nil)

	summary, err := svc.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Candidates)
	assert.Zero(t, summary.Sent)
	assert.Equal(t, 1, summary.Skipped)
}

func TestReminderService_Run_OncePolicySkipsLostStamp(t *testing.T) {
	txManager, factory := newPassthroughTx(t)
	mockTokens := mockUsecase.NewMockTokenUsecase(t)
	mockNotifier := mockSvc.NewMockNotifier(t)
	mockClock := mockSvc.NewMockClock(t)
	svc := NewReminderService(sweepTestConfig(), txManager, mockTokens, mockNotifier, mockClock, discardLogger())

	ctx := context.Background()
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, testZone)
	mockClock.EXPECT().Now().Return(now)
	mockClock.EXPECT().Location().Return(testZone)

	candidate := &entity.Appointment{ID: uuid.New(), PatientID: uuid.New(), State: entity.StateProgramado}

	from, to := reminderTestWindow(now, 3)
	mockAppointmentRepo := mockRepo.NewMockAppointmentRepository(t)
	factory.EXPECT().AppointmentRepo().Return(mockAppointmentRepo)

	mockAppointmentRepo.EXPECT().
		FindByStateAndWindow(ctx,
			[]entity.AppointmentState{entity.StateProgramado, entity.StateReagendado}, from, to).
		Return([]*entity.Appointment{candidate}, nil)
	// Another sweep instance stamped first; no token, no send.
	mockAppointmentRepo.EXPECT().
		MarkReminded(ctx, candidate.ID, now).
		Return(false, nil)

	summary, err := svc.Run(ctx)
	require.NoError(t, err)
	assert.Zero(t, summary.Sent)
	assert.Equal(t, 1, summary.Skipped)
}

func TestReminderService_Run_DailyPolicyRemindsAgain(t *testing.T) {
	txManager, factory := newPassthroughTx(t)
	mockTokens := mockUsecase.NewMockTokenUsecase(t)
	mockNotifier := mockSvc.NewMockNotifier(t)
	mockClock := mockSvc.NewMockClock(t)

	cfg := sweepTestConfig()
	cfg.Reminder.Policy = config.ReminderPolicyDaily
	svc := NewReminderService(cfg, txManager, mockTokens, mockNotifier, mockClock, discardLogger())

	ctx := context.Background()
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, testZone)
	mockClock.EXPECT().Now().Return(now)
	mockClock.EXPECT().Location().Return(testZone)

	patientID := uuid.New()
	remindedAt := now.Add(-24 * time.Hour)
	candidate := &entity.Appointment{
		ID:          uuid.New(),
		PatientID:   patientID,
		ScheduledAt: time.Date(2025, 3, 11, 10, 0, 0, 0, testZone),
		State:       entity.StateReagendado,
		RemindedAt:  &remindedAt,
	}

	from, to := reminderTestWindow(now, 3)
	mockAppointmentRepo := mockRepo.NewMockAppointmentRepository(t)
	mockPatientRepo := mockRepo.NewMockPatientRepository(t)
	factory.EXPECT().AppointmentRepo().Return(mockAppointmentRepo)
	factory.EXPECT().PatientRepo().Return(mockPatientRepo)

	// No MarkReminded expectation: the daily policy never stamps, a prior
	// reminder does not suppress today's.
	mockAppointmentRepo.EXPECT().
		FindByStateAndWindow(ctx,
			[]entity.AppointmentState{entity.StateProgramado, entity.StateReagendado}, from, to).
		Return([]*entity.Appointment{candidate}, nil)
	mockPatientRepo.EXPECT().
		FindByID(ctx, patientID).
		Return(&entity.Patient{ID: patientID, Email: "paciente@example.com"}, nil)
	mockTokens.EXPECT().
		Issue(ctx, patientID, entity.TokenPurposeDeepLink, mock.AnythingOfType("string")).
		Return(&entity.SecurityToken{Value: "fresh-link"}, nil)
	mockNotifier.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.Notification")).
		Return(nil)

	summary, err := svc.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Sent)
	assert.Zero(t, summary.Skipped)
}

func TestReminderService_Run_SendFailureStillCountsSent(t *testing.T) {
	txManager, factory := newPassthroughTx(t)
	mockTokens := mockUsecase.NewMockTokenUsecase(t)
	mockNotifier := mockSvc.NewMockNotifier(t)
	mockClock := mockSvc.NewMockClock(t)
	svc := NewReminderService(sweepTestConfig(), txManager, mockTokens, mockNotifier, mockClock, discardLogger())

	ctx := context.Background()
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, testZone)
	mockClock.EXPECT().Now().Return(now)
	mockClock.EXPECT().Location().Return(testZone)

	patientID := uuid.New()
	candidate := &entity.Appointment{
		ID:          uuid.New(),
		PatientID:   patientID,
		ScheduledAt: time.Date(2025, 3, 12, 15, 0, 0, 0, testZone),
		State:       entity.StateProgramado,
	}

	from, to := reminderTestWindow(now, 3)
	mockAppointmentRepo := mockRepo.NewMockAppointmentRepository(t)
	mockPatientRepo := mockRepo.NewMockPatientRepository(t)
	factory.EXPECT().AppointmentRepo().Return(mockAppointmentRepo)
	factory.EXPECT().PatientRepo().Return(mockPatientRepo)

	mockAppointmentRepo.EXPECT().
		FindByStateAndWindow(ctx,
			[]entity.AppointmentState{entity.StateProgramado, entity.StateReagendado}, from, to).
		Return([]*entity.Appointment{candidate}, nil)
	mockAppointmentRepo.EXPECT().
		MarkReminded(ctx, candidate.ID, now).
		Return(true, nil)
	mockPatientRepo.EXPECT().
		FindByID(ctx, patientID).
		Return(&entity.Patient{ID: patientID, Email: "paciente@example.com"}, nil)
	mockTokens.EXPECT().
		Issue(ctx, patientID, entity.TokenPurposeDeepLink, mock.AnythingOfType("string")).
		Return(&entity.SecurityToken{Value: "deep-link-value"}, nil)
	mockNotifier.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.Notification")).
		Return(errors.New("webhook timeout"))

	// The stamp is already spent; a delivery failure is logged, not retried.
	summary, err := svc.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Sent)
	assert.Zero(t, summary.Failed)
}

func TestReminderService_Run_IssueFailureCountsFailed(t *testing.T) {
	txManager, factory := newPassthroughTx(t)
	mockTokens := mockUsecase.NewMockTokenUsecase(t)
	mockNotifier := mockSvc.NewMockNotifier(t)
	mockClock := mockSvc.NewMockClock(t)
	svc := NewReminderService(sweepTestConfig(), txManager, mockTokens, mockNotifier, mockClock, discardLogger())

	ctx := context.Background()
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, testZone)
	mockClock.EXPECT().Now().Return(now)
	mockClock.EXPECT().Location().Return(testZone)

	patientID := uuid.New()
	candidate := &entity.Appointment{ID: uuid.New(), PatientID: patientID, State: entity.StateProgramado}

	from, to := reminderTestWindow(now, 3)
	mockAppointmentRepo := mockRepo.NewMockAppointmentRepository(t)
	mockPatientRepo := mockRepo.NewMockPatientRepository(t)
	factory.EXPECT().AppointmentRepo().Return(mockAppointmentRepo)
	factory.EXPECT().PatientRepo().Return(mockPatientRepo)

	mockAppointmentRepo.EXPECT().
		FindByStateAndWindow(ctx,
			[]entity.AppointmentState{entity.StateProgramado, entity.StateReagendado}, from, to).
		Return([]*entity.Appointment{candidate}, nil)
	mockAppointmentRepo.EXPECT().
		MarkReminded(ctx, candidate.ID, now).
		Return(true, nil)
	mockPatientRepo.EXPECT().
		FindByID(ctx, patientID).
		Return(&entity.Patient{ID: patientID, Email: "paciente@example.com"}, nil)
	mockTokens.EXPECT().
		Issue(ctx, patientID, entity.TokenPurposeDeepLink, mock.AnythingOfType("string")).
		Return(nil, errors.New("store unavailable"))

	summary, err := svc.Run(ctx)
	require.NoError(t, err)
	assert.Zero(t, summary.Sent)
	assert.Equal(t, 1, summary.Failed)
}

package impl

import (
	"context"
	"log/slog"
	"time"

	"clinica/config"
	deliverycontext "clinica/internal/delivery/context"
	"clinica/internal/domain/entity"
	"clinica/internal/domain/repository"
	"clinica/internal/domain/service"
	"clinica/internal/usecase"

	"github.com/pkg/errors"
)

// deepLinkContext tags the deep-link payload minted for reminder links.
const deepLinkContext = "confirmation"

// reminderService implements the ReminderUsecase interface.
type reminderService struct {
	txManager  repository.TransactionManager
	tokens     usecase.TokenUsecase
	notifier   service.Notifier
	clock      service.Clock
	windowDays int
	policy     string
	leadHours  int
	logger     *slog.Logger
}

// NewReminderService is the constructor for reminderService.
func NewReminderService(
	cfg *config.Config,
	txManager repository.TransactionManager,
	tokens usecase.TokenUsecase,
	notifier service.Notifier,
	clock service.Clock,
	logger *slog.Logger,
) usecase.ReminderUsecase {
	return &reminderService{
		txManager:  txManager,
		tokens:     tokens,
		notifier:   notifier,
		clock:      clock,
		windowDays: cfg.Reminder.WindowDays,
		policy:     cfg.Reminder.Policy,
		leadHours:  cfg.AutoCancel.LeadHours,
		logger:     logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *reminderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// reminderWindow covers the zone days tomorrow through today+windowDays.
// Day boundaries are computed in the reference zone; the server's local zone
// never leaks into the window.
func (srv *reminderService) reminderWindow() (from, to time.Time) {
	now := srv.clock.Now()
	year, month, day := now.Date()
	startOfTomorrow := time.Date(year, month, day+1, 0, 0, 0, 0, srv.clock.Location())

	return startOfTomorrow, startOfTomorrow.AddDate(0, 0, srv.windowDays)
}

// Run executes one reminder sweep. Under the once policy the reminded_at stamp
// is won before the send, so overlapping windows on consecutive days cannot
// double-remind; a reminder lost after a won stamp is accepted as the cheaper
// failure mode.
func (srv *reminderService) Run(ctx context.Context) (*usecase.ReminderSummary, error) {
	summary := &usecase.ReminderSummary{}
	from, to := srv.reminderWindow()

	var candidates []*entity.Appointment
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.AppointmentRepo().FindByStateAndWindow(ctx,
			[]entity.AppointmentState{entity.StateProgramado, entity.StateReagendado}, from, to)
		if err != nil {
			return errors.Wrap(err, "failed to find reminder candidates")
		}
		candidates = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Reminder sweep aborted", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to run reminder sweep")
	}

	summary.Candidates = len(candidates)

	for _, candidate := range candidates {
		select {
		case <-ctx.Done():
			srv.log(ctx).Warn("Reminder sweep deadline reached", slog.Int("sent", summary.Sent))

			return summary, ctx.Err()
		default:
		}

		sent, skipped, err := srv.remindOne(ctx, candidate)
		switch {
		case err != nil:
			summary.Failed++
			srv.log(ctx).Error("Failed to remind appointment",
				slog.Any("error", err), slog.Any("appointment_id", candidate.ID))
		case skipped:
			summary.Skipped++
		case sent:
			summary.Sent++
		}
	}

	srv.log(ctx).Info("Reminder sweep completed",
		slog.Int("candidates", summary.Candidates),
		slog.Int("sent", summary.Sent),
		slog.Int("skipped", summary.Skipped),
		slog.Int("failed", summary.Failed),
	)

	return summary, nil
}

// remindOne stamps (once policy), mints the deep link and dispatches the reminder.
func (srv *reminderService) remindOne(ctx context.Context, appointment *entity.Appointment) (sent, skipped bool, err error) {
	if srv.policy == config.ReminderPolicyOnce {
		if appointment.RemindedAt != nil {
			return false, true, nil
		}

		var won bool
		err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			stamped, err := repoFactory.AppointmentRepo().MarkReminded(ctx, appointment.ID, srv.clock.Now())
			if err != nil {
				return errors.Wrap(err, "failed to mark appointment reminded")
			}
			won = stamped

			return nil
		})
		if err != nil {
			return false, false, err
		}
		if !won {
			return false, true, nil
		}
	}

	var recipient string
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		patient, err := repoFactory.PatientRepo().FindByID(ctx, appointment.PatientID)
		if err != nil {
			return errors.Wrap(err, "failed to find reminder recipient")
		}
		recipient = patient.Email

		return nil
	})
	if err != nil {
		return false, false, err
	}

	payload, err := entity.DeepLinkPayload{
		AppointmentID: appointment.ID,
		Context:       deepLinkContext,
	}.Encode()
	if err != nil {
		return false, false, err
	}

	token, err := srv.tokens.Issue(ctx, appointment.PatientID, entity.TokenPurposeDeepLink, payload)
	if err != nil {
		return false, false, errors.Wrap(err, "failed to issue deep link token")
	}

	scheduledLocal := appointment.ScheduledAt.In(srv.clock.Location())
	deadline := appointment.ConfirmationDeadline(srv.leadHours).In(srv.clock.Location())

	notification := &service.Notification{
		Kind:      service.NotificationReminder,
		Recipient: recipient,
		Context: map[string]string{
			"appointment_id":        appointment.ID.String(),
			"date":                  scheduledLocal.Format("2006-01-02"),
			"time":                  scheduledLocal.Format("15:04"),
			"specialty":             appointment.Specialty,
			"physician":             appointment.Physician,
			"room":                  appointment.Room,
			"confirmation_deadline": deadline.Format(time.RFC3339),
			"token":                 token.Value,
		},
	}
	if err := srv.notifier.Send(ctx, notification); err != nil {
		// Under the once policy the stamp is already spent; log loudly, the
		// notice itself is best-effort.
		srv.log(ctx).Warn("Reminder dispatch failed",
			slog.Any("error", err), slog.Any("appointment_id", appointment.ID))
	}

	return true, false, nil
}

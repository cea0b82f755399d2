package impl

import (
	"context"
	"fmt"
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

// autoCancelActor tags audit records written by the sweep.
const autoCancelActor = "scheduler"

// autoCancelService implements the AutoCancelUsecase interface.
type autoCancelService struct {
	txManager repository.TransactionManager
	notifier  service.Notifier
	clock     service.Clock
	enabled   bool
	leadHours int
	logger    *slog.Logger
}

// NewAutoCancelService is the constructor for autoCancelService.
func NewAutoCancelService(
	cfg *config.Config,
	txManager repository.TransactionManager,
	notifier service.Notifier,
	clock service.Clock,
	logger *slog.Logger,
) usecase.AutoCancelUsecase {
	return &autoCancelService{
		txManager: txManager,
		notifier:  notifier,
		clock:     clock,
		enabled:   cfg.AutoCancel.Enabled,
		leadHours: cfg.AutoCancel.LeadHours,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *autoCancelService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// cancelWindow is the sweep predicate: unconfirmed appointments scheduled in
// (now, now+leadHours] are past their confirmation deadline.
func (srv *autoCancelService) cancelWindow() (from, to time.Time) {
	now := srv.clock.Now()

	return now, now.Add(time.Duration(srv.leadHours) * time.Hour)
}

// Run executes one auto-cancellation sweep. The candidate read happens once;
// each candidate is then cancelled in its own transaction so one bad row never
// poisons the batch. Re-running over the same data is a no-op because the
// conditional update matches nothing the second time.
func (srv *autoCancelService) Run(ctx context.Context) (*usecase.AutoCancelSummary, error) {
	summary := &usecase.AutoCancelSummary{}

	if !srv.enabled {
		srv.log(ctx).Info("Auto-cancel sweep disabled, skipping")

		return summary, nil
	}

	from, to := srv.cancelWindow()

	var candidates []*entity.Appointment
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.AppointmentRepo().FindByStateAndWindow(ctx,
			[]entity.AppointmentState{entity.StateProgramado}, from, to)
		if err != nil {
			return errors.Wrap(err, "failed to find cancellation candidates")
		}
		candidates = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Auto-cancel sweep aborted", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to run auto-cancel sweep")
	}

	summary.Candidates = len(candidates)

	for _, candidate := range candidates {
		select {
		case <-ctx.Done():
			srv.log(ctx).Warn("Auto-cancel sweep deadline reached",
				slog.Int("cancelled", summary.Cancelled), slog.Int("remaining", summary.Candidates-summary.Cancelled-summary.Skipped-summary.Failed))

			return summary, ctx.Err()
		default:
		}

		cancelled, recipient, err := srv.cancelOne(ctx, candidate)
		switch {
		case err != nil:
			summary.Failed++
			srv.log(ctx).Error("Failed to cancel appointment",
				slog.Any("error", err), slog.Any("appointment_id", candidate.ID))
		case !cancelled:
			summary.Skipped++
		default:
			summary.Cancelled++
			srv.notifyCancellation(ctx, candidate, recipient)
		}
	}

	srv.log(ctx).Info("Auto-cancel sweep completed",
		slog.Int("candidates", summary.Candidates),
		slog.Int("cancelled", summary.Cancelled),
		slog.Int("skipped", summary.Skipped),
		slog.Int("failed", summary.Failed),
	)

	return summary, nil
}

// cancelOne applies the conditional cancellation and its audit record in one
// transaction. A false return means the appointment left PROGRAMADO between
// the candidate read and the update, which is benign.
func (srv *autoCancelService) cancelOne(ctx context.Context, appointment *entity.Appointment) (bool, string, error) {
	var (
		cancelled bool
		recipient string
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		updated, err := repoFactory.AppointmentRepo().ConditionalUpdateState(ctx, appointment.ID,
			[]entity.AppointmentState{entity.StateProgramado}, entity.StateCancelado)
		if err != nil {
			return errors.Wrap(err, "failed to update appointment state")
		}
		if !updated {
			return nil
		}

		record := &entity.AuditRecord{
			EntityType: entity.AuditEntityAppointment,
			EntityID:   appointment.ID,
			Action:     entity.AuditActionAutoCancel,
			Actor:      autoCancelActor,
			Before:     string(entity.StateProgramado),
			After:      string(entity.StateCancelado),
			Reason:     fmt.Sprintf("not confirmed %dh before the scheduled time", srv.leadHours),
			RecordedAt: srv.clock.Now(),
		}
		if err := repoFactory.AuditRepo().Record(ctx, record); err != nil {
			return errors.Wrap(err, "failed to record audit entry")
		}

		patient, err := repoFactory.PatientRepo().FindByID(ctx, appointment.PatientID)
		if err != nil {
			// The cancellation stands even when the recipient lookup fails;
			// the notice is best-effort anyway.
			srv.log(ctx).Warn("Cancelled appointment has no reachable patient",
				slog.Any("appointment_id", appointment.ID), slog.Any("error", err))
		} else {
			recipient = patient.Email
		}

		cancelled = true

		return nil
	})

	return cancelled, recipient, err
}

// notifyCancellation dispatches the best-effort cancellation notice.
func (srv *autoCancelService) notifyCancellation(ctx context.Context, appointment *entity.Appointment, recipient string) {
	if recipient == "" {
		return
	}

	notification := &service.Notification{
		Kind:      service.NotificationAutoCancelNotice,
		Recipient: recipient,
		Context: map[string]string{
			"appointment_id": appointment.ID.String(),
			"scheduled_at":   appointment.ScheduledAt.In(srv.clock.Location()).Format(time.RFC3339),
			"specialty":      appointment.Specialty,
			"physician":      appointment.Physician,
		},
	}
	if err := srv.notifier.Send(ctx, notification); err != nil {
		srv.log(ctx).Warn("Cancellation notice dispatch failed",
			slog.Any("error", err), slog.Any("appointment_id", appointment.ID))
	}
}

// CountPending counts what the next sweep would target, without mutating.
func (srv *autoCancelService) CountPending(ctx context.Context) (int, error) {
	from, to := srv.cancelWindow()

	var pending int
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		count, err := repoFactory.AppointmentRepo().CountByStateAndWindow(ctx,
			[]entity.AppointmentState{entity.StateProgramado}, from, to)
		if err != nil {
			return errors.Wrap(err, "failed to count pending cancellations")
		}
		pending = count

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to count pending cancellations", slog.Any("error", err))

		return 0, errors.Wrap(err, "failed to count pending cancellations")
	}

	return pending, nil
}

package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "clinica/internal/delivery/context"
	"clinica/internal/domain/entity"
	domainerrors "clinica/internal/domain/errors"
	"clinica/internal/domain/repository"
	"clinica/internal/domain/service"
	"clinica/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// appointmentService implements the AppointmentUsecase interface.
type appointmentService struct {
	txManager repository.TransactionManager
	clock     service.Clock
	logger    *slog.Logger
}

// NewAppointmentService is the constructor for appointmentService.
func NewAppointmentService(
	txManager repository.TransactionManager,
	clock service.Clock,
	logger *slog.Logger,
) usecase.AppointmentUsecase {
	return &appointmentService{
		txManager: txManager,
		clock:     clock,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *appointmentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Confirm moves the appointment to CONFIRMADO, conditional on it still awaiting
// confirmation. This is the user half of the confirm-vs-cancel race: the
// conditional update decides the winner, never a prior read.
func (srv *appointmentService) Confirm(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		appointmentRepo := repoFactory.AppointmentRepo()

		appointment, err := appointmentRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrAppointmentNotFound) {
				return errors.Wrap(domainerrors.ErrAppointmentNotFound, "appointment not found")
			}

			return errors.Wrap(err, "failed to find appointment")
		}

		confirmable := []entity.AppointmentState{entity.StateProgramado, entity.StateReagendado}
		updated, err := appointmentRepo.ConditionalUpdateState(ctx, id, confirmable, entity.StateConfirmado)
		if err != nil {
			return errors.Wrap(err, "failed to confirm appointment")
		}
		if !updated {
			// The state moved between the read and the update, typically
			// because the auto-cancel sweep got there first.
			return errors.Wrap(domainerrors.ErrInvalidAppointmentState, "appointment no longer confirmable")
		}

		record := &entity.AuditRecord{
			EntityType: entity.AuditEntityAppointment,
			EntityID:   id,
			Action:     entity.AuditActionConfirm,
			Actor:      "patient",
			Before:     string(appointment.State),
			After:      string(entity.StateConfirmado),
			RecordedAt: srv.clock.Now(),
		}
		if err := repoFactory.AuditRepo().Record(ctx, record); err != nil {
			return errors.Wrap(err, "failed to record audit entry")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Appointment confirmation rejected", slog.Any("error", err), slog.Any("appointment_id", id))

		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return err
		}

		return fmt.Errorf("failed to confirm appointment: %w", err)
	}

	srv.log(ctx).Info("Appointment confirmed", slog.Any("appointment_id", id))

	return nil
}

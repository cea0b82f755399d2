// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"clinica/internal/domain/entity"
	"clinica/internal/domain/repository"
	"clinica/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// appointmentRepository implements the repository.AppointmentRepository interface.
type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository is the constructor for appointmentRepository.
func NewAppointmentRepository(db *gorm.DB) repository.AppointmentRepository {
	return &appointmentRepository{
		db: db,
	}
}

// FindByID retrieves a single appointment.
func (repo *appointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	var appointmentM model.AppointmentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&appointmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAppointmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find appointment by ID")
	}

	return appointmentM.ToDomain(), nil
}

// FindByStateAndWindow returns appointments in the given states scheduled in (from, to].
func (repo *appointmentRepository) FindByStateAndWindow(ctx context.Context, states []entity.AppointmentState, from, to time.Time) ([]*entity.Appointment, error) {
	var appointmentModels []*model.AppointmentModel

	if err := repo.db.WithContext(ctx).
		Where("state IN ? AND scheduled_at > ? AND scheduled_at <= ?", stateStrings(states), from, to).
		Order("scheduled_at ASC").
		Find(&appointmentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find appointments by state and window")
	}

	appointments := make([]*entity.Appointment, 0, len(appointmentModels))
	for _, appointmentM := range appointmentModels {
		appointments = append(appointments, appointmentM.ToDomain())
	}

	return appointments, nil
}

// CountByStateAndWindow is the count-only form of FindByStateAndWindow.
func (repo *appointmentRepository) CountByStateAndWindow(ctx context.Context, states []entity.AppointmentState, from, to time.Time) (int, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.AppointmentModel{}).
		Where("state IN ? AND scheduled_at > ? AND scheduled_at <= ?", stateStrings(states), from, to).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count appointments by state and window")
	}

	return int(count), nil
}

// ConditionalUpdateState moves the appointment to next only while its current
// state is still one of expected. The WHERE clause is the race guard: when a
// patient confirms at the same instant the sweep cancels, whichever write lands
// first wins and the loser affects zero rows.
func (repo *appointmentRepository) ConditionalUpdateState(ctx context.Context, id uuid.UUID, expected []entity.AppointmentState, next entity.AppointmentState) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.AppointmentModel{}).
		Where("id = ? AND state IN ?", id, stateStrings(expected)).
		Updates(map[string]interface{}{
			"state":      string(next),
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to update appointment state")
	}

	return result.RowsAffected > 0, nil
}

// MarkReminded stamps reminded_at once; later sweeps affect zero rows.
func (repo *appointmentRepository) MarkReminded(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.AppointmentModel{}).
		Where("id = ? AND reminded_at IS NULL", id).
		Update("reminded_at", at)

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to mark appointment reminded")
	}

	return result.RowsAffected > 0, nil
}

func stateStrings(states []entity.AppointmentState) []string {
	values := make([]string, 0, len(states))
	for _, state := range states {
		values = append(values, string(state))
	}

	return values
}

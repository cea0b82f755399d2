package model

import (
	"time"

	"clinica/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentModel mirrors the 'appointments' table.
// The composite index on (state, scheduled_at) serves both sweep predicates.
type AppointmentModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PatientID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	ScheduledAt time.Time  `gorm:"not null;index:idx_appointments_state_scheduled"`
	Specialty   string     `gorm:"type:varchar(100);not null"`
	Physician   string     `gorm:"type:varchar(150);not null"`
	Room        string     `gorm:"type:varchar(50)"`
	State       string     `gorm:"type:varchar(20);not null;index:idx_appointments_state_scheduled"`
	RemindedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AppointmentModel) TableName() string {
	return "appointments"
}

// ToDomain converts the GORM model to a domain Appointment entity.
func (m *AppointmentModel) ToDomain() *entity.Appointment {
	if m == nil {
		return nil
	}

	return &entity.Appointment{
		ID:          m.ID,
		PatientID:   m.PatientID,
		ScheduledAt: m.ScheduledAt,
		Specialty:   m.Specialty,
		Physician:   m.Physician,
		Room:        m.Room,
		State:       entity.AppointmentState(m.State),
		RemindedAt:  m.RemindedAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

package model

import (
	"time"

	"clinica/internal/domain/entity"

	"github.com/google/uuid"
)

// PatientModel mirrors the 'patients' table.
type PatientModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	FullName     string    `gorm:"type:varchar(200);not null"`
	PasswordHash string    `gorm:"type:varchar(255)"`
	Active       bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (PatientModel) TableName() string {
	return "patients"
}

// ToDomain converts the GORM model to a domain Patient entity.
func (m *PatientModel) ToDomain() *entity.Patient {
	if m == nil {
		return nil
	}

	return &entity.Patient{
		ID:           m.ID,
		Email:        m.Email,
		FullName:     m.FullName,
		PasswordHash: m.PasswordHash,
		Active:       m.Active,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

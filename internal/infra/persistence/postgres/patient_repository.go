// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"clinica/internal/domain/entity"
	domainerrors "clinica/internal/domain/errors"
	"clinica/internal/domain/repository"
	"clinica/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// patientRepository implements the repository.PatientRepository interface.
type patientRepository struct {
	db *gorm.DB
}

// NewPatientRepository is the constructor for patientRepository.
func NewPatientRepository(db *gorm.DB) repository.PatientRepository {
	return &patientRepository{
		db: db,
	}
}

// FindByID retrieves a patient by ID.
func (repo *patientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	var patientM model.PatientModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&patientM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPatientNotFound
		}

		return nil, errors.Wrap(err, "failed to find patient by ID")
	}

	return patientM.ToDomain(), nil
}

// FindByEmail retrieves a patient by email address.
func (repo *patientRepository) FindByEmail(ctx context.Context, email string) (*entity.Patient, error) {
	var patientM model.PatientModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&patientM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPatientNotFound
		}

		return nil, errors.Wrap(err, "failed to find patient by email")
	}

	return patientM.ToDomain(), nil
}

// Activate flips the patient to active, conditional on being inactive.
func (repo *patientRepository) Activate(ctx context.Context, id uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.PatientModel{}).
		Where("id = ? AND active = false", id).
		Updates(map[string]interface{}{
			"active":     true,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to activate patient")
	}

	return result.RowsAffected > 0, nil
}

// UpdatePasswordHash replaces the stored password hash.
func (repo *patientRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PatientModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"password_hash": hash,
			"updated_at":    time.Now(),
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update password hash")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPatientNotFound
	}

	return nil
}

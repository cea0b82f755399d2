// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"clinica/internal/domain/entity"
	domainerrors "clinica/internal/domain/errors"
	"clinica/internal/domain/repository"
	"clinica/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// auditRepository implements the repository.AuditRepository interface.
type auditRepository struct {
	db *gorm.DB
}

// NewAuditRepository is the constructor for auditRepository.
func NewAuditRepository(db *gorm.DB) repository.AuditRepository {
	return &auditRepository{
		db: db,
	}
}

// Record appends one audit entry.
func (repo *auditRepository) Record(ctx context.Context, record *entity.AuditRecord) error {
	recordM := model.FromAuditDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append audit record")
	}

	record.ID = recordM.ID

	return nil
}

package model

import (
	"time"

	"clinica/internal/domain/entity"

	"github.com/google/uuid"
)

// AuditRecordModel mirrors the append-only 'audit_records' table.
type AuditRecordModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	EntityType string    `gorm:"type:varchar(50);not null;index:idx_audit_entity"`
	EntityID   uuid.UUID `gorm:"type:uuid;not null;index:idx_audit_entity"`
	Action     string    `gorm:"type:varchar(50);not null"`
	Actor      string    `gorm:"type:varchar(100);not null"`
	Before     string    `gorm:"type:text"`
	After      string    `gorm:"type:text"`
	Reason     string    `gorm:"type:text"`
	RecordedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (AuditRecordModel) TableName() string {
	return "audit_records"
}

// FromAuditDomain converts a domain AuditRecord to its GORM model.
func FromAuditDomain(data *entity.AuditRecord) *AuditRecordModel {
	if data == nil {
		return nil
	}

	return &AuditRecordModel{
		ID:         data.ID,
		EntityType: data.EntityType,
		EntityID:   data.EntityID,
		Action:     data.Action,
		Actor:      data.Actor,
		Before:     data.Before,
		After:      data.After,
		Reason:     data.Reason,
		RecordedAt: data.RecordedAt,
	}
}

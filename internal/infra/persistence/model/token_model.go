package model

import (
	"time"

	"clinica/internal/domain/entity"

	"github.com/google/uuid"
)

// SecurityTokenModel mirrors the 'security_tokens' table.
// The partial index on (owner_id, purpose) WHERE NOT used backs the quota count.
type SecurityTokenModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Value     string     `gorm:"type:varchar(64);unique;not null"`
	Purpose   string     `gorm:"type:varchar(32);not null;index:idx_tokens_owner_purpose"`
	OwnerID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_tokens_owner_purpose"`
	Payload   string     `gorm:"type:text"`
	IssuedAt  time.Time  `gorm:"not null"`
	ExpiresAt time.Time  `gorm:"not null;index"`
	Used      bool       `gorm:"not null;default:false"`
	UsedAt    *time.Time
}

// TableName explicitly sets the table name for GORM.
func (SecurityTokenModel) TableName() string {
	return "security_tokens"
}

// ToDomain converts the GORM model to a domain SecurityToken entity.
func (m *SecurityTokenModel) ToDomain() *entity.SecurityToken {
	if m == nil {
		return nil
	}

	return &entity.SecurityToken{
		ID:        m.ID,
		Value:     m.Value,
		Purpose:   entity.TokenPurpose(m.Purpose),
		OwnerID:   m.OwnerID,
		Payload:   m.Payload,
		IssuedAt:  m.IssuedAt,
		ExpiresAt: m.ExpiresAt,
		Used:      m.Used,
		UsedAt:    m.UsedAt,
	}
}

// FromTokenDomain converts a domain SecurityToken entity to its GORM model.
func FromTokenDomain(data *entity.SecurityToken) *SecurityTokenModel {
	if data == nil {
		return nil
	}

	return &SecurityTokenModel{
		ID:        data.ID,
		Value:     data.Value,
		Purpose:   string(data.Purpose),
		OwnerID:   data.OwnerID,
		Payload:   data.Payload,
		IssuedAt:  data.IssuedAt,
		ExpiresAt: data.ExpiresAt,
		Used:      data.Used,
		UsedAt:    data.UsedAt,
	}
}

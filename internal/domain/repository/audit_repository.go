package repository

import (
	"context"

	"clinica/internal/domain/entity"
)

// AuditRepository appends audit records. The table is append-only; there are no
// read or delete operations in the core.
type AuditRepository interface {
	// Record persists one audit entry. Called inside the same transaction as the
	// state mutation it describes.
	Record(ctx context.Context, record *entity.AuditRecord) error
}

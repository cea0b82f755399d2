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

// tokenRepository implements the repository.TokenRepository interface.
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository is the constructor for tokenRepository.
func NewTokenRepository(db *gorm.DB) repository.TokenRepository {
	return &tokenRepository{
		db: db,
	}
}

// Save persists a newly issued token.
func (repo *tokenRepository) Save(ctx context.Context, token *entity.SecurityToken) error {
	tokenM := model.FromTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// A value collision is practically impossible at 64 random chars;
			// treat it as an issue failure rather than retrying here.
			return domainerrors.ErrTokenIssueFailed.WrapMessage("token value already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPatientNotFound.WrapMessage("invalid token owner reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save security token")
	}

	token.ID = tokenM.ID

	return nil
}

// FindByValue retrieves a token by its opaque value.
func (repo *tokenRepository) FindByValue(ctx context.Context, value string) (*entity.SecurityToken, error) {
	var tokenM model.SecurityTokenModel

	if err := repo.db.WithContext(ctx).
		Where("value = ?", value).
		First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find token by value")
	}

	return tokenM.ToDomain(), nil
}

// CountValid counts unused, unexpired tokens of a purpose for one owner.
func (repo *tokenRepository) CountValid(ctx context.Context, ownerID uuid.UUID, purpose entity.TokenPurpose, now time.Time) (int, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.SecurityTokenModel{}).
		Where("owner_id = ? AND purpose = ? AND used = false AND expires_at > ?", ownerID, string(purpose), now).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count valid tokens")
	}

	return int(count), nil
}

// ConsumeByValue flips used=false to used=true in one conditional update.
// The WHERE used = false clause is the entire race guard: of two concurrent
// consumers exactly one update affects a row.
func (repo *tokenRepository) ConsumeByValue(ctx context.Context, value string, usedAt time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.SecurityTokenModel{}).
		Where("value = ? AND used = false", value).
		Updates(map[string]interface{}{
			"used":    true,
			"used_at": usedAt,
		})

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to consume token")
	}

	return result.RowsAffected > 0, nil
}

// InvalidateAll marks every unused token of the owner and purpose as used,
// except the one being consumed.
func (repo *tokenRepository) InvalidateAll(ctx context.Context, ownerID uuid.UUID, purpose entity.TokenPurpose, exceptID uuid.UUID, usedAt time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.SecurityTokenModel{}).
		Where("owner_id = ? AND purpose = ? AND used = false AND id <> ?", ownerID, string(purpose), exceptID).
		Updates(map[string]interface{}{
			"used":    true,
			"used_at": usedAt,
		})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to invalidate tokens")
	}

	return result.RowsAffected, nil
}

// DeleteExpiredBefore hard-deletes expired tokens and used tokens past retention.
func (repo *tokenRepository) DeleteExpiredBefore(ctx context.Context, expiredCutoff, usedCutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at < ? OR (used = true AND used_at < ?)", expiredCutoff, usedCutoff).
		Delete(&model.SecurityTokenModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to purge tokens")
	}

	return result.RowsAffected, nil
}

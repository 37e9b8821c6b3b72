// internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	authModel "communityhub_backend/internals/features/users/auth/model"
)

// TokenBlacklister is the persistence surface of logout: revoke a token and
// answer revocation checks. Implements the auth middleware's TokenStore.
type TokenBlacklister interface {
	BlacklistToken(token string, ttl time.Duration) error
	IsBlacklisted(token string) (bool, error)
}

type AuthRepository struct {
	DB *gorm.DB
}

func NewAuthRepository(db *gorm.DB) *AuthRepository {
	return &AuthRepository{DB: db}
}

func (r *AuthRepository) BlacklistToken(token string, ttl time.Duration) error {
	return r.DB.Create(&authModel.TokenBlacklist{
		Token:     token,
		ExpiredAt: time.Now().UTC().Add(ttl),
	}).Error
}

func (r *AuthRepository) IsBlacklisted(token string) (bool, error) {
	var existing authModel.TokenBlacklist
	err := r.DB.Where("token = ?", token).First(&existing).Error
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}

// CleanupExpiredBlacklist removes rows whose expiry passed before the cutoff,
// in batches. Returns how many rows went.
func (r *AuthRepository) CleanupExpiredBlacklist(before time.Time, limit int) (int64, error) {
	var expired []authModel.TokenBlacklist
	if err := r.DB.
		Where("expired_at < ?", before).
		Limit(limit).
		Find(&expired).Error; err != nil {
		return 0, err
	}
	if len(expired) == 0 {
		return 0, nil
	}
	if err := r.DB.Unscoped().Delete(&expired).Error; err != nil {
		return 0, err
	}
	return int64(len(expired)), nil
}

package repositories

import (
	"errors"
	"time"

	"artizia_backend/internal/models"

	"gorm.io/gorm"
)

var (
	// ErrAccessTokenNotFound is returned when the token row is missing,
	// which means the token was revoked or never issued.
	ErrAccessTokenNotFound = errors.New("access token not found")
)

type AccessTokenRepository interface {
	Create(db *gorm.DB, token *models.AccessToken) error
	FindByTokenID(db *gorm.DB, tokenID string) (*models.AccessToken, error)
	DeleteByTokenID(db *gorm.DB, tokenID string) error
	DeleteByUserID(db *gorm.DB, userID string) error
	CleanExpired(db *gorm.DB) error
}

type accessTokenRepository struct{}

func NewAccessTokenRepository() AccessTokenRepository {
	return &accessTokenRepository{}
}

func (r *accessTokenRepository) Create(db *gorm.DB, token *models.AccessToken) error {
	return db.Create(token).Error
}

func (r *accessTokenRepository) FindByTokenID(db *gorm.DB, tokenID string) (*models.AccessToken, error) {
	var token models.AccessToken
	if err := db.Where("token_id = ?", tokenID).First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccessTokenNotFound
		}
		return nil, err
	}
	return &token, nil
}

func (r *accessTokenRepository) DeleteByTokenID(db *gorm.DB, tokenID string) error {
	result := db.Where("token_id = ?", tokenID).Delete(&models.AccessToken{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAccessTokenNotFound
	}
	return nil
}

func (r *accessTokenRepository) DeleteByUserID(db *gorm.DB, userID string) error {
	return db.Where("user_id = ?", userID).Delete(&models.AccessToken{}).Error
}

func (r *accessTokenRepository) CleanExpired(db *gorm.DB) error {
	return db.Where("expires_at < ?", time.Now()).Delete(&models.AccessToken{}).Error
}

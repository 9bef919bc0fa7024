package repository

import (
	"github.com/rohannso/Quiz-backend/internal/model"
	"gorm.io/gorm"
)

type TokenRepository interface {
	Create(token *model.AuthToken) error
	FindByKey(key string) (*model.AuthToken, error)
	FindByUserID(userID uint) (*model.AuthToken, error)
	DeleteByKey(key string) error
}

type tokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) Create(token *model.AuthToken) error {
	return r.db.Create(token).Error
}

func (r *tokenRepository) FindByKey(key string) (*model.AuthToken, error) {
	var token model.AuthToken
	if err := r.db.Preload("User").Where("key = ?", key).First(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *tokenRepository) FindByUserID(userID uint) (*model.AuthToken, error) {
	var token model.AuthToken
	if err := r.db.Where("user_id = ?", userID).First(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *tokenRepository) DeleteByKey(key string) error {
	return r.db.Where("key = ?", key).Delete(&model.AuthToken{}).Error
}

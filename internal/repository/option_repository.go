package repository

import (
	"github.com/rohannso/Quiz-backend/internal/model"
	"gorm.io/gorm"
)

type OptionRepository interface {
	// FindByIDAndQuestionID is the scoring lookup: the option must both
	// exist and belong to the claimed question, otherwise
	// gorm.ErrRecordNotFound is returned.
	FindByIDAndQuestionID(optionID, questionID uint) (*model.Option, error)
	FindByQuestionID(questionID uint) ([]model.Option, error)
}

type optionRepository struct {
	db *gorm.DB
}

func NewOptionRepository(db *gorm.DB) OptionRepository {
	return &optionRepository{db: db}
}

func (r *optionRepository) FindByIDAndQuestionID(optionID, questionID uint) (*model.Option, error) {
	var option model.Option
	err := r.db.Where("id = ? AND question_id = ?", optionID, questionID).First(&option).Error
	if err != nil {
		return nil, err
	}
	return &option, nil
}

func (r *optionRepository) FindByQuestionID(questionID uint) ([]model.Option, error) {
	var options []model.Option
	if err := r.db.Where("question_id = ?", questionID).Order("id ASC").Find(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}

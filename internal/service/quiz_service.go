package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rohannso/Quiz-backend/internal/dto"
	"github.com/rohannso/Quiz-backend/internal/model"
	"github.com/rohannso/Quiz-backend/internal/repository"
	"github.com/rohannso/Quiz-backend/internal/validation"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const duplicateTitleMessage = "A quiz with this title already exists."

type QuizService interface {
	CreateQuiz(req dto.QuizRequest) (*dto.QuizResponse, error)
	GetQuiz(id uint) (*dto.QuizDetailResponse, error)
	ListQuizzes() ([]dto.QuizResponse, error)
	UpdateQuiz(id uint, req dto.QuizRequest) (*dto.QuizResponse, error)
	DeleteQuiz(id uint) (string, error)
}

type quizService struct {
	quizRepo repository.QuizRepository
}

func NewQuizService(quizRepo repository.QuizRepository) QuizService {
	return &quizService{quizRepo: quizRepo}
}

func (s *quizService) CreateQuiz(req dto.QuizRequest) (*dto.QuizResponse, error) {
	title, msg := validation.QuizTitle(req.Title)
	if msg != "" {
		return nil, validation.FieldError("title", msg)
	}

	exists, err := s.quizRepo.ExistsByTitle(title, 0)
	if err != nil {
		return nil, fmt.Errorf("checking title uniqueness: %w", err)
	}
	if exists {
		return nil, validation.FieldError("title", duplicateTitleMessage)
	}

	quiz := model.Quiz{Title: title}
	if err := s.quizRepo.Create(&quiz); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, validation.FieldError("title", duplicateTitleMessage)
		}
		log.Error().Err(err).Msg("Failed to create quiz")
		return nil, fmt.Errorf("creating quiz: %w", err)
	}

	var resp dto.QuizResponse
	copier.Copy(&resp, &quiz)
	return &resp, nil
}

func (s *quizService) GetQuiz(id uint) (*dto.QuizDetailResponse, error) {
	quiz, err := s.quizRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, fmt.Errorf("fetching quiz %d: %w", id, err)
	}

	count, err := s.quizRepo.CountQuestions(id)
	if err != nil {
		return nil, fmt.Errorf("counting questions for quiz %d: %w", id, err)
	}

	var resp dto.QuizDetailResponse
	copier.Copy(&resp, quiz)
	resp.QuestionsCount = int(count)
	return &resp, nil
}

func (s *quizService) ListQuizzes() ([]dto.QuizResponse, error) {
	quizzes, err := s.quizRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list quizzes")
		return nil, fmt.Errorf("fetching quizzes: %w", err)
	}
	resp := make([]dto.QuizResponse, 0, len(quizzes))
	copier.Copy(&resp, &quizzes)
	return resp, nil
}

func (s *quizService) UpdateQuiz(id uint, req dto.QuizRequest) (*dto.QuizResponse, error) {
	quiz, err := s.quizRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, fmt.Errorf("fetching quiz %d: %w", id, err)
	}

	title, msg := validation.QuizTitle(req.Title)
	if msg != "" {
		return nil, validation.FieldError("title", msg)
	}

	// Uniqueness excludes the record being updated.
	exists, err := s.quizRepo.ExistsByTitle(title, quiz.ID)
	if err != nil {
		return nil, fmt.Errorf("checking title uniqueness: %w", err)
	}
	if exists {
		return nil, validation.FieldError("title", duplicateTitleMessage)
	}

	quiz.Title = title
	if err := s.quizRepo.Update(quiz); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, validation.FieldError("title", duplicateTitleMessage)
		}
		log.Error().Err(err).Uint("quizID", id).Msg("Failed to update quiz")
		return nil, fmt.Errorf("updating quiz %d: %w", id, err)
	}

	var resp dto.QuizResponse
	copier.Copy(&resp, quiz)
	return &resp, nil
}

// DeleteQuiz removes the quiz and cascades to its questions and options.
// It returns the deleted quiz's title for the response message.
func (s *quizService) DeleteQuiz(id uint) (string, error) {
	quiz, err := s.quizRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrQuizNotFound
		}
		return "", fmt.Errorf("fetching quiz %d: %w", id, err)
	}
	if err := s.quizRepo.Delete(id); err != nil {
		log.Error().Err(err).Uint("quizID", id).Msg("Failed to delete quiz")
		return "", fmt.Errorf("deleting quiz %d: %w", id, err)
	}
	return quiz.Title, nil
}

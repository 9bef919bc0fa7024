package service

import (
	"errors"
	"fmt"
	"math"

	"github.com/rohannso/Quiz-backend/internal/dto"
	"github.com/rohannso/Quiz-backend/internal/repository"
	"github.com/rohannso/Quiz-backend/internal/validation"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// TakeService is the public quiz-taking surface: the answer-stripped
// projection and the scoring engine.
type TakeService interface {
	TakeQuiz(quizID uint) (*dto.TakeQuizResponse, error)
	SubmitQuiz(quizID uint, req dto.SubmitRequest) (*dto.ScoreResponse, error)
}

type takeService struct {
	quizRepo   repository.QuizRepository
	optionRepo repository.OptionRepository
}

func NewTakeService(quizRepo repository.QuizRepository, optionRepo repository.OptionRepository) TakeService {
	return &takeService{quizRepo: quizRepo, optionRepo: optionRepo}
}

// TakeQuiz projects the quiz's questions for a quiz-taker. The take DTOs
// are built field by field and structurally carry no correctness flag.
func (s *takeService) TakeQuiz(quizID uint) (*dto.TakeQuizResponse, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, fmt.Errorf("fetching quiz %d: %w", quizID, err)
	}
	if len(quiz.Questions) == 0 {
		return nil, ErrQuizHasNoQuestions
	}

	questions := make([]dto.TakeQuestionResponse, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		options := make([]dto.TakeOptionResponse, 0, len(q.Options))
		for _, opt := range q.Options {
			options = append(options, dto.TakeOptionResponse{ID: opt.ID, Text: opt.Text})
		}
		questions = append(questions, dto.TakeQuestionResponse{ID: q.ID, Text: q.Text, Options: options})
	}

	return &dto.TakeQuizResponse{
		QuizTitle:      quiz.Title,
		TotalQuestions: len(questions),
		Questions:      questions,
	}, nil
}

// SubmitQuiz scores a submission. Each answer is validated independently:
// an option that does not exist, or that belongs to a different question
// than claimed, contributes zero without raising an error. Nothing is
// persisted; resubmitting the same answers yields the same score.
func (s *takeService) SubmitQuiz(quizID uint, req dto.SubmitRequest) (*dto.ScoreResponse, error) {
	if _, err := s.quizRepo.FindByID(quizID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, fmt.Errorf("fetching quiz %d: %w", quizID, err)
	}

	// Total is the number of answers submitted, not the quiz's question
	// count. Binding already rejects empty lists; re-check before dividing.
	total := len(req.Answers)
	if total == 0 {
		return nil, validation.FieldError("answers", "At least one answer is required.")
	}

	score := 0
	for _, answer := range req.Answers {
		option, err := s.optionRepo.FindByIDAndQuestionID(answer.OptionID, answer.QuestionID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			log.Error().Err(err).
				Uint("optionID", answer.OptionID).
				Uint("questionID", answer.QuestionID).
				Msg("Option lookup failed during scoring")
			return nil, fmt.Errorf("scoring answer for question %d: %w", answer.QuestionID, err)
		}
		if option.IsCorrect {
			score++
		}
	}

	percentage := math.Round(float64(score)/float64(total)*100*100) / 100
	return &dto.ScoreResponse{Score: score, Total: total, Percentage: percentage}, nil
}

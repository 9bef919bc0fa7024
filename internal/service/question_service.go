package service

import (
	"errors"
	"fmt"

	"github.com/rohannso/Quiz-backend/internal/dto"
	"github.com/rohannso/Quiz-backend/internal/model"
	"github.com/rohannso/Quiz-backend/internal/repository"
	"github.com/rohannso/Quiz-backend/internal/validation"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const duplicateQuestionMessage = "A question with this text already exists in this quiz."

type QuestionService interface {
	CreateQuestion(req dto.QuestionCreateRequest) (*dto.QuestionResponse, error)
	GetQuestion(id uint) (*dto.QuestionResponse, error)
	ListQuestions(quizID *uint) ([]dto.QuestionResponse, error)
	UpdateQuestion(id uint, req dto.QuestionUpdateRequest) (*dto.QuestionResponse, error)
	DeleteQuestion(id uint) error
}

type questionService struct {
	questionRepo repository.QuestionRepository
	quizRepo     repository.QuizRepository
	db           *gorm.DB
}

func NewQuestionService(questionRepo repository.QuestionRepository, quizRepo repository.QuizRepository, db *gorm.DB) QuestionService {
	return &questionService{questionRepo: questionRepo, quizRepo: quizRepo, db: db}
}

// CreateQuestion persists a question together with its full option set as
// one transaction. Any validation failure leaves no partial writes.
func (s *questionService) CreateQuestion(req dto.QuestionCreateRequest) (*dto.QuestionResponse, error) {
	quiz, err := s.quizRepo.FindByID(req.QuizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, validation.FieldError("quiz", "Quiz with this ID does not exist.")
		}
		return nil, fmt.Errorf("fetching quiz %d: %w", req.QuizID, err)
	}

	text, msg := validation.QuestionText(req.Text)
	if msg != "" {
		return nil, validation.FieldError("text", msg)
	}

	exists, err := s.questionRepo.ExistsByTextInQuiz(quiz.ID, text, 0)
	if err != nil {
		return nil, fmt.Errorf("checking question uniqueness: %w", err)
	}
	if exists {
		return nil, validation.FieldError("text", duplicateQuestionMessage)
	}

	options, verr := validateOptionSet(req.Options)
	if verr != nil {
		return nil, verr
	}

	question := model.Question{
		QuizID:  quiz.ID,
		Text:    text,
		Options: options,
	}
	// Question and options go in together; gorm writes the associated
	// options in insertion order, which is the display order.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&question).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the check-then-insert race; the (quiz_id, LOWER(text))
			// index is the authoritative guard.
			return nil, validation.FieldError("text", duplicateQuestionMessage)
		}
		log.Error().Err(err).Uint("quizID", quiz.ID).Msg("Failed to create question with options")
		return nil, fmt.Errorf("creating question: %w", err)
	}

	resp := questionResponse(&question, quiz.Title)
	return &resp, nil
}

// validateOptionSet enforces the option-set invariants: 2-6 options, each
// text valid, normalized texts pairwise distinct, exactly one correct.
// Returned options carry trimmed text and preserve input order.
func validateOptionSet(reqs []dto.OptionRequest) ([]model.Option, *validation.Error) {
	if len(reqs) < 2 {
		return nil, validation.FieldError("options", "At least 2 options are required.")
	}
	if len(reqs) > 6 {
		return nil, validation.FieldError("options", "Maximum 6 options are allowed.")
	}

	options := make([]model.Option, 0, len(reqs))
	seen := make(map[string]bool, len(reqs))
	correctCount := 0
	for _, optReq := range reqs {
		text, msg := validation.OptionText(optReq.Text)
		if msg != "" {
			return nil, validation.FieldError("options", msg)
		}
		normalized := validation.Normalize(text)
		if seen[normalized] {
			return nil, validation.FieldError("options", "Duplicate options are not allowed.")
		}
		seen[normalized] = true

		isCorrect := optReq.IsCorrect != nil && *optReq.IsCorrect
		if isCorrect {
			correctCount++
		}
		options = append(options, model.Option{Text: text, IsCorrect: isCorrect})
	}

	if correctCount == 0 {
		return nil, validation.FieldError("options", "At least one option must be marked as correct.")
	}
	if correctCount > 1 {
		return nil, validation.FieldError("options", "Only one option can be marked as correct.")
	}
	return options, nil
}

func (s *questionService) GetQuestion(id uint) (*dto.QuestionResponse, error) {
	question, err := s.questionRepo.FindByIDWithOptions(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("fetching question %d: %w", id, err)
	}
	resp := questionResponse(question, quizTitle(question))
	return &resp, nil
}

func (s *questionService) ListQuestions(quizID *uint) ([]dto.QuestionResponse, error) {
	var questions []model.Question
	var err error
	if quizID != nil {
		questions, err = s.questionRepo.FindByQuizID(*quizID)
	} else {
		questions, err = s.questionRepo.FindAll()
	}
	if err != nil {
		log.Error().Err(err).Msg("Failed to list questions")
		return nil, fmt.Errorf("fetching questions: %w", err)
	}

	resp := make([]dto.QuestionResponse, 0, len(questions))
	for i := range questions {
		resp = append(resp, questionResponse(&questions[i], quizTitle(&questions[i])))
	}
	return resp, nil
}

// UpdateQuestion revalidates and replaces the question text. The option
// set of a persisted question is immutable; replace the question to
// change its options.
func (s *questionService) UpdateQuestion(id uint, req dto.QuestionUpdateRequest) (*dto.QuestionResponse, error) {
	question, err := s.questionRepo.FindByIDWithOptions(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("fetching question %d: %w", id, err)
	}

	text, msg := validation.QuestionText(req.Text)
	if msg != "" {
		return nil, validation.FieldError("text", msg)
	}

	exists, err := s.questionRepo.ExistsByTextInQuiz(question.QuizID, text, question.ID)
	if err != nil {
		return nil, fmt.Errorf("checking question uniqueness: %w", err)
	}
	if exists {
		return nil, validation.FieldError("text", duplicateQuestionMessage)
	}

	question.Text = text
	if err := s.questionRepo.Update(question); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, validation.FieldError("text", duplicateQuestionMessage)
		}
		log.Error().Err(err).Uint("questionID", id).Msg("Failed to update question")
		return nil, fmt.Errorf("updating question %d: %w", id, err)
	}

	resp := questionResponse(question, quizTitle(question))
	return &resp, nil
}

// DeleteQuestion removes the question and its options as one transaction.
func (s *questionService) DeleteQuestion(id uint) error {
	if _, err := s.questionRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrQuestionNotFound
		}
		return fmt.Errorf("fetching question %d: %w", id, err)
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&model.Option{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Question{}, id).Error
	})
	if err != nil {
		log.Error().Err(err).Uint("questionID", id).Msg("Failed to delete question")
		return fmt.Errorf("deleting question %d: %w", id, err)
	}
	return nil
}

func questionResponse(q *model.Question, quizTitle string) dto.QuestionResponse {
	options := make([]dto.OptionResponse, 0, len(q.Options))
	for _, opt := range q.Options {
		options = append(options, dto.OptionResponse{ID: opt.ID, Text: opt.Text, IsCorrect: opt.IsCorrect})
	}
	return dto.QuestionResponse{
		ID:        q.ID,
		QuizID:    q.QuizID,
		QuizTitle: quizTitle,
		Text:      q.Text,
		Options:   options,
		CreatedAt: q.CreatedAt,
	}
}

func quizTitle(q *model.Question) string {
	if q.Quiz != nil {
		return q.Quiz.Title
	}
	return ""
}

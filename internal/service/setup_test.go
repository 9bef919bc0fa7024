package service_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/rohannso/Quiz-backend/database"
	"github.com/rohannso/Quiz-backend/internal/dto"
	"github.com/rohannso/Quiz-backend/internal/repository"
	"github.com/rohannso/Quiz-backend/internal/service"
	"gorm.io/gorm"
)

type env struct {
	db        *gorm.DB
	auth      service.AuthService
	quizzes   service.QuizService
	questions service.QuestionService
	take      service.TakeService
}

func newTestEnv(t *testing.T) *env {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// A pooled :memory: connection per goroutine would mean a fresh empty
	// database per connection; pin the pool to one.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	// The full migration, functional unique indexes included, so the
	// duplicate-key paths behave as they do in production.
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	quizRepo := repository.NewQuizRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	optionRepo := repository.NewOptionRepository(db)

	return &env{
		db:        db,
		auth:      service.NewAuthService(repository.NewUserRepository(db), repository.NewTokenRepository(db)),
		quizzes:   service.NewQuizService(quizRepo),
		questions: service.NewQuestionService(questionRepo, quizRepo, db),
		take:      service.NewTakeService(quizRepo, optionRepo),
	}
}

func (e *env) mustCreateQuiz(t *testing.T, title string) *dto.QuizResponse {
	t.Helper()
	quiz, err := e.quizzes.CreateQuiz(dto.QuizRequest{Title: title})
	if err != nil {
		t.Fatalf("create quiz %q: %v", title, err)
	}
	return quiz
}

func (e *env) mustCreateQuestion(t *testing.T, quizID uint, text string, options []dto.OptionRequest) *dto.QuestionResponse {
	t.Helper()
	question, err := e.questions.CreateQuestion(dto.QuestionCreateRequest{
		QuizID:  quizID,
		Text:    text,
		Options: options,
	})
	if err != nil {
		t.Fatalf("create question %q: %v", text, err)
	}
	return question
}

func boolPtr(b bool) *bool { return &b }

func correct(text string) dto.OptionRequest {
	return dto.OptionRequest{Text: text, IsCorrect: boolPtr(true)}
}

func wrong(text string) dto.OptionRequest {
	return dto.OptionRequest{Text: text, IsCorrect: boolPtr(false)}
}

func (e *env) countRows(t *testing.T, value interface{}) int64 {
	t.Helper()
	var count int64
	if err := e.db.Model(value).Count(&count).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return count
}

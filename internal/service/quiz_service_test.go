package service_test

import (
	"errors"
	"testing"

	"github.com/rohannso/Quiz-backend/internal/dto"
	"github.com/rohannso/Quiz-backend/internal/model"
	"github.com/rohannso/Quiz-backend/internal/service"
	"github.com/rohannso/Quiz-backend/internal/validation"
	"gorm.io/gorm"
)

func TestCreateQuizTrimsTitle(t *testing.T) {
	e := newTestEnv(t)

	quiz := e.mustCreateQuiz(t, "  General Knowledge  ")
	if quiz.Title != "General Knowledge" {
		t.Fatalf("title = %q, want trimmed", quiz.Title)
	}
	if quiz.ID == 0 {
		t.Fatal("expected a persisted ID")
	}
}

func TestCreateQuizRejectsInvalidTitles(t *testing.T) {
	e := newTestEnv(t)

	cases := []struct {
		name  string
		title string
	}{
		{"blank", "   "},
		{"too short", "ab"},
		{"no alphanumeric", "!!!"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.quizzes.CreateQuiz(dto.QuizRequest{Title: tc.title})
			var verr *validation.Error
			if !errors.As(err, &verr) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if _, ok := verr.Fields["title"]; !ok {
				t.Fatalf("expected a title field error, got %v", verr.Fields)
			}
		})
	}
}

func TestQuizTitleUniquenessIsCaseInsensitive(t *testing.T) {
	e := newTestEnv(t)
	e.mustCreateQuiz(t, "Capitals")

	_, err := e.quizzes.CreateQuiz(dto.QuizRequest{Title: "CAPITALS"})
	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if verr.Fields["title"] != "A quiz with this title already exists." {
		t.Fatalf("unexpected message: %q", verr.Fields["title"])
	}
}

// The service-level existence check is only a pre-filter; a writer that
// slips past it (a concurrent create racing the check) must be stopped
// by the LOWER(title) unique index itself.
func TestTitleIndexRejectsCaseVariantDuplicates(t *testing.T) {
	e := newTestEnv(t)
	e.mustCreateQuiz(t, "Capitals")

	err := e.db.Create(&model.Quiz{Title: "CAPITALS"}).Error
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected ErrDuplicatedKey from direct insert, got %v", err)
	}
}

func TestUpdateQuizExcludesSelfFromUniqueness(t *testing.T) {
	e := newTestEnv(t)
	quiz := e.mustCreateQuiz(t, "Capitals")
	e.mustCreateQuiz(t, "Rivers")

	// Re-saving with its own title (different case) must be allowed.
	updated, err := e.quizzes.UpdateQuiz(quiz.ID, dto.QuizRequest{Title: "CAPITALS"})
	if err != nil {
		t.Fatalf("update with own title failed: %v", err)
	}
	if updated.Title != "CAPITALS" {
		t.Fatalf("title = %q, want %q", updated.Title, "CAPITALS")
	}

	// Colliding with another quiz's title must not.
	_, err = e.quizzes.UpdateQuiz(quiz.ID, dto.QuizRequest{Title: "rivers"})
	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGetQuizReportsQuestionCount(t *testing.T) {
	e := newTestEnv(t)
	quiz := e.mustCreateQuiz(t, "Capitals")
	e.mustCreateQuestion(t, quiz.ID, "What is the capital of France?", []dto.OptionRequest{correct("Paris"), wrong("Lyon")})
	e.mustCreateQuestion(t, quiz.ID, "What is the capital of Peru?", []dto.OptionRequest{correct("Lima"), wrong("Cusco")})

	detail, err := e.quizzes.GetQuiz(quiz.ID)
	if err != nil {
		t.Fatalf("get quiz failed: %v", err)
	}
	if detail.QuestionsCount != 2 {
		t.Fatalf("questions_count = %d, want 2", detail.QuestionsCount)
	}
}

func TestGetQuizNotFound(t *testing.T) {
	e := newTestEnv(t)
	if _, err := e.quizzes.GetQuiz(12345); !errors.Is(err, service.ErrQuizNotFound) {
		t.Fatalf("expected ErrQuizNotFound, got %v", err)
	}
}

func TestDeleteQuizCascadesToQuestionsAndOptions(t *testing.T) {
	e := newTestEnv(t)
	quiz := e.mustCreateQuiz(t, "Capitals")
	e.mustCreateQuestion(t, quiz.ID, "What is the capital of France?", []dto.OptionRequest{correct("Paris"), wrong("Lyon"), wrong("Nice")})

	other := e.mustCreateQuiz(t, "Rivers")
	e.mustCreateQuestion(t, other.ID, "Which river runs through Cairo?", []dto.OptionRequest{correct("Nile"), wrong("Congo")})

	title, err := e.quizzes.DeleteQuiz(quiz.ID)
	if err != nil {
		t.Fatalf("delete quiz failed: %v", err)
	}
	if title != "Capitals" {
		t.Fatalf("deleted title = %q, want %q", title, "Capitals")
	}

	if got := e.countRows(t, &model.Quiz{}); got != 1 {
		t.Fatalf("quiz rows = %d, want 1", got)
	}
	if got := e.countRows(t, &model.Question{}); got != 1 {
		t.Fatalf("question rows = %d, want 1", got)
	}
	if got := e.countRows(t, &model.Option{}); got != 2 {
		t.Fatalf("option rows = %d, want 2 (only the surviving quiz's)", got)
	}
}

func TestDeletedTitleBecomesAvailableAgain(t *testing.T) {
	e := newTestEnv(t)
	quiz := e.mustCreateQuiz(t, "Capitals")
	if _, err := e.quizzes.DeleteQuiz(quiz.ID); err != nil {
		t.Fatalf("delete quiz failed: %v", err)
	}
	e.mustCreateQuiz(t, "Capitals")
}

package service_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rohannso/Quiz-backend/internal/dto"
	"github.com/rohannso/Quiz-backend/internal/service"
	"github.com/rohannso/Quiz-backend/internal/validation"
)

// capitalsQuiz seeds the canonical example: a "Capitals" quiz with one
// question, Paris correct, Lyon and Nice wrong. Returns the quiz id, the
// question id, and the option ids keyed by text.
func capitalsQuiz(t *testing.T, e *env) (quizID, questionID uint, optionIDs map[string]uint) {
	t.Helper()
	quiz := e.mustCreateQuiz(t, "Capitals")
	question := e.mustCreateQuestion(t, quiz.ID, "What is the capital of France?",
		[]dto.OptionRequest{correct("Paris"), wrong("Lyon"), wrong("Nice")})

	optionIDs = make(map[string]uint, len(question.Options))
	for _, opt := range question.Options {
		optionIDs[opt.Text] = opt.ID
	}
	return quiz.ID, question.ID, optionIDs
}

func TestTakeQuizStripsCorrectness(t *testing.T) {
	e := newTestEnv(t)
	quizID, _, _ := capitalsQuiz(t, e)

	take, err := e.take.TakeQuiz(quizID)
	if err != nil {
		t.Fatalf("take failed: %v", err)
	}
	if take.QuizTitle != "Capitals" {
		t.Fatalf("quiz_title = %q", take.QuizTitle)
	}
	if take.TotalQuestions != 1 {
		t.Fatalf("total_questions = %d, want 1", take.TotalQuestions)
	}
	if len(take.Questions[0].Options) != 3 {
		t.Fatalf("expected 3 options, got %d", len(take.Questions[0].Options))
	}

	// The serialized form must never carry the correctness flag, whatever
	// the quiz contents.
	raw, err := json.Marshal(take)
	if err != nil {
		t.Fatalf("marshal take view: %v", err)
	}
	if strings.Contains(string(raw), "is_correct") || strings.Contains(string(raw), "IsCorrect") {
		t.Fatalf("take view leaks correctness flag: %s", raw)
	}
}

func TestTakeQuizWithoutQuestions(t *testing.T) {
	e := newTestEnv(t)
	quiz := e.mustCreateQuiz(t, "Empty Quiz")

	if _, err := e.take.TakeQuiz(quiz.ID); !errors.Is(err, service.ErrQuizHasNoQuestions) {
		t.Fatalf("expected ErrQuizHasNoQuestions, got %v", err)
	}
	if _, err := e.take.TakeQuiz(9999); !errors.Is(err, service.ErrQuizNotFound) {
		t.Fatalf("expected ErrQuizNotFound, got %v", err)
	}
}

func TestSubmitScoresCorrectAnswer(t *testing.T) {
	e := newTestEnv(t)
	quizID, questionID, optionIDs := capitalsQuiz(t, e)

	result, err := e.take.SubmitQuiz(quizID, dto.SubmitRequest{
		Answers: []dto.AnswerRequest{{QuestionID: questionID, OptionID: optionIDs["Paris"]}},
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if result.Score != 1 || result.Total != 1 || result.Percentage != 100.0 {
		t.Fatalf("got %+v, want score 1/1 at 100%%", result)
	}
}

func TestSubmitScoresWrongAnswer(t *testing.T) {
	e := newTestEnv(t)
	quizID, questionID, optionIDs := capitalsQuiz(t, e)

	result, err := e.take.SubmitQuiz(quizID, dto.SubmitRequest{
		Answers: []dto.AnswerRequest{{QuestionID: questionID, OptionID: optionIDs["Lyon"]}},
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if result.Score != 0 || result.Total != 1 || result.Percentage != 0.0 {
		t.Fatalf("got %+v, want score 0/1 at 0%%", result)
	}
}

func TestSubmitUnknownOptionScoresZeroSilently(t *testing.T) {
	e := newTestEnv(t)
	quizID, questionID, _ := capitalsQuiz(t, e)

	result, err := e.take.SubmitQuiz(quizID, dto.SubmitRequest{
		Answers: []dto.AnswerRequest{{QuestionID: questionID, OptionID: 999}},
	})
	if err != nil {
		t.Fatalf("unknown option must not error: %v", err)
	}
	if result.Score != 0 || result.Total != 1 {
		t.Fatalf("got %+v, want score 0/1", result)
	}
}

func TestSubmitMismatchedPairScoresZero(t *testing.T) {
	e := newTestEnv(t)
	quizID, _, optionIDs := capitalsQuiz(t, e)

	// Paris really is correct, but claimed against the wrong question:
	// the (option, question) pairing must match for credit.
	result, err := e.take.SubmitQuiz(quizID, dto.SubmitRequest{
		Answers: []dto.AnswerRequest{{QuestionID: 424242, OptionID: optionIDs["Paris"]}},
	})
	if err != nil {
		t.Fatalf("mismatched pair must not error: %v", err)
	}
	if result.Score != 0 {
		t.Fatalf("score = %d, want 0 for mismatched pairing", result.Score)
	}
}

func TestSubmitTotalCountsEveryAnswer(t *testing.T) {
	e := newTestEnv(t)
	quizID, questionID, optionIDs := capitalsQuiz(t, e)

	// Duplicate and unknown question IDs still count toward the total.
	result, err := e.take.SubmitQuiz(quizID, dto.SubmitRequest{
		Answers: []dto.AnswerRequest{
			{QuestionID: questionID, OptionID: optionIDs["Paris"]},
			{QuestionID: questionID, OptionID: optionIDs["Paris"]},
			{QuestionID: 424242, OptionID: 999},
		},
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if result.Total != 3 {
		t.Fatalf("total = %d, want 3", result.Total)
	}
	if result.Score != 2 {
		t.Fatalf("score = %d, want 2", result.Score)
	}
	if result.Percentage != 66.67 {
		t.Fatalf("percentage = %v, want 66.67", result.Percentage)
	}
}

func TestSubmitIsIdempotent(t *testing.T) {
	e := newTestEnv(t)
	quizID, questionID, optionIDs := capitalsQuiz(t, e)

	req := dto.SubmitRequest{
		Answers: []dto.AnswerRequest{{QuestionID: questionID, OptionID: optionIDs["Paris"]}},
	}
	first, err := e.take.SubmitQuiz(quizID, req)
	if err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
	second, err := e.take.SubmitQuiz(quizID, req)
	if err != nil {
		t.Fatalf("second submit failed: %v", err)
	}
	if *first != *second {
		t.Fatalf("resubmission changed the result: %+v vs %+v", first, second)
	}
}

func TestSubmitRejectsEmptyAnswerList(t *testing.T) {
	e := newTestEnv(t)
	quizID, _, _ := capitalsQuiz(t, e)

	_, err := e.take.SubmitQuiz(quizID, dto.SubmitRequest{Answers: nil})
	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSubmitUnknownQuiz(t *testing.T) {
	e := newTestEnv(t)
	if _, err := e.take.SubmitQuiz(31337, dto.SubmitRequest{
		Answers: []dto.AnswerRequest{{QuestionID: 1, OptionID: 1}},
	}); !errors.Is(err, service.ErrQuizNotFound) {
		t.Fatalf("expected ErrQuizNotFound, got %v", err)
	}
}

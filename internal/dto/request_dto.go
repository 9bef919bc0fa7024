package dto

// RegisterRequest carries admin self-registration data. Bind-level rules
// (required, email format, min length) are declared here; cross-field and
// uniqueness rules live in AuthService.
type RegisterRequest struct {
	Username        string `json:"username" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" binding:"required,min=8"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type QuizRequest struct {
	Title string `json:"title" binding:"required"`
}

// OptionRequest uses *bool so that an explicit false is distinguishable
// from a missing is_correct field.
type OptionRequest struct {
	Text      string `json:"text" binding:"required"`
	IsCorrect *bool  `json:"is_correct" binding:"required"`
}

// QuestionCreateRequest creates a question together with its full option
// set in one atomic write. The option-set invariants (count bounds,
// duplicate texts, exactly one correct) are enforced in QuestionService
// so they surface as field-level messages.
type QuestionCreateRequest struct {
	QuizID  uint            `json:"quiz" binding:"required"`
	Text    string          `json:"text" binding:"required"`
	Options []OptionRequest `json:"options" binding:"required,dive"`
}

// QuestionUpdateRequest updates question text only; the option set of a
// persisted question is immutable.
type QuestionUpdateRequest struct {
	Text string `json:"text" binding:"required"`
}

// AnswerRequest is one (question, chosen option) pair. Typed uint fields
// reject non-integer ids wholesale at bind time, before scoring begins.
type AnswerRequest struct {
	QuestionID uint `json:"question_id" binding:"required"`
	OptionID   uint `json:"option_id" binding:"required"`
}

type SubmitRequest struct {
	Answers []AnswerRequest `json:"answers" binding:"required,min=1,dive"`
}

package dto

import "time"

type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

type UserResponse struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type RegisterResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type QuizResponse struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// QuizDetailResponse is the authenticated retrieve view.
type QuizDetailResponse struct {
	ID             uint      `json:"id"`
	Title          string    `json:"title"`
	CreatedAt      time.Time `json:"created_at"`
	QuestionsCount int       `json:"questions_count"`
}

// OptionResponse is the admin view of an option, correctness included.
type OptionResponse struct {
	ID        uint   `json:"id"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

type QuestionResponse struct {
	ID        uint             `json:"id"`
	QuizID    uint             `json:"quiz"`
	QuizTitle string           `json:"quiz_title,omitempty"`
	Text      string           `json:"text"`
	Options   []OptionResponse `json:"options"`
	CreatedAt time.Time        `json:"created_at"`
}

// TakeOptionResponse is the public view of an option. It structurally has
// no correctness field, so the flag cannot leak to quiz-takers.
type TakeOptionResponse struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
}

type TakeQuestionResponse struct {
	ID      uint                 `json:"id"`
	Text    string               `json:"text"`
	Options []TakeOptionResponse `json:"options"`
}

type TakeQuizResponse struct {
	QuizTitle      string                 `json:"quiz_title"`
	TotalQuestions int                    `json:"total_questions"`
	Questions      []TakeQuestionResponse `json:"data"`
}

type ScoreResponse struct {
	Score      int     `json:"score"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

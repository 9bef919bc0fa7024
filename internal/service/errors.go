package service

import "errors"

var (
	// ErrQuizNotFound is returned when the referenced quiz does not exist.
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrQuestionNotFound is returned when the referenced question does not exist.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrQuizHasNoQuestions is returned by the take flow for a quiz that
	// owns zero questions.
	ErrQuizHasNoQuestions = errors.New("this quiz has no questions yet")
	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords, deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAdminOnly is returned when a non-staff user attempts to log in.
	ErrAdminOnly = errors.New("only admin users can login")
	// ErrInvalidToken is returned when a bearer token key is unknown or revoked.
	ErrInvalidToken = errors.New("invalid token")
)

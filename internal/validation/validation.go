package validation

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Error carries field-level validation failures as a field -> message map.
// Controllers render it as {"error": "Validation failed", "details": Fields}.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Fields)
}

func NewError() *Error {
	return &Error{Fields: make(map[string]string)}
}

func FieldError(field, message string) *Error {
	return &Error{Fields: map[string]string{field: message}}
}

func (e *Error) Add(field, message string) {
	e.Fields[field] = message
}

func (e *Error) HasErrors() bool {
	return len(e.Fields) > 0
}

// QuizTitle normalizes and validates a quiz title. It returns the trimmed
// value and an empty message, or the offending rule's message.
// Rules: 3-200 chars after trimming, not blank, at least one alphanumeric rune.
func QuizTitle(raw string) (string, string) {
	title := strings.TrimSpace(raw)
	if title == "" {
		return "", "Quiz title cannot contain only whitespace."
	}
	if utf8.RuneCountInString(title) < 3 {
		return "", "Quiz title must be at least 3 characters long."
	}
	if utf8.RuneCountInString(title) > 200 {
		return "", "Quiz title cannot exceed 200 characters."
	}
	if !hasAlphanumeric(title) {
		return "", "Quiz title must contain at least one alphanumeric character."
	}
	return title, ""
}

// QuestionText normalizes and validates question text: at least 5 chars
// after trimming, not blank, at least one alphanumeric rune.
func QuestionText(raw string) (string, string) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", "Question text cannot contain only whitespace."
	}
	if utf8.RuneCountInString(text) < 5 {
		return "", "Question text must be at least 5 characters long."
	}
	if !hasAlphanumeric(text) {
		return "", "Question text must contain at least one alphanumeric character."
	}
	return text, ""
}

// OptionText normalizes and validates option text: 1-200 chars after
// trimming, not blank, at least one alphanumeric rune.
func OptionText(raw string) (string, string) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", "Option text cannot contain only whitespace."
	}
	if utf8.RuneCountInString(text) > 200 {
		return "", "Option text cannot exceed 200 characters."
	}
	if !hasAlphanumeric(text) {
		return "", "Option text must contain at least one alphanumeric character."
	}
	return text, ""
}

// Normalize is the comparison form used for case-insensitive uniqueness
// checks within an option set.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func hasAlphanumeric(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

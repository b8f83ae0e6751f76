package validation

import (
	"regexp"
	"strings"

	"quizroom/internal/domain"
)

// Validator provides request validation functionality
type Validator struct {
	maxQuestionCount int
}

// NewValidator creates a new validator instance
func NewValidator(maxQuestionCount int) *Validator {
	if maxQuestionCount <= 0 {
		maxQuestionCount = 20
	}
	return &Validator{maxQuestionCount: maxQuestionCount}
}

// ValidateCreateQuizRequest validates the quiz generation request
func (v *Validator) ValidateCreateQuizRequest(topic string, count int, difficulty string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(topic) == "" {
		errors = append(errors, domain.NewMissingFieldError("topic"))
	} else if len(topic) > 200 {
		errors = append(errors, domain.NewOutOfRangeError("topic", len(topic), 1, 200))
	}

	if count <= 0 || count > v.maxQuestionCount {
		errors = append(errors, domain.NewOutOfRangeError("count", count, 1, v.maxQuestionCount))
	}

	if difficulty != "" && !isValidDifficulty(difficulty) {
		errors = append(errors, domain.NewInvalidFormatError("difficulty", difficulty))
	}

	return errors
}

// ValidateQuizID validates a quiz identifier path parameter
func (v *Validator) ValidateQuizID(quizID string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(quizID) == "" {
		errors = append(errors, domain.NewMissingFieldError("quiz_id"))
	} else if !isValidULID(quizID) {
		errors = append(errors, domain.NewInvalidFormatError("quiz_id", quizID))
	}

	return errors
}

// Helper functions for validation

// isValidULID checks if the string is a valid ULID format
func isValidULID(s string) bool {
	// ULID is 26 characters long, Crockford's Base32
	if len(s) != 26 {
		return false
	}
	validULID := regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)
	return validULID.MatchString(s)
}

// isValidDifficulty accepts the difficulty enum, case-insensitively
func isValidDifficulty(s string) bool {
	switch strings.ToLower(s) {
	case "easy", "medium", "hard":
		return true
	default:
		return false
	}
}

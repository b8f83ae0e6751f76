package domain

import (
	"fmt"
	"strings"
	"time"
)

// OptionLabels is the fixed set of choice labels every question carries.
var OptionLabels = []string{"A", "B", "C", "D"}

// Difficulty represents the requested difficulty of a quiz
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// ParseDifficulty maps free-form input onto the difficulty enum.
// Unrecognized values default to Medium.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy
	case "hard":
		return DifficultyHard
	default:
		return DifficultyMedium
	}
}

// Question represents one multiple-choice question. Immutable once created.
type Question struct {
	ID           int
	Text         string
	Options      map[string]string // keyed by label A-D, always exactly 4 entries
	CorrectLabel string
	Explanation  string
}

// Validate validates the question
func (q *Question) Validate() error {
	if q.ID <= 0 {
		return NewInvalidInputError("question id must be positive")
	}
	if q.Text == "" {
		return NewInvalidInputError("question text is required")
	}
	if len(q.Options) != len(OptionLabels) {
		return NewInvalidInputError(fmt.Sprintf("question must have exactly %d options", len(OptionLabels)))
	}
	if _, ok := q.Options[q.CorrectLabel]; !ok {
		return NewInvalidInputError(fmt.Sprintf("correct label %q is not among the options", q.CorrectLabel))
	}
	return nil
}

// FallbackQuestion synthesizes a placeholder question for the given slot.
// Used whenever generation or parsing cannot produce a real question, so
// quiz creation stays a total function over malformed upstream text.
func FallbackQuestion(id int) Question {
	options := make(map[string]string, len(OptionLabels))
	for _, label := range OptionLabels {
		options[label] = fmt.Sprintf("Option %s (content unavailable)", label)
	}
	return Question{
		ID:           id,
		Text:         fmt.Sprintf("Question %d could not be generated for this topic.", id),
		Options:      options,
		CorrectLabel: "A",
		Explanation:  "This question was substituted because the generator output could not be used.",
	}
}

// FullQuiz is the authoritative quiz record including the answer key.
// Visible only to educator and grading flows.
type FullQuiz struct {
	ID         string
	Topic      string
	Difficulty Difficulty
	CreatorID  string
	CreatedAt  time.Time
	Questions  []Question
}

// NewFullQuiz creates a new FullQuiz instance
func NewFullQuiz(id, topic string, difficulty Difficulty, creatorID string, questions []Question) *FullQuiz {
	return &FullQuiz{
		ID:         id,
		Topic:      topic,
		Difficulty: difficulty,
		CreatorID:  creatorID,
		CreatedAt:  time.Now(),
		Questions:  questions,
	}
}

// Validate validates the quiz
func (q *FullQuiz) Validate() error {
	if q.ID == "" {
		return NewInvalidInputError("quiz id is required")
	}
	if q.Topic == "" {
		return NewInvalidInputError("topic is required")
	}
	if len(q.Questions) == 0 {
		return NewInvalidInputError("at least one question is required")
	}
	for i := range q.Questions {
		if err := q.Questions[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// StudentQuestion is the answer-key-redacted view of a Question.
type StudentQuestion struct {
	ID      int
	Text    string
	Options map[string]string
}

// StudentQuiz is the redacted projection of a FullQuiz, the only form
// exposed to students.
type StudentQuiz struct {
	ID         string
	Topic      string
	Difficulty Difficulty
	Questions  []StudentQuestion
}

// StudentView derives the redacted projection. The store keeps a single
// authoritative record and applies this at the read boundary, so the two
// views cannot drift.
func (q *FullQuiz) StudentView() *StudentQuiz {
	questions := make([]StudentQuestion, 0, len(q.Questions))
	for _, question := range q.Questions {
		options := make(map[string]string, len(question.Options))
		for label, text := range question.Options {
			options[label] = text
		}
		questions = append(questions, StudentQuestion{
			ID:      question.ID,
			Text:    question.Text,
			Options: options,
		})
	}
	return &StudentQuiz{
		ID:         q.ID,
		Topic:      q.Topic,
		Difficulty: q.Difficulty,
		Questions:  questions,
	}
}

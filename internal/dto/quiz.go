package dto

import (
	"strconv"
	"time"

	"quizroom/internal/domain"
)

// CreateQuizRequest is the educator's request body for quiz generation
// @Description Request body for generating a quiz
type CreateQuizRequest struct {
	Topic      string `json:"topic"`
	Count      int    `json:"count"`
	Difficulty string `json:"difficulty"`
}

// CreateQuizResponse returns the new quiz identifier and the student view
type CreateQuizResponse struct {
	QuizID string              `json:"quiz_id"`
	Quiz   StudentQuizResponse `json:"quiz"`
}

// StudentQuestionResponse is one answer-key-redacted question
type StudentQuestionResponse struct {
	ID      int               `json:"id"`
	Text    string            `json:"text"`
	Options map[string]string `json:"options"`
}

// StudentQuizResponse is the redacted quiz view exposed to students
type StudentQuizResponse struct {
	ID         string                    `json:"id"`
	Topic      string                    `json:"topic"`
	Difficulty string                    `json:"difficulty"`
	Questions  []StudentQuestionResponse `json:"questions"`
}

// FromStudentQuiz maps the domain projection into the API response shape.
func FromStudentQuiz(quiz *domain.StudentQuiz) StudentQuizResponse {
	questions := make([]StudentQuestionResponse, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		questions = append(questions, StudentQuestionResponse{
			ID:      q.ID,
			Text:    q.Text,
			Options: q.Options,
		})
	}
	return StudentQuizResponse{
		ID:         quiz.ID,
		Topic:      quiz.Topic,
		Difficulty: string(quiz.Difficulty),
		Questions:  questions,
	}
}

// SubmitAnswersRequest carries a student's answers keyed by question id.
// Keys arrive as JSON strings; labels may be missing or invalid.
type SubmitAnswersRequest struct {
	Answers map[string]string `json:"answers"`
}

// AnswerMap converts the JSON answer keys to question ids. Keys that are
// not integers cannot match any question and are dropped.
func (r *SubmitAnswersRequest) AnswerMap() map[int]string {
	answers := make(map[int]string, len(r.Answers))
	for key, label := range r.Answers {
		id, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		answers[id] = label
	}
	return answers
}

// QuestionResultResponse is the graded outcome for one question
type QuestionResultResponse struct {
	QuestionID     int    `json:"question_id"`
	Text           string `json:"text"`
	SubmittedLabel string `json:"submitted_label"`
	CorrectLabel   string `json:"correct_label"`
	Correct        bool   `json:"correct"`
	Explanation    string `json:"explanation"`
}

// SubmissionResponse is one graded attempt
type SubmissionResponse struct {
	ID             string                   `json:"id"`
	QuizID         string                   `json:"quiz_id"`
	StudentID      string                   `json:"student_id"`
	Score          int                      `json:"score"`
	TotalQuestions int                      `json:"total_questions"`
	Percentage     float64                  `json:"percentage"`
	Results        []QuestionResultResponse `json:"results"`
	SubmittedAt    time.Time                `json:"submitted_at"`
}

// FromSubmission maps a domain submission into the API response shape.
func FromSubmission(submission *domain.Submission) SubmissionResponse {
	results := make([]QuestionResultResponse, 0, len(submission.Results))
	for _, r := range submission.Results {
		results = append(results, QuestionResultResponse{
			QuestionID:     r.QuestionID,
			Text:           r.Text,
			SubmittedLabel: r.SubmittedLabel,
			CorrectLabel:   r.CorrectLabel,
			Correct:        r.Correct,
			Explanation:    r.Explanation,
		})
	}
	return SubmissionResponse{
		ID:             submission.ID,
		QuizID:         submission.QuizID,
		StudentID:      submission.StudentID,
		Score:          submission.Score,
		TotalQuestions: submission.TotalQuestions,
		Percentage:     submission.Percentage,
		Results:        results,
		SubmittedAt:    submission.SubmittedAt,
	}
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}

package domain

import "time"

// Role identifies what kind of caller a session belongs to.
type Role string

const (
	RoleStudent  Role = "student"
	RoleEducator Role = "educator"
)

// Session carries the identity supplied by the external session collaborator.
// This core only reads it, it never manages login.
type Session struct {
	ID          string
	DisplayName string
	Contact     string
	Role        Role
}

// QuestionResult holds the graded outcome for a single question, mirroring
// the quiz's question order.
type QuestionResult struct {
	QuestionID     int
	Text           string
	SubmittedLabel string
	CorrectLabel   string
	Correct        bool
	Explanation    string
}

// Submission represents one immutable graded attempt by one student
// against one quiz.
type Submission struct {
	ID                 string
	QuizID             string
	StudentID          string
	StudentDisplayName string
	StudentContact     string
	Score              int
	TotalQuestions     int
	Percentage         float64
	Answers            map[int]string // question id -> submitted label
	Results            []QuestionResult
	SubmittedAt        time.Time
}

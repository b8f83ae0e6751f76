package domain

// QuizStore owns the authoritative mapping of quiz identifiers to quizzes.
// A single record per quiz is kept; the student view is projected at the
// read boundary, so a StudentQuiz exists exactly when its FullQuiz does.
type QuizStore interface {
	// Put writes a quiz. An identifier collision overwrites; the ULID
	// allocator keeps collision probability negligible.
	Put(quiz *FullQuiz) error
	// GetFull returns the authoritative quiz or nil when absent.
	GetFull(quizID string) *FullQuiz
	// GetStudent returns the redacted projection or nil when absent.
	GetStudent(quizID string) *StudentQuiz
	// ListStudent returns redacted projections in insertion order.
	ListStudent() []*StudentQuiz
	// Count reports the number of stored quizzes.
	Count() int
}

// SubmissionLedger is the append-only record of graded attempts, keyed by
// quiz id. No update or delete operation exists.
type SubmissionLedger interface {
	Append(quizID string, submission *Submission)
	// ListForQuiz returns submissions for one quiz in insertion order.
	ListForQuiz(quizID string) []*Submission
	// ListForStudent returns the student's submissions across all quizzes,
	// newest first.
	ListForStudent(studentID string) []*Submission
	// Count reports the aggregate number of submissions.
	Count() int
}

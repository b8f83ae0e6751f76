package dto

// QuizSummaryResponse aggregates one quiz for the educator dashboard
type QuizSummaryResponse struct {
	QuizID            string               `json:"quiz_id"`
	Topic             string               `json:"topic"`
	Difficulty        string               `json:"difficulty"`
	SubmissionCount   int                  `json:"submission_count"`
	RecentSubmissions []SubmissionResponse `json:"recent_submissions"`
}

// EducatorDashboardResponse is the educator read surface
type EducatorDashboardResponse struct {
	QuizCount        int                   `json:"quiz_count"`
	TotalSubmissions int                   `json:"total_submissions"`
	Quizzes          []QuizSummaryResponse `json:"quizzes"`
}

// StudentDashboardResponse is the student read surface
type StudentDashboardResponse struct {
	Quizzes     []StudentQuizResponse `json:"quizzes"`
	Submissions []SubmissionResponse  `json:"submissions"`
}

package service

import (
	"quizroom/internal/domain"
	"quizroom/internal/dto"
)

// defaultRecentSubmissions caps the per-quiz submission list on the
// educator dashboard.
const defaultRecentSubmissions = 10

// DashboardService aggregates the read surfaces consumed by the UI layer.
type DashboardService interface {
	EducatorOverview() *dto.EducatorDashboardResponse
	StudentOverview(session *domain.Session) (*dto.StudentDashboardResponse, error)
}

type dashboardService struct {
	store  domain.QuizStore
	ledger domain.SubmissionLedger
}

// NewDashboardService creates a new instance of dashboardService
func NewDashboardService(store domain.QuizStore, ledger domain.SubmissionLedger) DashboardService {
	return &dashboardService{
		store:  store,
		ledger: ledger,
	}
}

// EducatorOverview returns quiz counts, per-quiz submission counts and the
// most recent submissions for each quiz.
func (s *dashboardService) EducatorOverview() *dto.EducatorDashboardResponse {
	views := s.store.ListStudent()
	summaries := make([]dto.QuizSummaryResponse, 0, len(views))
	for _, view := range views {
		submissions := s.ledger.ListForQuiz(view.ID)

		recent := submissions
		if len(recent) > defaultRecentSubmissions {
			recent = recent[len(recent)-defaultRecentSubmissions:]
		}
		recentResponses := make([]dto.SubmissionResponse, 0, len(recent))
		for _, submission := range recent {
			recentResponses = append(recentResponses, dto.FromSubmission(submission))
		}

		summaries = append(summaries, dto.QuizSummaryResponse{
			QuizID:            view.ID,
			Topic:             view.Topic,
			Difficulty:        string(view.Difficulty),
			SubmissionCount:   len(submissions),
			RecentSubmissions: recentResponses,
		})
	}

	return &dto.EducatorDashboardResponse{
		QuizCount:        s.store.Count(),
		TotalSubmissions: s.ledger.Count(),
		Quizzes:          summaries,
	}
}

// StudentOverview returns the quiz list and the caller's own submissions,
// newest first.
func (s *dashboardService) StudentOverview(session *domain.Session) (*dto.StudentDashboardResponse, error) {
	if session == nil || session.ID == "" {
		return nil, domain.NewNotAuthenticatedError()
	}

	views := s.store.ListStudent()
	quizzes := make([]dto.StudentQuizResponse, 0, len(views))
	for _, view := range views {
		quizzes = append(quizzes, dto.FromStudentQuiz(view))
	}

	submissions := s.ledger.ListForStudent(session.ID)
	submissionResponses := make([]dto.SubmissionResponse, 0, len(submissions))
	for _, submission := range submissions {
		submissionResponses = append(submissionResponses, dto.FromSubmission(submission))
	}

	return &dto.StudentDashboardResponse{
		Quizzes:     quizzes,
		Submissions: submissionResponses,
	}, nil
}

package service

import (
	"context"
	"strings"
	"time"

	"quizroom/internal/domain"
	"quizroom/internal/dto"
	"quizroom/internal/logger"
	"quizroom/internal/util"

	"go.uber.org/zap"
)

// GradingService validates a submission against a stored quiz, computes
// per-question correctness and appends an immutable submission record.
type GradingService interface {
	Grade(ctx context.Context, session *domain.Session, quizID string, answers map[int]string) (*dto.SubmissionResponse, error)
}

type gradingService struct {
	store    domain.QuizStore
	ledger   domain.SubmissionLedger
	notifier domain.Notifier
}

// NewGradingService creates a new instance of gradingService
func NewGradingService(store domain.QuizStore, ledger domain.SubmissionLedger, notifier domain.Notifier) GradingService {
	return &gradingService{
		store:    store,
		ledger:   ledger,
		notifier: notifier,
	}
}

// Grade grades one attempt. A missing answer counts as an empty submitted
// label, never as an error; labels compare case-insensitively. Each call
// appends one new independent submission, so resubmission never overwrites
// a prior attempt.
func (s *gradingService) Grade(ctx context.Context, session *domain.Session, quizID string, answers map[int]string) (*dto.SubmissionResponse, error) {
	if session == nil || session.ID == "" {
		return nil, domain.NewNotAuthenticatedError()
	}

	quiz := s.store.GetFull(quizID)
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(quizID)
	}

	score := 0
	results := make([]domain.QuestionResult, 0, len(quiz.Questions))
	for _, question := range quiz.Questions {
		submitted := answers[question.ID]
		correct := strings.EqualFold(submitted, question.CorrectLabel)
		if correct {
			score++
		}
		results = append(results, domain.QuestionResult{
			QuestionID:     question.ID,
			Text:           question.Text,
			SubmittedLabel: submitted,
			CorrectLabel:   question.CorrectLabel,
			Correct:        correct,
			Explanation:    question.Explanation,
		})
	}

	total := len(quiz.Questions)
	percentage := 0.0
	if total > 0 {
		percentage = 100 * float64(score) / float64(total)
	}

	submitted := make(map[int]string, len(answers))
	for id, label := range answers {
		submitted[id] = label
	}

	submission := &domain.Submission{
		ID:                 util.NewULID(),
		QuizID:             quizID,
		StudentID:          session.ID,
		StudentDisplayName: session.DisplayName,
		StudentContact:     session.Contact,
		Score:              score,
		TotalQuestions:     total,
		Percentage:         percentage,
		Answers:            submitted,
		Results:            results,
		SubmittedAt:        time.Now(),
	}

	s.ledger.Append(quizID, submission)

	if s.notifier != nil {
		if err := s.notifier.Notify(ctx, domain.RecordKindSubmission, submission.ID, submission); err != nil {
			logger.Get().Warn("Persistence notification failed",
				zap.Error(err),
				zap.String("kind", string(domain.RecordKindSubmission)),
				zap.String("record_id", submission.ID))
		}
	}

	logger.Get().Info("Submission graded",
		zap.String("submission_id", submission.ID),
		zap.String("quiz_id", quizID),
		zap.String("student_id", session.ID),
		zap.Int("score", score),
		zap.Int("total", total))

	resp := dto.FromSubmission(submission)
	return &resp, nil
}

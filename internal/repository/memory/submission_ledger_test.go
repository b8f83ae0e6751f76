package memory

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"quizroom/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSubmission(id, quizID, studentID string, submittedAt time.Time) *domain.Submission {
	return &domain.Submission{
		ID:          id,
		QuizID:      quizID,
		StudentID:   studentID,
		SubmittedAt: submittedAt,
	}
}

func TestSubmissionLedger_AppendPreservesOrder(t *testing.T) {
	ledger := NewSubmissionLedger()
	now := time.Now()
	for i := 0; i < 3; i++ {
		ledger.Append("quiz-1", testSubmission(fmt.Sprintf("sub-%d", i), "quiz-1", "student-1", now))
	}

	submissions := ledger.ListForQuiz("quiz-1")
	require.Len(t, submissions, 3)
	for i, s := range submissions {
		assert.Equal(t, fmt.Sprintf("sub-%d", i), s.ID)
	}
}

func TestSubmissionLedger_ListForStudentNewestFirst(t *testing.T) {
	ledger := NewSubmissionLedger()
	base := time.Now()
	ledger.Append("quiz-1", testSubmission("oldest", "quiz-1", "student-1", base))
	ledger.Append("quiz-2", testSubmission("newest", "quiz-2", "student-1", base.Add(2*time.Minute)))
	ledger.Append("quiz-3", testSubmission("middle", "quiz-3", "student-1", base.Add(time.Minute)))
	ledger.Append("quiz-1", testSubmission("other", "quiz-1", "student-2", base.Add(3*time.Minute)))

	submissions := ledger.ListForStudent("student-1")
	require.Len(t, submissions, 3)
	assert.Equal(t, "newest", submissions[0].ID)
	assert.Equal(t, "middle", submissions[1].ID)
	assert.Equal(t, "oldest", submissions[2].ID)
}

func TestSubmissionLedger_ListForQuizReturnsCopy(t *testing.T) {
	ledger := NewSubmissionLedger()
	ledger.Append("quiz-1", testSubmission("sub-1", "quiz-1", "student-1", time.Now()))

	submissions := ledger.ListForQuiz("quiz-1")
	submissions[0] = nil

	require.Len(t, ledger.ListForQuiz("quiz-1"), 1)
	assert.NotNil(t, ledger.ListForQuiz("quiz-1")[0])
}

func TestSubmissionLedger_Count(t *testing.T) {
	ledger := NewSubmissionLedger()
	assert.Equal(t, 0, ledger.Count())

	ledger.Append("quiz-1", testSubmission("sub-1", "quiz-1", "student-1", time.Now()))
	ledger.Append("quiz-2", testSubmission("sub-2", "quiz-2", "student-1", time.Now()))
	assert.Equal(t, 2, ledger.Count())
}

func TestSubmissionLedger_ConcurrentAppendsAcrossQuizzes(t *testing.T) {
	ledger := NewSubmissionLedger()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		quizID := fmt.Sprintf("quiz-%d", i)
		for j := 0; j < 10; j++ {
			wg.Add(1)
			go func(quizID string, j int) {
				defer wg.Done()
				ledger.Append(quizID, testSubmission(fmt.Sprintf("%s-sub-%d", quizID, j), quizID, "student-1", time.Now()))
			}(quizID, j)
		}
	}
	wg.Wait()

	assert.Equal(t, 80, ledger.Count())
	for i := 0; i < 8; i++ {
		assert.Len(t, ledger.ListForQuiz(fmt.Sprintf("quiz-%d", i)), 10)
	}
}

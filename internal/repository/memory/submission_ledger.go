package memory

import (
	"hash/fnv"
	"sort"
	"sync"

	"quizroom/internal/domain"
)

const ledgerShardCount = 16

// SubmissionLedger is an in-memory, append-only implementation of
// domain.SubmissionLedger. Submissions are sharded by quiz id so grading
// against distinct quizzes never contends on one lock; appends to the same
// quiz serialize on its shard.
type SubmissionLedger struct {
	shards [ledgerShardCount]ledgerShard
}

type ledgerShard struct {
	mu     sync.RWMutex
	byQuiz map[string][]*domain.Submission
}

func NewSubmissionLedger() *SubmissionLedger {
	ledger := &SubmissionLedger{}
	for i := range ledger.shards {
		ledger.shards[i].byQuiz = make(map[string][]*domain.Submission)
	}
	return ledger
}

func (l *SubmissionLedger) shardFor(quizID string) *ledgerShard {
	h := fnv.New32a()
	h.Write([]byte(quizID))
	return &l.shards[h.Sum32()%ledgerShardCount]
}

func (l *SubmissionLedger) Append(quizID string, submission *domain.Submission) {
	shard := l.shardFor(quizID)
	shard.mu.Lock()
	defer shard.mu.Unlock()
	shard.byQuiz[quizID] = append(shard.byQuiz[quizID], submission)
}

func (l *SubmissionLedger) ListForQuiz(quizID string) []*domain.Submission {
	shard := l.shardFor(quizID)
	shard.mu.RLock()
	defer shard.mu.RUnlock()
	submissions := make([]*domain.Submission, len(shard.byQuiz[quizID]))
	copy(submissions, shard.byQuiz[quizID])
	return submissions
}

func (l *SubmissionLedger) ListForStudent(studentID string) []*domain.Submission {
	var submissions []*domain.Submission
	for i := range l.shards {
		shard := &l.shards[i]
		shard.mu.RLock()
		for _, quizSubmissions := range shard.byQuiz {
			for _, submission := range quizSubmissions {
				if submission.StudentID == studentID {
					submissions = append(submissions, submission)
				}
			}
		}
		shard.mu.RUnlock()
	}
	sort.SliceStable(submissions, func(i, j int) bool {
		return submissions[i].SubmittedAt.After(submissions[j].SubmittedAt)
	})
	return submissions
}

func (l *SubmissionLedger) Count() int {
	total := 0
	for i := range l.shards {
		shard := &l.shards[i]
		shard.mu.RLock()
		for _, quizSubmissions := range shard.byQuiz {
			total += len(quizSubmissions)
		}
		shard.mu.RUnlock()
	}
	return total
}

var _ domain.SubmissionLedger = (*SubmissionLedger)(nil)

package memory

import (
	"sync"

	"quizroom/internal/domain"
)

// QuizStore is an in-memory implementation of domain.QuizStore.
//
// One authoritative record is kept per quiz and the student view is
// projected on read, so the full and redacted views can never diverge. The
// write path is a single critical section, which makes the put of a quiz
// atomic with respect to readers of either view.
type QuizStore struct {
	mu      sync.RWMutex
	quizzes map[string]*domain.FullQuiz
	order   []string
}

func NewQuizStore() *QuizStore {
	return &QuizStore{
		quizzes: make(map[string]*domain.FullQuiz),
	}
}

// Put writes a quiz. A colliding identifier overwrites the previous record
// without growing the insertion order.
func (s *QuizStore) Put(quiz *domain.FullQuiz) error {
	if err := quiz.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.quizzes[quiz.ID]; !exists {
		s.order = append(s.order, quiz.ID)
	}
	s.quizzes[quiz.ID] = quiz
	return nil
}

func (s *QuizStore) GetFull(quizID string) *domain.FullQuiz {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.quizzes[quizID]
}

func (s *QuizStore) GetStudent(quizID string) *domain.StudentQuiz {
	s.mu.RLock()
	quiz, ok := s.quizzes[quizID]
	s.mu.RUnlock()
	if !ok {
		return nil
	}
	return quiz.StudentView()
}

func (s *QuizStore) ListStudent() []*domain.StudentQuiz {
	s.mu.RLock()
	defer s.mu.RUnlock()
	views := make([]*domain.StudentQuiz, 0, len(s.order))
	for _, id := range s.order {
		views = append(views, s.quizzes[id].StudentView())
	}
	return views
}

func (s *QuizStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.quizzes)
}

var _ domain.QuizStore = (*QuizStore)(nil)

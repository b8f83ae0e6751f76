package service

import (
	"context"

	"quizroom/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockTextGenerator ---
type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// --- MockQuizStore ---
type MockQuizStore struct {
	mock.Mock
}

func (m *MockQuizStore) Put(quiz *domain.FullQuiz) error {
	args := m.Called(quiz)
	return args.Error(0)
}

func (m *MockQuizStore) GetFull(quizID string) *domain.FullQuiz {
	args := m.Called(quizID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.FullQuiz)
}

func (m *MockQuizStore) GetStudent(quizID string) *domain.StudentQuiz {
	args := m.Called(quizID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.StudentQuiz)
}

func (m *MockQuizStore) ListStudent() []*domain.StudentQuiz {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*domain.StudentQuiz)
}

func (m *MockQuizStore) Count() int {
	args := m.Called()
	return args.Int(0)
}

// --- MockNotifier ---
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, kind domain.RecordKind, recordID string, payload interface{}) error {
	args := m.Called(ctx, kind, recordID, payload)
	return args.Error(0)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"quizroom/internal/config"
	"quizroom/internal/domain"
	"quizroom/internal/dto"
	"quizroom/internal/logger"
	"quizroom/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// TestMain initializes the logger for all tests in this package
func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{}); err != nil {
		panic("Failed to initialize logger for tests: " + err.Error())
	}
	exitVal := m.Run()
	_ = logger.Sync()
	os.Exit(exitVal)
}

func educatorSession() *domain.Session {
	return &domain.Session{
		ID:          "educator-1",
		DisplayName: "Ms. Rivera",
		Contact:     "rivera@example.edu",
		Role:        domain.RoleEducator,
	}
}

func studentSession() *domain.Session {
	return &domain.Session{
		ID:          "student-1",
		DisplayName: "Jordan Lee",
		Contact:     "jordan@example.edu",
		Role:        domain.RoleStudent,
	}
}

// wellFormedOutput renders generator output that follows the documented layout.
func wellFormedOutput(correctLabel string) string {
	return fmt.Sprintf(`Question: What is the site of photosynthesis?
A) Chloroplast
B) Mitochondrion
C) Nucleus
D) Vacuole
Correct Answer: %s
Explanation: Photosynthesis happens in the chloroplast.`, correctLabel)
}

func TestGenerate_ReturnsExactlyNQuestions(t *testing.T) {
	generator := new(MockTextGenerator)
	generator.On("GenerateText", mock.Anything, mock.Anything).Return(wellFormedOutput("A"), nil)

	svc := NewQuizGenerationService(generator, memory.NewQuizStore(), nil)

	resp, err := svc.Generate(context.Background(), educatorSession(), &dto.CreateQuizRequest{
		Topic:      "Photosynthesis",
		Count:      3,
		Difficulty: "Medium",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.QuizID)
	assert.Len(t, resp.Quiz.Questions, 3)
	generator.AssertNumberOfCalls(t, "GenerateText", 3)
}

func TestGenerate_GeneratorFailuresAreSubstituted(t *testing.T) {
	generator := new(MockTextGenerator)
	// Every slot fails outright; the quiz must still come out complete.
	generator.On("GenerateText", mock.Anything, mock.Anything).Return("", errors.New("model unavailable"))

	store := memory.NewQuizStore()
	svc := NewQuizGenerationService(generator, store, nil)

	resp, err := svc.Generate(context.Background(), educatorSession(), &dto.CreateQuizRequest{
		Topic:      "Photosynthesis",
		Count:      4,
		Difficulty: "Easy",
	})

	require.NoError(t, err)
	require.Len(t, resp.Quiz.Questions, 4)
	full := store.GetFull(resp.QuizID)
	require.NotNil(t, full)
	for i, q := range full.Questions {
		assert.Equal(t, i+1, q.ID)
		assert.Len(t, q.Options, 4)
		assert.Equal(t, "A", q.CorrectLabel)
	}
}

func TestGenerate_QuestionsFollowIndexOrder(t *testing.T) {
	generator := new(MockTextGenerator)
	generator.On("GenerateText", mock.Anything, mock.MatchedBy(func(p string) bool {
		return strings.Contains(p, "question 2")
	})).Return("", errors.New("slot 2 failed"))
	generator.On("GenerateText", mock.Anything, mock.Anything).Return(wellFormedOutput("B"), nil)

	store := memory.NewQuizStore()
	svc := NewQuizGenerationService(generator, store, nil)

	resp, err := svc.Generate(context.Background(), educatorSession(), &dto.CreateQuizRequest{
		Topic:      "Photosynthesis",
		Count:      3,
		Difficulty: "Medium",
	})

	require.NoError(t, err)
	full := store.GetFull(resp.QuizID)
	require.Len(t, full.Questions, 3)
	assert.Equal(t, "B", full.Questions[0].CorrectLabel)
	assert.Equal(t, "A", full.Questions[1].CorrectLabel) // fallback slot
	assert.Equal(t, "B", full.Questions[2].CorrectLabel)
	for i, q := range full.Questions {
		assert.Equal(t, i+1, q.ID)
	}
}

func TestGenerate_StripsEchoedPrompt(t *testing.T) {
	store := memory.NewQuizStore()
	svc := NewQuizGenerationService(promptEchoGenerator{}, store, nil)

	resp, err := svc.Generate(context.Background(), educatorSession(), &dto.CreateQuizRequest{
		Topic:      "Photosynthesis",
		Count:      1,
		Difficulty: "Medium",
	})

	require.NoError(t, err)
	full := store.GetFull(resp.QuizID)
	require.Len(t, full.Questions, 1)
	// The stem from the continuation, not the layout example in the prompt.
	assert.Equal(t, "What is the site of photosynthesis?", full.Questions[0].Text)
	assert.Equal(t, "C", full.Questions[0].CorrectLabel)
}

// promptEchoGenerator echoes the prompt back before its continuation.
type promptEchoGenerator struct{}

func (promptEchoGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	return prompt + "\n" + wellFormedOutput("C"), nil
}

func TestGenerate_StudentViewCarriesNoAnswerKey(t *testing.T) {
	generator := new(MockTextGenerator)
	generator.On("GenerateText", mock.Anything, mock.Anything).Return(wellFormedOutput("D"), nil)

	svc := NewQuizGenerationService(generator, memory.NewQuizStore(), nil)

	resp, err := svc.Generate(context.Background(), educatorSession(), &dto.CreateQuizRequest{
		Topic:      "Photosynthesis",
		Count:      2,
		Difficulty: "Hard",
	})

	require.NoError(t, err)
	for _, q := range resp.Quiz.Questions {
		assert.Len(t, q.Options, 4)
		assert.NotEmpty(t, q.Text)
	}
}

func TestGenerate_NotifierFailureDoesNotAffectResult(t *testing.T) {
	generator := new(MockTextGenerator)
	generator.On("GenerateText", mock.Anything, mock.Anything).Return(wellFormedOutput("A"), nil)

	notifier := new(MockNotifier)
	notifier.On("Notify", mock.Anything, domain.RecordKindQuiz, mock.Anything, mock.Anything).
		Return(errors.New("redis down"))

	svc := NewQuizGenerationService(generator, memory.NewQuizStore(), notifier)

	resp, err := svc.Generate(context.Background(), educatorSession(), &dto.CreateQuizRequest{
		Topic:      "Photosynthesis",
		Count:      1,
		Difficulty: "Medium",
	})

	require.NoError(t, err)
	assert.Len(t, resp.Quiz.Questions, 1)
	notifier.AssertExpectations(t)
}

func TestGenerate_Preconditions(t *testing.T) {
	svc := NewQuizGenerationService(new(MockTextGenerator), memory.NewQuizStore(), nil)
	ctx := context.Background()

	_, err := svc.Generate(ctx, nil, &dto.CreateQuizRequest{Topic: "T", Count: 1})
	assertDomainErrorCode(t, err, domain.CodeUnauthorized)

	_, err = svc.Generate(ctx, educatorSession(), &dto.CreateQuizRequest{Topic: "  ", Count: 1})
	assertDomainErrorCode(t, err, domain.CodeInvalidInput)

	_, err = svc.Generate(ctx, educatorSession(), &dto.CreateQuizRequest{Topic: "T", Count: 0})
	assertDomainErrorCode(t, err, domain.CodeInvalidInput)
}

func TestGetStudentQuiz_NotFound(t *testing.T) {
	svc := NewQuizGenerationService(new(MockTextGenerator), memory.NewQuizStore(), nil)

	_, err := svc.GetStudentQuiz("missing")
	assertDomainErrorCode(t, err, domain.CodeQuizNotFound)
}

func TestListStudentQuizzes_InsertionOrder(t *testing.T) {
	generator := new(MockTextGenerator)
	generator.On("GenerateText", mock.Anything, mock.Anything).Return(wellFormedOutput("A"), nil)

	svc := NewQuizGenerationService(generator, memory.NewQuizStore(), nil)

	first, err := svc.Generate(context.Background(), educatorSession(), &dto.CreateQuizRequest{Topic: "First", Count: 1})
	require.NoError(t, err)
	second, err := svc.Generate(context.Background(), educatorSession(), &dto.CreateQuizRequest{Topic: "Second", Count: 1})
	require.NoError(t, err)

	quizzes := svc.ListStudentQuizzes()
	require.Len(t, quizzes, 2)
	assert.Equal(t, first.QuizID, quizzes[0].ID)
	assert.Equal(t, second.QuizID, quizzes[1].ID)
}

func assertDomainErrorCode(t *testing.T, err error, code domain.ErrorCode) {
	t.Helper()
	require.Error(t, err)
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, code, domainErr.Code)
}

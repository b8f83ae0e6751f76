package service

import (
	"context"
	"strings"

	"quizroom/internal/domain"
	"quizroom/internal/dto"
	"quizroom/internal/logger"
	"quizroom/internal/quizgen"
	"quizroom/internal/util"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// QuizGenerationService orchestrates quiz creation: prompt construction,
// generator invocation, parsing, assembly and the atomic store write.
type QuizGenerationService interface {
	Generate(ctx context.Context, session *domain.Session, req *dto.CreateQuizRequest) (*dto.CreateQuizResponse, error)
	GetStudentQuiz(quizID string) (*dto.StudentQuizResponse, error)
	ListStudentQuizzes() []dto.StudentQuizResponse
}

type quizGenerationService struct {
	generator domain.TextGenerator
	store     domain.QuizStore
	notifier  domain.Notifier
	prompts   *quizgen.PromptBuilder
	parser    *quizgen.QuestionParser
}

// NewQuizGenerationService creates a new instance of quizGenerationService
func NewQuizGenerationService(
	generator domain.TextGenerator,
	store domain.QuizStore,
	notifier domain.Notifier,
) QuizGenerationService {
	return &quizGenerationService{
		generator: generator,
		store:     store,
		notifier:  notifier,
		prompts:   quizgen.NewPromptBuilder(),
		parser:    quizgen.NewQuestionParser(),
	}
}

// Generate creates a quiz with exactly req.Count questions. Generator calls
// run in parallel, one attempt per slot and no retries; a failed or
// unparsable slot is substituted with a fallback question so quiz creation
// is total over untrusted generator output.
func (s *quizGenerationService) Generate(ctx context.Context, session *domain.Session, req *dto.CreateQuizRequest) (*dto.CreateQuizResponse, error) {
	if session == nil || session.ID == "" {
		return nil, domain.NewNotAuthenticatedError()
	}
	if strings.TrimSpace(req.Topic) == "" {
		return nil, domain.NewInvalidInputError("topic must not be empty")
	}
	if req.Count <= 0 {
		return nil, domain.NewInvalidInputError("count must be positive")
	}

	difficulty := domain.ParseDifficulty(req.Difficulty)
	quizID := util.NewULID()
	questions := make([]domain.Question, req.Count)

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < req.Count; i++ {
		index := i + 1
		slot := i
		g.Go(func() error {
			questions[slot] = s.generateQuestion(gctx, req.Topic, difficulty, index)
			return nil
		})
	}
	// Slot failures are absorbed into fallbacks, so the group never errors.
	_ = g.Wait()

	quiz := domain.NewFullQuiz(quizID, req.Topic, difficulty, session.ID, questions)
	if err := s.store.Put(quiz); err != nil {
		return nil, domain.NewInternalError("Failed to store generated quiz", err)
	}

	s.notify(ctx, domain.RecordKindQuiz, quizID, quiz)

	logger.Get().Info("Quiz generated",
		zap.String("quiz_id", quizID),
		zap.String("topic", req.Topic),
		zap.String("difficulty", string(difficulty)),
		zap.Int("question_count", len(questions)),
		zap.String("creator_id", session.ID))

	return &dto.CreateQuizResponse{
		QuizID: quizID,
		Quiz:   dto.FromStudentQuiz(quiz.StudentView()),
	}, nil
}

// generateQuestion produces the question for one slot, degrading to the
// fallback question when the generator call fails.
func (s *quizGenerationService) generateQuestion(ctx context.Context, topic string, difficulty domain.Difficulty, index int) domain.Question {
	prompt := s.prompts.Build(topic, difficulty, index)

	raw, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		logger.Get().Warn("Generator call failed, substituting fallback question",
			zap.Error(err),
			zap.String("topic", topic),
			zap.Int("question_index", index))
		return domain.FallbackQuestion(index)
	}

	result := s.parser.Parse(stripPromptEcho(raw, prompt), index)
	if result.Degraded {
		logger.Get().Warn("Generator output degraded during parsing",
			zap.String("topic", topic),
			zap.Int("question_index", index))
	}
	return result.Question
}

// stripPromptEcho isolates the newly generated continuation when the
// generator returns the prompt echoed back in front of its answer.
func stripPromptEcho(raw, prompt string) string {
	if idx := strings.Index(raw, prompt); idx != -1 {
		return raw[idx+len(prompt):]
	}
	return raw
}

func (s *quizGenerationService) notify(ctx context.Context, kind domain.RecordKind, recordID string, payload interface{}) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, kind, recordID, payload); err != nil {
		logger.Get().Warn("Persistence notification failed",
			zap.Error(err),
			zap.String("kind", string(kind)),
			zap.String("record_id", recordID))
	}
}

// GetStudentQuiz returns the redacted view of one quiz.
func (s *quizGenerationService) GetStudentQuiz(quizID string) (*dto.StudentQuizResponse, error) {
	quiz := s.store.GetStudent(quizID)
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(quizID)
	}
	resp := dto.FromStudentQuiz(quiz)
	return &resp, nil
}

// ListStudentQuizzes returns redacted views of all quizzes in insertion order.
func (s *quizGenerationService) ListStudentQuizzes() []dto.StudentQuizResponse {
	views := s.store.ListStudent()
	responses := make([]dto.StudentQuizResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, dto.FromStudentQuiz(view))
	}
	return responses
}

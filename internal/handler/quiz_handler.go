package handler

import (
	"quizroom/internal/dto"
	"quizroom/internal/logger"
	"quizroom/internal/middleware"
	"quizroom/internal/service"
	"quizroom/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	quizService service.QuizGenerationService
	validator   *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(quizService service.QuizGenerationService, validator *validation.Validator) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
		validator:   validator,
	}
}

// CreateQuiz godoc
// @Summary Generate a quiz
// @Description Generates a multiple-choice quiz on a topic and returns the student view
// @Tags quiz
// @Accept json
// @Produce json
// @Param quiz body dto.CreateQuizRequest true "Quiz Request"
// @Success 201 {object} dto.CreateQuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /quizzes [post]
func (h *QuizHandler) CreateQuiz(c *fiber.Ctx) error {
	var req dto.CreateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if errs := h.validator.ValidateCreateQuizRequest(req.Topic, req.Count, req.Difficulty); len(errs) > 0 {
		return errs
	}

	session := middleware.SessionFromCtx(c)
	resp, err := h.quizService.Generate(c.Context(), session, &req)
	if err != nil {
		return err
	}

	logger.Get().Info("Quiz created via API",
		zap.String("quiz_id", resp.QuizID),
		zap.String("topic", req.Topic))

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListQuizzes returns the student views of all quizzes in insertion order.
func (h *QuizHandler) ListQuizzes(c *fiber.Ctx) error {
	return c.JSON(h.quizService.ListStudentQuizzes())
}

// GetQuiz godoc
// @Summary Get one quiz
// @Description Returns the answer-key-redacted view of a quiz
// @Tags quiz
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} dto.StudentQuizResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quizzes/{id} [get]
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	quizID := c.Params("id")
	if errs := h.validator.ValidateQuizID(quizID); len(errs) > 0 {
		return errs
	}

	resp, err := h.quizService.GetStudentQuiz(quizID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

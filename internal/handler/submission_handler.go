package handler

import (
	"quizroom/internal/dto"
	"quizroom/internal/middleware"
	"quizroom/internal/service"
	"quizroom/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// SubmissionHandler handles answer submission and grading requests
type SubmissionHandler struct {
	gradingService service.GradingService
	validator      *validation.Validator
}

// NewSubmissionHandler creates a new SubmissionHandler instance
func NewSubmissionHandler(gradingService service.GradingService, validator *validation.Validator) *SubmissionHandler {
	return &SubmissionHandler{
		gradingService: gradingService,
		validator:      validator,
	}
}

// SubmitAnswers godoc
// @Summary Submit answers for grading
// @Description Grades a student's answers against the quiz answer key and records the attempt
// @Tags submissions
// @Accept json
// @Produce json
// @Param id path string true "Quiz ID"
// @Param answers body dto.SubmitAnswersRequest true "Submitted answers keyed by question id"
// @Success 201 {object} dto.SubmissionResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quizzes/{id}/submissions [post]
func (h *SubmissionHandler) SubmitAnswers(c *fiber.Ctx) error {
	quizID := c.Params("id")
	if errs := h.validator.ValidateQuizID(quizID); len(errs) > 0 {
		return errs
	}

	var req dto.SubmitAnswersRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	session := middleware.SessionFromCtx(c)
	resp, err := h.gradingService.Grade(c.Context(), session, quizID, req.AnswerMap())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

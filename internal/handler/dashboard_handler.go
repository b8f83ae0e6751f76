package handler

import (
	"quizroom/internal/middleware"
	"quizroom/internal/service"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler serves the educator and student read surfaces
type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler instance
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// EducatorDashboard returns quiz counts, per-quiz submission counts and the
// most recent submissions per quiz.
func (h *DashboardHandler) EducatorDashboard(c *fiber.Ctx) error {
	return c.JSON(h.dashboardService.EducatorOverview())
}

// StudentDashboard returns the quiz list plus the caller's own submissions,
// newest first.
func (h *DashboardHandler) StudentDashboard(c *fiber.Ctx) error {
	session := middleware.SessionFromCtx(c)
	resp, err := h.dashboardService.StudentOverview(session)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

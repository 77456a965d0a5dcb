package controllers

import (
	"lms/middleware"
	"lms/store"

	"github.com/gofiber/fiber/v2"
)

// AnalyticsController serves the instructor-facing aggregation views. Every
// response is recomputed from the store on each call; nothing is cached.
type AnalyticsController struct {
	Store *store.Store
}

func NewAnalyticsController(s *store.Store) *AnalyticsController {
	return &AnalyticsController{Store: s}
}

func (ctl *AnalyticsController) CourseAnalytics(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	analytics, err := ctl.Store.GetCourseAnalytics(courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch analytics!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Analytics fetched successfully!", analytics)
}

func (ctl *AnalyticsController) AssignmentStats(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	stats, err := ctl.Store.GetCourseAssignmentStats(courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch assignment stats!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignment stats fetched successfully!", stats)
}

func (ctl *AnalyticsController) InstructorDashboard(c *fiber.Ctx) error {
	userID, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	dashboard, err := ctl.Store.GetInstructorDashboard(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", dashboard)
}

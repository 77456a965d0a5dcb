package controllers

import (
	"lms/middleware"
	"lms/store"

	"github.com/gofiber/fiber/v2"
)

// StatsController serves the student and instructor summary figures
type StatsController struct {
	Store *store.Store
}

func NewStatsController(s *store.Store) *StatsController {
	return &StatsController{Store: s}
}

func (ctl *StatsController) StudentStats(c *fiber.Ctx) error {
	userID, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	stats, err := ctl.Store.GetStudentStats(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stats!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats fetched successfully!", stats)
}

func (ctl *StatsController) InstructorStats(c *fiber.Ctx) error {
	userID, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	totalStudents, err := ctl.Store.GetInstructorTotalStudents(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stats!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats fetched successfully!", fiber.Map{
		"totalStudents": totalStudents,
	})
}

// StudentSubmissions lists the caller's submissions with assignments embedded
func (ctl *StatsController) StudentSubmissions(c *fiber.Ctx) error {
	userID, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	submissions, err := ctl.Store.GetStudentSubmissions(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch submissions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submissions fetched successfully!", submissions)
}

package controllers

import (
	"lms/middleware"
	"lms/store"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

// EnrollmentController handles course enrollment
type EnrollmentController struct {
	Store  *store.Store
	Mailer *utils.Mailer
}

func NewEnrollmentController(s *store.Store, mailer *utils.Mailer) *EnrollmentController {
	return &EnrollmentController{Store: s, Mailer: mailer}
}

func (ctl *EnrollmentController) Enroll(c *fiber.Ctx) error {
	userID, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	course, err := ctl.Store.GetCourse(courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}
	if course == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	enrollment, err := ctl.Store.EnrollStudent(userID, courseID)
	if err != nil {
		return storeErrorResponse(c, err)
	}

	if student, err := ctl.Store.GetUser(userID); err == nil && student != nil {
		go ctl.Mailer.SendEnrollmentEmail(student.Username, student.Name, course.Title)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully!", enrollment)
}

// ListEnrollments returns the caller's enrollments with courses embedded
func (ctl *EnrollmentController) ListEnrollments(c *fiber.Ctx) error {
	userID, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollments, err := ctl.Store.GetStudentEnrollments(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", enrollments)
}

package controllers

import (
	"lms/middleware"
	"lms/models"
	"lms/store"
	"lms/validators/courseValidator"

	"github.com/gofiber/fiber/v2"
)

// CourseController handles course, lesson and assignment CRUD
type CourseController struct {
	Store *store.Store
}

func NewCourseController(s *store.Store) *CourseController {
	return &CourseController{Store: s}
}

// GetAllCourses is public: the catalog with embedded instructors
func (ctl *CourseController) GetAllCourses(c *fiber.Ctx) error {
	courses, err := ctl.Store.GetCourses()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// GetCourseDetails returns the course with its lessons and assignments
func (ctl *CourseController) GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	course, err := ctl.Store.GetCourse(courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}
	if course == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	lessons, err := ctl.Store.GetLessons(courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}
	assignments, err := ctl.Store.GetAssignments(courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch assignments!", nil)
	}

	type courseDetail struct {
		models.Course
		Lessons     []models.Lesson     `json:"lessons"`
		Assignments []models.Assignment `json:"assignments"`
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", courseDetail{
		Course:      *course,
		Lessons:     lessons,
		Assignments: assignments,
	})
}

func (ctl *CourseController) CreateCourse(c *fiber.Ctx) error {
	userID, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := models.Course{
		Title:        reqData.Title,
		Description:  reqData.Description,
		InstructorID: userID,
	}

	if err := ctl.Store.CreateCourse(&course); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// DeleteCourse cascades over lessons, assignments, submissions and
// enrollments; only the owning instructor may delete
func (ctl *CourseController) DeleteCourse(c *fiber.Ctx) error {
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

	if course.InstructorID != userID {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Only the owning instructor can delete this course!", nil)
	}

	if err := ctl.Store.DeleteCourse(courseID); err != nil {
		return storeErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", fiber.Map{
		"success": true,
	})
}

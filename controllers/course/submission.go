package controllers

import (
	"lms/middleware"
	"lms/models"
	"lms/store"
	"lms/utils"
	"lms/validators/courseValidator"

	"github.com/gofiber/fiber/v2"
)

// SubmissionController handles assignment submissions and grading
type SubmissionController struct {
	Store  *store.Store
	Mailer *utils.Mailer
}

func NewSubmissionController(s *store.Store, mailer *utils.Mailer) *SubmissionController {
	return &SubmissionController{Store: s, Mailer: mailer}
}

// SubmitAssignment creates the caller's submission; enrollment in the
// assignment's course is required and resubmission is rejected
func (ctl *SubmissionController) SubmitAssignment(c *fiber.Ctx) error {
	userID, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	assignmentID := c.Locals("assignmentID").(uint)

	reqData, ok := c.Locals("validatedSubmission").(*courseValidator.CreateSubmissionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	assignment, err := ctl.Store.GetAssignment(assignmentID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch assignment!", nil)
	}
	if assignment == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assignment not found!", nil)
	}

	enrolled, err := ctl.isEnrolled(userID, assignment.CourseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check enrollment!", nil)
	}
	if !enrolled {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You are not enrolled in this course!", nil)
	}

	submission := models.Submission{
		AssignmentID: assignmentID,
		StudentID:    userID,
		Content:      reqData.Content,
		FileURL:      reqData.FileURL,
	}

	if err := ctl.Store.CreateSubmission(&submission); err != nil {
		return storeErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Assignment submitted successfully!", submission)
}

// ListSubmissions returns all submissions for an assignment with the
// submitting students embedded
func (ctl *SubmissionController) ListSubmissions(c *fiber.Ctx) error {
	assignmentID := c.Locals("assignmentID").(uint)

	submissions, err := ctl.Store.GetSubmissions(assignmentID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch submissions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submissions fetched successfully!", submissions)
}

// GradeSubmission overwrites the grade and feedback on a submission and
// notifies the student
func (ctl *SubmissionController) GradeSubmission(c *fiber.Ctx) error {
	submissionID := c.Locals("submissionID").(uint)

	reqData, ok := c.Locals("validatedGrade").(*courseValidator.GradeSubmissionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	submission, err := ctl.Store.GradeSubmission(submissionID, *reqData.Grade, reqData.Feedback)
	if err != nil {
		return storeErrorResponse(c, err)
	}

	// Notify the student asynchronously
	if student, err := ctl.Store.GetUser(submission.StudentID); err == nil && student != nil {
		if assignment, err := ctl.Store.GetAssignment(submission.AssignmentID); err == nil && assignment != nil {
			go ctl.Mailer.SendGradeEmail(student.Username, student.Name, assignment.Title, *reqData.Grade)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submission graded successfully!", submission)
}

func (ctl *SubmissionController) isEnrolled(studentID, courseID uint) (bool, error) {
	enrollments, err := ctl.Store.GetStudentEnrollments(studentID)
	if err != nil {
		return false, err
	}
	for _, e := range enrollments {
		if e.CourseID == courseID {
			return true, nil
		}
	}
	return false, nil
}

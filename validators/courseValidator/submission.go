package courseValidator

import (
	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateSubmissionRequest is the validated submission payload; content and
// fileUrl are both optional (a file can be attached separately)
type CreateSubmissionRequest struct {
	Content string `json:"content"`
	FileURL string `json:"fileUrl"`
}

// GradeSubmissionRequest is the validated grading payload
type GradeSubmissionRequest struct {
	Grade    *int    `json:"grade"`
	Feedback *string `json:"feedback"`
}

func CreateSubmission() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateSubmissionRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedSubmission", reqData)
		return c.Next()
	}
}

func GradeSubmission() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(GradeSubmissionRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if reqData.Grade == nil {
			errors["grade"] = "Grade is required!"
		} else if *reqData.Grade < 0 || *reqData.Grade > 100 {
			errors["grade"] = "Grade must be between 0 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedGrade", reqData)
		return c.Next()
	}
}

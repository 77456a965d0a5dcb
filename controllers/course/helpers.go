package controllers

import (
	"errors"

	"lms/middleware"
	"lms/store"

	"github.com/gofiber/fiber/v2"
)

// storeErrorResponse maps the store's typed failures onto HTTP statuses
func storeErrorResponse(c *fiber.Ctx, err error) error {
	var validationErr store.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, validationErr.Message, fiber.Map{
			"field": validationErr.Field,
		})
	case errors.Is(err, store.ErrDuplicateSubmission):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You have already submitted this assignment!", nil)
	case errors.Is(err, store.ErrDuplicateEnrollment):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You are already enrolled in this course!", nil)
	case errors.Is(err, store.ErrNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Record not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
}

// currentUser pulls the authenticated user id out of the request context
func currentUser(c *fiber.Ctx) (uint, bool) {
	userID, ok := c.Locals("userId").(uint)
	return userID, ok
}

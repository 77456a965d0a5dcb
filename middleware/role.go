package middleware

import (
	"lms/models"

	"github.com/gofiber/fiber/v2"
)

// RequireAction returns a middleware that rejects callers whose role is not
// allowed to perform the given action. The role comes from the verified token,
// so no extra user lookup is needed here.
func RequireAction(action models.Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("userRole").(models.Role)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		if !role.CanPerform(action) {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "You do not have permission to access this resource!", nil)
		}
		return c.Next()
	}
}

package auth

import (
	"github.com/gofiber/fiber/v2"

	"academyku_backend/internals/constants"
	helper "academyku_backend/internals/helpers"
)

// RoleMiddlewareWithCustomError validasi role + custom error message.
// Cek hirarki lewat constants.RoleSatisfies — jangan bandingkan string di handler.
func RoleMiddlewareWithCustomError(allowedRoles []string, customForbiddenMessage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := helper.GetUserRoleFromLocals(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized: missing role information",
			})
		}

		if constants.RoleSatisfies(role, allowedRoles...) {
			return c.Next()
		}

		if customForbiddenMessage == "" {
			customForbiddenMessage = "Forbidden: you are not authorized to access this resource"
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": customForbiddenMessage,
		})
	}
}

// Shortcut biar lebih clean pemakaian
func OnlyRoles(customMessage string, roles ...string) fiber.Handler {
	return RoleMiddlewareWithCustomError(roles, customMessage)
}

package auth

import (
	"github.com/gofiber/fiber/v2"
)

// OnlyRolesSlice membatasi akses berdasarkan role dari Locals (diisi AuthMiddleware).
func OnlyRolesSlice(errMessage string, allowedRoles []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok || role == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Role tidak ditemukan")
		}
		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, errMessage)
	}
}

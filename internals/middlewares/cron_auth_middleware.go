package middlewares

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"eksporyuk_backend/internals/configs"
)

// CronAuth melindungi endpoint cron dengan shared secret.
// Dipanggil scheduler eksternal, bukan user: Authorization: Bearer <CRON_SECRET>
// atau fallback ?token=<CRON_SECRET> (beberapa scheduler tidak bisa set header).
func CronAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		secret := configs.CronSecret
		if secret == "" {
			log.Println("[CRON] CRON_SECRET kosong, semua request cron ditolak")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		token := strings.TrimPrefix(c.Get("Authorization"), "Bearer ")
		if token == "" || token == c.Get("Authorization") {
			token = c.Query("token")
		}

		if token != secret {
			log.Printf("[CRON] Unauthorized access ke %s", c.Path())
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}
		return c.Next()
	}
}

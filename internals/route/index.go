// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notifService "eksporyuk_backend/internals/features/notifications/service"
	authMiddleware "eksporyuk_backend/internals/middlewares/auth"
	routeDetails "eksporyuk_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, dispatcher *notifService.Dispatcher) {
	BaseRoutes(app, db)

	// ===================== GROUPS =====================

	// PUBLIC → tanpa JWT
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	// PRIVATE (USER) → wajib JWT
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api", authMiddleware.AuthMiddleware(db))

	// ADMIN → JWT + role check di tiap route
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a", authMiddleware.AuthMiddleware(db))

	// ===================== FEATURES =====================
	log.Println("[INFO] Setting up MembershipRoutes...")
	routeDetails.MembershipRoutes(public, private, admin, db)

	log.Println("[INFO] Setting up PaymentRoutes...")
	routeDetails.PaymentRoutes(app, private, db, dispatcher)

	log.Println("[INFO] Setting up CronRoutes...")
	routeDetails.CronRoutes(app, db, dispatcher)
}

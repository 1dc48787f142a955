// file: internals/route/details/cron_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	trxController "eksporyuk_backend/internals/features/finance/transactions/controller"
	umController "eksporyuk_backend/internals/features/memberships/user_membership/controller"
	notifService "eksporyuk_backend/internals/features/notifications/service"
	"eksporyuk_backend/internals/middlewares"
)

// CronRoutes: endpoint untuk scheduler eksternal, dilindungi CRON_SECRET.
func CronRoutes(app *fiber.App, db *gorm.DB, dispatcher *notifService.Dispatcher) {
	cronMembership := umController.NewCronMembershipController(db, dispatcher)
	cronPayment := trxController.NewCronPaymentController(db, dispatcher)

	cron := app.Group("/api/cron", middlewares.CronAuth())
	cron.Get("/expire-memberships", cronMembership.ExpireMemberships)
	cron.Get("/membership-reminders", cronMembership.SendReminders)
	cron.Get("/check-payment-status", cronPayment.CheckPendingPayments)
}

// file: internals/route/details/payment_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	trxController "eksporyuk_backend/internals/features/finance/transactions/controller"
	notifService "eksporyuk_backend/internals/features/notifications/service"
	"eksporyuk_backend/internals/middlewares"
)

// PaymentRoutes: checkout + polling (auth), webhook (public).
func PaymentRoutes(app *fiber.App, user fiber.Router, db *gorm.DB, dispatcher *notifService.Dispatcher) {
	checkoutCtrl := trxController.NewCheckoutController(db)
	statusCtrl := trxController.NewPaymentStatusController(db, dispatcher)
	webhookCtrl := trxController.NewWebhookController(db, dispatcher)

	user.Post("/checkout/membership", middlewares.CheckoutRateLimiter(), checkoutCtrl.CheckoutMembership)
	user.Get("/payment/check-status/:transactionId", statusCtrl.CheckStatus)

	// webhook tanpa JWT — verifikasi via X-Callback-Token di controller
	app.Post("/api/webhooks/xendit", webhookCtrl.HandleXenditWebhook)
}

// file: internals/features/memberships/user_membership/controller/cron_membership_controller.go
package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	umService "eksporyuk_backend/internals/features/memberships/user_membership/service"
	notifService "eksporyuk_backend/internals/features/notifications/service"
)

// CronMembershipController: endpoint-endpoint yang dipanggil scheduler,
// bukan user (dilindungi middleware CronAuth).
type CronMembershipController struct {
	DB         *gorm.DB
	Dispatcher *notifService.Dispatcher
}

func NewCronMembershipController(db *gorm.DB, dispatcher *notifService.Dispatcher) *CronMembershipController {
	return &CronMembershipController{DB: db, Dispatcher: dispatcher}
}

// 🟢 GET /api/cron/expire-memberships — sweep harian.
// Batch best-effort: error per-item masuk report, tidak menghentikan item lain.
func (ctrl *CronMembershipController) ExpireMemberships(c *fiber.Ctx) error {
	log.Println("[CRON] Starting expire-memberships job...")

	report, err := umService.ExpireDueMemberships(ctrl.DB, ctrl.Dispatcher, time.Now())
	if err != nil {
		log.Printf("[CRON] expire-memberships query error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":  err.Error(),
			"report": report,
		})
	}

	return c.JSON(report)
}

// 🟢 GET /api/cron/membership-reminders — reminder H-7/H-3/H-1.
func (ctrl *CronMembershipController) SendReminders(c *fiber.Ctx) error {
	log.Println("[CRON] Starting membership-reminders job...")

	report, err := umService.SendExpiryReminders(ctrl.DB, ctrl.Dispatcher, time.Now())
	if err != nil {
		log.Printf("[CRON] membership-reminders query error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":  err.Error(),
			"report": report,
		})
	}

	return c.JSON(report)
}

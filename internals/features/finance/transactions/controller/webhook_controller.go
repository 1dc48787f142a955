// file: internals/features/finance/transactions/controller/webhook_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eksporyuk_backend/internals/configs"
	"eksporyuk_backend/internals/features/finance/transactions/dto"
	trxModel "eksporyuk_backend/internals/features/finance/transactions/model"
	trxService "eksporyuk_backend/internals/features/finance/transactions/service"
	notifService "eksporyuk_backend/internals/features/notifications/service"
)

type WebhookController struct {
	DB         *gorm.DB
	Dispatcher *notifService.Dispatcher
}

func NewWebhookController(db *gorm.DB, dispatcher *notifService.Dispatcher) *WebhookController {
	return &WebhookController{DB: db, Dispatcher: dispatcher}
}

// 🟢 POST /api/webhooks/xendit — callback invoice dari Xendit.
// Verifikasi pakai X-Callback-Token. Response selalu 200 untuk payload yang
// valid supaya Xendit tidak retry terus; aktivasi punya guard idempoten
// sendiri kalau webhook datang dobel (atau balapan dengan polling user).
func (ctrl *WebhookController) HandleXenditWebhook(c *fiber.Ctx) error {
	if configs.XenditCallbackToken == "" ||
		c.Get("X-Callback-Token") != configs.XenditCallbackToken {
		log.Println("[WEBHOOK] X-Callback-Token tidak cocok, request ditolak")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var payload dto.XenditWebhookPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payload"})
	}
	if payload.ExternalID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "external_id kosong"})
	}

	var trx trxModel.Transaction
	if err := ctrl.DB.
		Where("transaction_external_id = ?", payload.ExternalID).
		First(&trx).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// bukan transaksi kita — ack saja supaya provider berhenti retry
			log.Printf("[WEBHOOK] external_id %s tidak dikenal", payload.ExternalID)
			return c.JSON(fiber.Map{"message": "ignored"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB error"})
	}

	// simpan reference dari provider kalau checkout belum sempat mencatatnya
	if (trx.TransactionReference == nil || *trx.TransactionReference == "") && payload.ID != "" {
		ctrl.DB.Model(&trx).Update("transaction_reference", payload.ID)
	}

	switch trxService.NormalizeProviderStatus(payload.Status) {
	case trxService.StatusSuccess:
		if err := trxService.SettleTransaction(ctrl.DB, ctrl.Dispatcher, &trx, "Settled via Xendit webhook"); err != nil {
			log.Printf("[WEBHOOK] gagal settle %s: %v", trx.TransactionID, err)
			// 500 supaya Xendit retry — guard idempoten membuat retry aman
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "settlement failed"})
		}
		return c.JSON(fiber.Map{"message": "ok"})

	default:
		// EXPIRED dari provider = transaksi gagal; status lain dibiarkan PENDING
		if payload.Status == "EXPIRED" && trx.TransactionStatus == trxModel.TransactionPending {
			if err := ctrl.DB.Model(&trx).
				Update("transaction_status", trxModel.TransactionFailed).Error; err != nil {
				log.Printf("[WEBHOOK] gagal update FAILED %s: %v", trx.TransactionID, err)
			}
		}
		return c.JSON(fiber.Map{"message": "ok"})
	}
}

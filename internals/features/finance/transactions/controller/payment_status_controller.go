// file: internals/features/finance/transactions/controller/payment_status_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"eksporyuk_backend/internals/constants"
	trxModel "eksporyuk_backend/internals/features/finance/transactions/model"
	trxService "eksporyuk_backend/internals/features/finance/transactions/service"
	notifService "eksporyuk_backend/internals/features/notifications/service"
	helper "eksporyuk_backend/internals/helpers"
)

type PaymentStatusController struct {
	DB         *gorm.DB
	Dispatcher *notifService.Dispatcher
}

func NewPaymentStatusController(db *gorm.DB, dispatcher *notifService.Dispatcher) *PaymentStatusController {
	return &PaymentStatusController{DB: db, Dispatcher: dispatcher}
}

// 🟢 GET /api/payment/check-status/:transactionId
// Polling manual dari user — aman dipanggil berulang. Tanpa side effect,
// KECUALI terdeteksi pembayaran baru settle: aktivasi penuh dijalankan
// sebelum response (jalur yang sama dengan webhook).
func (ctrl *PaymentStatusController) CheckStatus(c *fiber.Ctx) error {
	userID, err := userIDFromLocals(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	trxID, err := uuid.Parse(c.Params("transactionId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "transaction_id tidak valid")
	}

	var trx trxModel.Transaction
	if err := ctrl.DB.First(&trx, "transaction_id = ?", trxID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Transaksi tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil transaksi")
	}

	// transaksi milik orang lain hanya boleh dilihat admin
	role, _ := c.Locals("role").(string)
	if trx.TransactionUserID != userID && role != constants.RoleAdmin {
		return helper.Error(c, fiber.StatusForbidden, "Transaksi ini bukan milik Anda")
	}

	// Status final: kembalikan apa adanya
	if trx.TransactionStatus == trxModel.TransactionSuccess ||
		trx.TransactionStatus == trxModel.TransactionFailed {
		return helper.Success(c, "OK", fiber.Map{
			"transaction_id": trx.TransactionID,
			"status":         trx.TransactionStatus,
			"paid_at":        trx.TransactionPaidAt,
		})
	}

	if trx.TransactionReference == nil || *trx.TransactionReference == "" {
		return helper.Success(c, "OK", fiber.Map{
			"transaction_id": trx.TransactionID,
			"status":         trx.TransactionStatus,
		})
	}

	status, raw := trxService.ResolvePaymentStatus(c.UserContext(), *trx.TransactionReference)
	if status == trxService.StatusSuccess {
		log.Printf("[PAYMENT] ✅ polling mendeteksi settle utk %s (provider: %s)", trx.TransactionID, raw)
		if err := trxService.SettleTransaction(ctrl.DB, ctrl.Dispatcher, &trx, "Settled via manual status check"); err != nil {
			log.Printf("[PAYMENT] gagal settle %s: %v", trx.TransactionID, err)
			return helper.Error(c, fiber.StatusInternalServerError, "Pembayaran terdeteksi tapi aktivasi gagal. Coba lagi.")
		}
	}

	return helper.Success(c, "OK", fiber.Map{
		"transaction_id":  trx.TransactionID,
		"status":          trx.TransactionStatus,
		"provider_status": raw,
		"paid_at":         trx.TransactionPaidAt,
	})
}

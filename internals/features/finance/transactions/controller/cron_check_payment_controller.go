// file: internals/features/finance/transactions/controller/cron_check_payment_controller.go
package controller

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	trxModel "eksporyuk_backend/internals/features/finance/transactions/model"
	trxService "eksporyuk_backend/internals/features/finance/transactions/service"
	notifService "eksporyuk_backend/internals/features/notifications/service"
)

type CronPaymentController struct {
	DB         *gorm.DB
	Dispatcher *notifService.Dispatcher
}

func NewCronPaymentController(db *gorm.DB, dispatcher *notifService.Dispatcher) *CronPaymentController {
	return &CronPaymentController{DB: db, Dispatcher: dispatcher}
}

type checkPaymentReport struct {
	Processed int      `json:"processed"`
	Success   int      `json:"success"`
	Failed    int      `json:"failed"`
	Paid      int      `json:"paid"`
	Expired   int      `json:"expired"`
	Unchanged int      `json:"unchanged"`
	Errors    []string `json:"errors"`
}

// 🟢 GET /api/cron/check-payment-status
// Rekonsiliasi untuk webhook yang gagal sampai: cek ulang transaksi PENDING
// ke Xendit API. Hanya transaksi berumur 5 menit–7 hari, maksimal 50 per run.
func (ctrl *CronPaymentController) CheckPendingPayments(c *fiber.Ctx) error {
	log.Println("[CRON] Starting check-payment-status job...")

	fiveMinutesAgo := time.Now().Add(-5 * time.Minute)
	sevenDaysAgo := time.Now().Add(-7 * 24 * time.Hour)

	var pending []trxModel.Transaction
	if err := ctrl.DB.
		Where("transaction_status = ?", trxModel.TransactionPending).
		Where("created_at BETWEEN ? AND ?", sevenDaysAgo, fiveMinutesAgo).
		Where("transaction_reference IS NOT NULL AND transaction_reference <> ''").
		Order("created_at DESC").
		Limit(50).
		Find(&pending).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	log.Printf("[CRON] %d transaksi PENDING akan dicek ke provider", len(pending))

	report := checkPaymentReport{Errors: []string{}}
	for i := range pending {
		trx := &pending[i]
		report.Processed++

		status, raw := trxService.ResolvePaymentStatus(c.UserContext(), *trx.TransactionReference)
		switch {
		case status == trxService.StatusSuccess:
			note := fmt.Sprintf("[AUTO-CHECKED: %s] Status disinkronkan dari Xendit API; webhook asli kemungkinan gagal.", time.Now().Format(time.RFC3339))
			if err := trxService.SettleTransaction(ctrl.DB, ctrl.Dispatcher, trx, note); err != nil {
				report.Failed++
				report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", trx.TransactionID, err))
				continue
			}
			report.Success++
			report.Paid++

		case raw == "EXPIRED":
			if err := ctrl.DB.Model(trx).
				Update("transaction_status", trxModel.TransactionFailed).Error; err != nil {
				report.Failed++
				report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", trx.TransactionID, err))
				continue
			}
			report.Success++
			report.Expired++

		default:
			// provider error atau masih menunggu pembayaran — coba lagi run berikutnya
			report.Unchanged++
		}
	}

	return c.JSON(report)
}

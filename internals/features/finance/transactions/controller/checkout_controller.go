// file: internals/features/finance/transactions/controller/checkout_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"eksporyuk_backend/internals/features/finance/transactions/dto"
	trxModel "eksporyuk_backend/internals/features/finance/transactions/model"
	trxService "eksporyuk_backend/internals/features/finance/transactions/service"
	mModel "eksporyuk_backend/internals/features/memberships/membership/model"
	userModel "eksporyuk_backend/internals/features/users/model"
	helper "eksporyuk_backend/internals/helpers"
)

type CheckoutController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCheckoutController(db *gorm.DB) *CheckoutController {
	return &CheckoutController{DB: db, Validate: validator.New()}
}

// 🟢 POST /api/checkout/membership
// Buat transaksi PENDING + invoice Xendit (default) atau snap token Midtrans.
func (ctrl *CheckoutController) CheckoutMembership(c *fiber.Ctx) error {
	userID, err := userIDFromLocals(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body dto.CheckoutMembershipRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	membershipID, err := uuid.Parse(body.MembershipID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "membership_id tidak valid")
	}

	var plan mModel.Membership
	if err := ctrl.DB.
		Where("membership_id = ? AND membership_is_active = ?", membershipID, true).
		First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Membership plan tidak ditemukan atau tidak aktif")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil membership plan")
	}

	var user userModel.User
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User tidak ditemukan")
	}

	method := body.PaymentMethod
	if method == "" {
		method = "xendit_invoice"
	}

	// 🧾 Order ID unik yang dikirim ke provider
	externalID := fmt.Sprintf("MEMBERSHIP-%s-%d", plan.MembershipSlug, time.Now().UnixNano())

	trx := trxModel.Transaction{
		TransactionUserID:        userID,
		TransactionType:          trxModel.TransactionTypeMembership,
		TransactionStatus:        trxModel.TransactionPending,
		TransactionMembershipID:  &plan.MembershipID,
		TransactionAmount:        plan.MembershipPrice,
		TransactionPaymentMethod: &method,
		TransactionExternalID:    &externalID,
	}
	if err := ctrl.DB.Create(&trx).Error; err != nil {
		log.Printf("[CHECKOUT] gagal simpan transaksi: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat transaksi")
	}

	switch method {
	case "midtrans_snap":
		phone := ""
		if user.UserPhone != nil {
			phone = *user.UserPhone
		}
		token, redirectURL, err := trxService.GenerateSnapToken(trxService.SnapParams{
			OrderID:      externalID,
			Amount:       plan.MembershipPrice,
			ItemName:     plan.MembershipName,
			CustomerName: user.UserName,
			Email:        user.UserEmail,
			Phone:        phone,
		})
		if err != nil {
			log.Printf("[CHECKOUT] midtrans error: %v", err)
			return helper.Error(c, fiber.StatusBadGateway, "Gagal membuat token pembayaran")
		}
		if err := ctrl.DB.Model(&trx).Update("transaction_checkout_url", redirectURL).Error; err != nil {
			log.Printf("[CHECKOUT] gagal simpan checkout_url utk %s: %v", trx.TransactionID, err)
		}

		return helper.SuccessWithCode(c, fiber.StatusCreated, "Transaksi dibuat. Silakan lanjutkan pembayaran.", fiber.Map{
			"transaction_id": trx.TransactionID,
			"snap_token":     token,
			"redirect_url":   redirectURL,
		})

	default: // xendit_invoice
		inv, err := trxService.CreateXenditInvoice(c.UserContext(), trxService.CreateInvoiceParams{
			ExternalID:  externalID,
			Amount:      plan.MembershipPrice,
			PayerEmail:  user.UserEmail,
			Description: fmt.Sprintf("Membership %s", plan.MembershipName),
		})
		if err != nil {
			log.Printf("[CHECKOUT] xendit error: %v", err)
			return helper.Error(c, fiber.StatusBadGateway, "Gagal membuat invoice pembayaran")
		}

		// reference wajib tersimpan — tanpa ini polling & rekonsiliasi buta
		// sampai webhook datang (webhook mem-backfill dari payload.ID)
		if err := ctrl.DB.Model(&trx).Updates(map[string]interface{}{
			"transaction_reference":    inv.InvoiceID,
			"transaction_checkout_url": inv.InvoiceURL,
		}).Error; err != nil {
			log.Printf("[CHECKOUT] gagal simpan reference utk %s: %v", trx.TransactionID, err)
		}

		return helper.SuccessWithCode(c, fiber.StatusCreated, "Transaksi dibuat. Silakan lanjutkan pembayaran.", fiber.Map{
			"transaction_id": trx.TransactionID,
			"invoice_url":    inv.InvoiceURL,
		})
	}
}

func userIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, errors.New("missing user_id")
	}
	return uuid.Parse(raw)
}

// file: internals/features/finance/transactions/service/settlement.go
package service

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	trxModel "eksporyuk_backend/internals/features/finance/transactions/model"
	umService "eksporyuk_backend/internals/features/memberships/user_membership/service"
	notifModel "eksporyuk_backend/internals/features/notifications/model"
	notifService "eksporyuk_backend/internals/features/notifications/service"
	userModel "eksporyuk_backend/internals/features/users/model"
)

// SettleTransaction menandai transaksi SUCCESS lalu menjalankan efek
// downstream-nya (aktivasi membership + notifikasi). Webhook dan polling
// manual sama-sama lewat sini supaya state tidak pernah bercabang.
//
// Idempoten: transaksi yang sudah SUCCESS tetap memanggil activation engine,
// yang punya guard transaction_id sendiri — dobel panggil tidak dobel efek.
func SettleTransaction(db *gorm.DB, dispatcher *notifService.Dispatcher, trx *trxModel.Transaction, note string) error {
	now := time.Now()

	if trx.TransactionStatus != trxModel.TransactionSuccess {
		updates := map[string]interface{}{
			"transaction_status":  trxModel.TransactionSuccess,
			"transaction_paid_at": now,
		}
		if note != "" {
			updates["transaction_notes"] = note
		}
		if err := db.Model(&trxModel.Transaction{}).
			Where("transaction_id = ?", trx.TransactionID).
			Updates(updates).Error; err != nil {
			return err
		}
		trx.TransactionStatus = trxModel.TransactionSuccess
		trx.TransactionPaidAt = &now
	}

	if trx.TransactionType != trxModel.TransactionTypeMembership || trx.TransactionMembershipID == nil {
		// tipe lain (product standalone dsb.) belum punya efek aktivasi di sini
		return nil
	}

	res, err := umService.ActivateMembership(db, umService.ActivationParams{
		UserID:        trx.TransactionUserID,
		MembershipID:  *trx.TransactionMembershipID,
		TransactionID: trx.TransactionID,
		Price:         trx.TransactionAmount,
		Now:           now,
	})
	if err != nil {
		return err
	}
	if res.AlreadyActivated {
		return nil
	}

	// Notifikasi aktivasi — langkah terakhir, di luar jalur transaksional
	if dispatcher != nil {
		var user userModel.User
		if err := db.First(&user, "user_id = ?", trx.TransactionUserID).Error; err != nil {
			log.Printf("[PAYMENT] user %s tidak ditemukan utk notifikasi aktivasi: %v", trx.TransactionUserID, err)
			return nil
		}
		phone := ""
		if user.UserPhone != nil {
			phone = *user.UserPhone
		}
		dispatcher.DispatchAsync(
			notifService.Recipient{UserID: user.UserID, Name: user.UserName, Email: user.UserEmail, Phone: phone},
			notifService.Message{
				Type:    "membership_activated",
				Subject: "Membership Anda sudah aktif 🎉",
				Body:    fmt.Sprintf("Halo %s, pembayaran Anda sudah kami terima dan membership Anda sudah aktif. Selamat belajar!", user.UserName),
			},
			notifModel.ChannelEmail, notifModel.ChannelWhatsApp, notifModel.ChannelPush,
		)
	}

	return nil
}

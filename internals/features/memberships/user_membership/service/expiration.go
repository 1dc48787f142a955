// file: internals/features/memberships/user_membership/service/expiration.go
package service

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	groupModel "eksporyuk_backend/internals/features/community/groups/model"
	courseModel "eksporyuk_backend/internals/features/courses/model"
	umModel "eksporyuk_backend/internals/features/memberships/user_membership/model"
	notifModel "eksporyuk_backend/internals/features/notifications/model"
	notifService "eksporyuk_backend/internals/features/notifications/service"
	userModel "eksporyuk_backend/internals/features/users/model"
)

// SweepReport: hasil batch best-effort. Satu item gagal tidak menghentikan
// item lain — formatnya dikembalikan apa adanya ke pemanggil cron.
type SweepReport struct {
	Processed int      `json:"processed"`
	Success   int      `json:"success"`
	Failed    int      `json:"failed"`
	Errors    []string `json:"errors"`
}

// ExpireDueMemberships memproses semua langganan yang endDate-nya sudah lewat:
// flip ke EXPIRED, cabut entitlement yang diberikan langganan itu, lalu kirim
// notifikasi expiry (fire-and-forget).
//
// endDate NULL (LIFETIME) tidak pernah terpilih. Langganan yang di-supersede
// perpanjangan juga tidak: is_active sudah false sejak aktivasi baru.
func ExpireDueMemberships(db *gorm.DB, dispatcher *notifService.Dispatcher, now time.Time) (*SweepReport, error) {
	report := &SweepReport{Errors: []string{}}

	var due []umModel.UserMembership
	if err := db.
		Where("user_membership_status = ? AND user_membership_is_active = ?", umModel.UserMembershipActive, true).
		Where("user_membership_end_date IS NOT NULL AND user_membership_end_date < ?", now).
		Find(&due).Error; err != nil {
		return report, err
	}

	log.Printf("[CRON] expire-memberships: %d langganan kadaluarsa ditemukan", len(due))

	for _, um := range due {
		report.Processed++
		if err := expireOne(db, dispatcher, um); err != nil {
			report.Failed++
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", um.UserMembershipID, err))
			log.Printf("[CRON] ❌ gagal expire %s: %v", um.UserMembershipID, err)
			continue
		}
		report.Success++
	}

	return report, nil
}

func expireOne(db *gorm.DB, dispatcher *notifService.Dispatcher, um umModel.UserMembership) error {
	// 1) Flip status dulu supaya row ini tidak terpilih lagi di sweep
	// berikutnya. Konsekuensi: kalau pencabutan di bawah gagal, sisanya hanya
	// tercatat di log — tidak di-retry otomatis.
	if err := db.Model(&umModel.UserMembership{}).
		Where("user_membership_id = ?", um.UserMembershipID).
		Updates(map[string]interface{}{
			"user_membership_status":    umModel.UserMembershipExpired,
			"user_membership_is_active": false,
		}).Error; err != nil {
		return err
	}

	// 2) Cabut grant — hanya yang edge-nya menunjuk langganan ini.
	// Grant manual atau dari sumber lain tidak disentuh. Tiap relasi
	// independen: satu gagal, sisanya tetap jalan.
	if err := db.
		Where("user_id = ? AND granted_via_user_membership_id = ?", um.UserMembershipUserID, um.UserMembershipID).
		Delete(&groupModel.GroupMember{}).Error; err != nil {
		log.Printf("[CRON] gagal hapus group_members utk %s: %v", um.UserMembershipID, err)
	}

	if err := db.Model(&courseModel.CourseEnrollment{}).
		Where("user_id = ? AND granted_via_user_membership_id = ?", um.UserMembershipUserID, um.UserMembershipID).
		Update("has_access", false).Error; err != nil {
		log.Printf("[CRON] gagal matikan akses course utk %s: %v", um.UserMembershipID, err)
	}

	if err := db.Model(&courseModel.UserProduct{}).
		Where("user_id = ? AND granted_via_user_membership_id = ?", um.UserMembershipUserID, um.UserMembershipID).
		Update("user_product_is_active", false).Error; err != nil {
		log.Printf("[CRON] gagal nonaktifkan user_products utk %s: %v", um.UserMembershipID, err)
	}

	// 3) Notifikasi expiry — di luar jalur data, boleh lossy
	if dispatcher != nil {
		var user userModel.User
		if err := db.First(&user, "user_id = ?", um.UserMembershipUserID).Error; err != nil {
			log.Printf("[CRON] user %s tidak ditemukan utk notifikasi expiry: %v", um.UserMembershipUserID, err)
			return nil
		}
		phone := ""
		if user.UserPhone != nil {
			phone = *user.UserPhone
		}
		dispatcher.DispatchAsync(
			notifService.Recipient{UserID: user.UserID, Name: user.UserName, Email: user.UserEmail, Phone: phone},
			notifService.Message{
				Type:    "membership_expired",
				Subject: "Membership Anda telah berakhir",
				Body:    fmt.Sprintf("Halo %s, masa aktif membership Anda telah berakhir. Perpanjang sekarang untuk membuka kembali akses kelas dan komunitas.", user.UserName),
			},
			notifModel.ChannelEmail, notifModel.ChannelWhatsApp,
		)
	}

	return nil
}

// file: internals/features/memberships/user_membership/service/reminders.go
package service

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	umModel "eksporyuk_backend/internals/features/memberships/user_membership/model"
	notifModel "eksporyuk_backend/internals/features/notifications/model"
	notifService "eksporyuk_backend/internals/features/notifications/service"
	userModel "eksporyuk_backend/internals/features/users/model"
)

// Jadwal reminder: H-7, H-3, H-1 sebelum endDate.
var reminderDays = []int{7, 3, 1}

// SendExpiryReminders mengirim pengingat ke langganan yang akan berakhir
// dalam 7/3/1 hari. Dipanggil cron harian; pengiriman fire-and-forget.
func SendExpiryReminders(db *gorm.DB, dispatcher *notifService.Dispatcher, now time.Time) (*SweepReport, error) {
	report := &SweepReport{Errors: []string{}}

	horizon := now.AddDate(0, 0, 8)
	var upcoming []umModel.UserMembership
	if err := db.
		Where("user_membership_status = ? AND user_membership_is_active = ?", umModel.UserMembershipActive, true).
		Where("user_membership_end_date IS NOT NULL AND user_membership_end_date BETWEEN ? AND ?", now, horizon).
		Find(&upcoming).Error; err != nil {
		return report, err
	}

	for _, um := range upcoming {
		daysLeft := daysUntil(now, *um.UserMembershipEndDate)
		if !reminderDue(daysLeft) {
			continue
		}
		report.Processed++

		var user userModel.User
		if err := db.First(&user, "user_id = ?", um.UserMembershipUserID).Error; err != nil {
			report.Failed++
			report.Errors = append(report.Errors, fmt.Sprintf("%s: user tidak ditemukan", um.UserMembershipID))
			continue
		}

		phone := ""
		if user.UserPhone != nil {
			phone = *user.UserPhone
		}
		if dispatcher != nil {
			dispatcher.DispatchAsync(
				notifService.Recipient{UserID: user.UserID, Name: user.UserName, Email: user.UserEmail, Phone: phone},
				notifService.Message{
					Type:    "membership_reminder",
					Subject: fmt.Sprintf("Membership Anda berakhir %d hari lagi", daysLeft),
					Body:    fmt.Sprintf("Halo %s, membership Anda akan berakhir dalam %d hari. Perpanjang sekarang agar akses tidak terputus.", user.UserName, daysLeft),
				},
				notifModel.ChannelEmail, notifModel.ChannelWhatsApp,
			)
		}
		report.Success++
	}

	log.Printf("[CRON] membership-reminders: %d reminder dikirim", report.Success)
	return report, nil
}

// daysUntil: selisih hari kalender dibulatkan ke bawah.
func daysUntil(now, end time.Time) int {
	return int(end.Sub(now).Hours() / 24)
}

func reminderDue(daysLeft int) bool {
	for _, d := range reminderDays {
		if daysLeft == d {
			return true
		}
	}
	return false
}

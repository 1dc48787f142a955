// file: internals/features/memberships/user_membership/scheduler/membership_scheduler.go
package scheduler

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	umService "eksporyuk_backend/internals/features/memberships/user_membership/service"
	notifService "eksporyuk_backend/internals/features/notifications/service"
)

// StartMembershipScheduler menjalankan sweep + reminder harian di dalam
// proses, sebagai pelengkap endpoint /api/cron (keduanya idempoten, jadi
// aman kalau scheduler eksternal juga jalan).
//
// Jadwal bisa dioverride lewat env MEMBERSHIP_CRON_SPEC (default 02:00 WIB).
func StartMembershipScheduler(db *gorm.DB, dispatcher *notifService.Dispatcher, spec string) *cron.Cron {
	if spec == "" {
		spec = "0 2 * * *"
	}

	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		log.Println("[CRON] scheduler internal: expire-memberships")
		if report, err := umService.ExpireDueMemberships(db, dispatcher, time.Now()); err != nil {
			log.Printf("[CRON] expire-memberships error: %v", err)
		} else {
			log.Printf("[CRON] expire-memberships selesai: processed=%d success=%d failed=%d",
				report.Processed, report.Success, report.Failed)
		}

		log.Println("[CRON] scheduler internal: membership-reminders")
		if report, err := umService.SendExpiryReminders(db, dispatcher, time.Now()); err != nil {
			log.Printf("[CRON] membership-reminders error: %v", err)
		} else {
			log.Printf("[CRON] membership-reminders selesai: %d reminder", report.Success)
		}
	})
	if err != nil {
		log.Printf("[CRON] spec %q tidak valid, scheduler internal tidak jalan: %v", spec, err)
		return c
	}

	c.Start()
	log.Printf("✅ Membership scheduler aktif (spec: %s)", spec)
	return c
}

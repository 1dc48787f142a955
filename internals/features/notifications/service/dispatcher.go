// file: internals/features/notifications/service/dispatcher.go
package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"eksporyuk_backend/internals/features/notifications/model"
)

// Recipient: target notifikasi lintas channel.
type Recipient struct {
	UserID uuid.UUID
	Name   string
	Email  string
	Phone  string
}

// Message: payload yang sama dikirim ke semua channel yang diminta.
type Message struct {
	Type    string // mis. "membership_activated", "membership_expired"
	Subject string
	Body    string
}

// Channel adalah satu jalur kirim (email / WhatsApp / push).
// Implementasi TIDAK boleh panic; error cukup dikembalikan untuk dicatat.
type Channel interface {
	Name() model.NotificationChannel
	Send(ctx context.Context, to Recipient, msg Message) error
}

// Dispatcher mengirim fire-and-forget. Kegagalan satu channel dicatat ke
// notification_logs dan tidak mempengaruhi channel lain maupun pemanggil.
type Dispatcher struct {
	DB       *gorm.DB
	Channels []Channel
}

func NewDispatcher(db *gorm.DB, channels ...Channel) *Dispatcher {
	return &Dispatcher{DB: db, Channels: channels}
}

// Dispatch mencoba semua channel yang diminta. Tidak pernah mengembalikan
// error — jalur data yang memanggil sudah selesai dan tidak boleh rollback
// gara-gara notifikasi.
func (d *Dispatcher) Dispatch(ctx context.Context, to Recipient, msg Message, wanted ...model.NotificationChannel) {
	for _, ch := range d.Channels {
		if !channelWanted(ch.Name(), wanted) {
			continue
		}

		recipient := recipientFor(ch.Name(), to)
		if recipient == "" {
			log.Printf("[NOTIF] skip %s: recipient kosong untuk user %s", ch.Name(), to.UserID)
			continue
		}

		err := ch.Send(ctx, to, msg)
		status := model.NotificationSent
		var errText *string
		if err != nil {
			status = model.NotificationFailed
			s := err.Error()
			errText = &s
			log.Printf("[NOTIF] ❌ %s gagal ke %s: %v", ch.Name(), recipient, err)
		} else {
			log.Printf("[NOTIF] ✅ %s terkirim: %s ke %s", ch.Name(), msg.Type, recipient)
		}

		d.logAttempt(msg.Type, ch.Name(), recipient, status, errText)
	}
}

// DispatchAsync menjalankan Dispatch di goroutine — dipakai di akhir alur
// transaksional (aktivasi, sweep) supaya tidak pernah memblokir.
func (d *Dispatcher) DispatchAsync(to Recipient, msg Message, wanted ...model.NotificationChannel) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		d.Dispatch(ctx, to, msg, wanted...)
	}()
}

func (d *Dispatcher) logAttempt(msgType string, ch model.NotificationChannel, recipient string, status model.NotificationStatus, errText *string) {
	if d.DB == nil {
		return
	}
	logRow := model.NotificationLog{
		NotificationType:  msgType,
		Channel:           ch,
		Recipient:         recipient,
		Status:            status,
		NotificationError: errText,
		SentAt:            time.Now(),
	}
	if err := d.DB.Create(&logRow).Error; err != nil {
		// log gagal dicatat pun tidak boleh mengganggu alur
		log.Printf("[NOTIF] gagal simpan notification_log: %v", err)
	}
}

func channelWanted(name model.NotificationChannel, wanted []model.NotificationChannel) bool {
	if len(wanted) == 0 {
		return true // tanpa filter = semua channel terpasang
	}
	for _, w := range wanted {
		if w == name {
			return true
		}
	}
	return false
}

func recipientFor(ch model.NotificationChannel, to Recipient) string {
	switch ch {
	case model.ChannelEmail:
		return to.Email
	case model.ChannelWhatsApp:
		return to.Phone
	case model.ChannelPush:
		if to.UserID == uuid.Nil {
			return ""
		}
		return to.UserID.String()
	}
	return ""
}

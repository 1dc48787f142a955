package model

import (
	"time"

	"github.com/google/uuid"
)

type NotificationChannel string
type NotificationStatus string

const (
	ChannelEmail    NotificationChannel = "EMAIL"
	ChannelWhatsApp NotificationChannel = "WHATSAPP"
	ChannelPush     NotificationChannel = "PUSH"
)

const (
	NotificationSent   NotificationStatus = "SENT"
	NotificationFailed NotificationStatus = "FAILED"
)

// NotificationLog mencatat setiap percobaan kirim per channel (audit, bukan antrian).
type NotificationLog struct {
	NotificationLogID uuid.UUID           `json:"notification_log_id" gorm:"column:notification_log_id;type:uuid;default:gen_random_uuid();primaryKey"`
	NotificationType  string              `json:"notification_type" gorm:"column:notification_type;type:varchar(60);not null"`
	Channel           NotificationChannel `json:"channel" gorm:"column:channel;type:varchar(16);not null"`
	Recipient         string              `json:"recipient" gorm:"column:recipient;type:varchar(255);not null"`
	Status            NotificationStatus  `json:"status" gorm:"column:status;type:varchar(10);not null"`
	NotificationError *string             `json:"notification_error" gorm:"column:notification_error;type:text"`
	SentAt            time.Time           `json:"sent_at" gorm:"column:sent_at;type:timestamptz;not null"`
}

func (NotificationLog) TableName() string {
	return "notification_logs"
}

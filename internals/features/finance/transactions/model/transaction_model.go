// file: internals/features/finance/transactions/model/transaction_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* ================================
   ENUM mirror (harus cocok dgn DB)
================================ */

type TransactionStatus string
type TransactionType string

const (
	TransactionPending             TransactionStatus = "PENDING"
	TransactionSuccess             TransactionStatus = "SUCCESS"
	TransactionFailed              TransactionStatus = "FAILED"
	TransactionPendingConfirmation TransactionStatus = "PENDING_CONFIRMATION"
)

const (
	TransactionTypeMembership TransactionType = "MEMBERSHIP"
	TransactionTypeProduct    TransactionType = "PRODUCT"
)

/* ================================
   MODEL: transactions
================================ */

// Transaction dibuat saat checkout dimulai. Transisi status adalah trigger
// semua efek downstream (aktivasi, notifikasi). Tidak pernah dihapus.
type Transaction struct {
	TransactionID     uuid.UUID         `json:"transaction_id" gorm:"column:transaction_id;type:uuid;default:gen_random_uuid();primaryKey"`
	TransactionUserID uuid.UUID         `json:"transaction_user_id" gorm:"column:transaction_user_id;type:uuid;not null;index"`
	TransactionType   TransactionType   `json:"transaction_type" gorm:"column:transaction_type;type:transaction_type;not null"`
	TransactionStatus TransactionStatus `json:"transaction_status" gorm:"column:transaction_status;type:transaction_status;not null;default:'PENDING';index"`

	// Target pembelian (salah satu terisi sesuai type)
	TransactionMembershipID *uuid.UUID `json:"transaction_membership_id" gorm:"column:transaction_membership_id;type:uuid"`
	TransactionProductID    *uuid.UUID `json:"transaction_product_id" gorm:"column:transaction_product_id;type:uuid"`

	TransactionAmount int64 `json:"transaction_amount" gorm:"column:transaction_amount;type:bigint;not null;check:transaction_amount>=0"`

	// Info gateway
	TransactionPaymentMethod *string `json:"transaction_payment_method" gorm:"column:transaction_payment_method;type:varchar(32)"`
	// ID kita yang dikirim ke provider (order id)
	TransactionExternalID *string `json:"transaction_external_id" gorm:"column:transaction_external_id;type:text;index"`
	// ID dari provider: invoice id Xendit, atau payment request (prefix "pr-")
	TransactionReference   *string `json:"transaction_reference" gorm:"column:transaction_reference;type:text;index"`
	TransactionCheckoutURL *string `json:"transaction_checkout_url" gorm:"column:transaction_checkout_url;type:text"`

	TransactionPaidAt *time.Time `json:"transaction_paid_at" gorm:"column:transaction_paid_at;type:timestamptz"`
	TransactionNotes  *string    `json:"transaction_notes" gorm:"column:transaction_notes;type:text"`

	// Payload mentah / jejak sinkronisasi dari provider
	TransactionMetadata datatypes.JSON `json:"transaction_metadata" gorm:"column:transaction_metadata;type:jsonb"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime;index"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// file: internals/features/memberships/user_membership/model/user_membership_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type UserMembershipStatus string

const (
	UserMembershipActive  UserMembershipStatus = "ACTIVE"
	UserMembershipExpired UserMembershipStatus = "EXPIRED"
)

// UserMembership adalah instance langganan milik satu user.
// State machine: (none) → ACTIVE → EXPIRED. Tidak ada resurrection;
// perpanjangan selalu membuat row baru, row lama di-EXPIRED-kan lebih awal.
//
// Invariant "maksimal satu row aktif per user" dijaga dua lapis:
// aplikasi men-deactivate row lama dulu, dan partial unique index
// uq_user_membership_active menjadi backstop di level database.
type UserMembership struct {
	UserMembershipID           uuid.UUID            `json:"user_membership_id" gorm:"column:user_membership_id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserMembershipUserID       uuid.UUID            `json:"user_membership_user_id" gorm:"column:user_membership_user_id;type:uuid;not null;uniqueIndex:uq_user_membership_active,where:user_membership_is_active = true"`
	UserMembershipMembershipID uuid.UUID            `json:"user_membership_membership_id" gorm:"column:user_membership_membership_id;type:uuid;not null"`
	UserMembershipStatus       UserMembershipStatus `json:"user_membership_status" gorm:"column:user_membership_status;type:user_membership_status;not null;default:'ACTIVE'"`
	UserMembershipIsActive     bool                 `json:"user_membership_is_active" gorm:"column:user_membership_is_active;not null;default:true"`

	UserMembershipStartDate time.Time `json:"user_membership_start_date" gorm:"column:user_membership_start_date;type:timestamptz;not null"`
	// NULL = LIFETIME (tidak pernah kadaluarsa). Sentinel +100 tahun dari
	// sistem lama tidak dipakai lagi.
	UserMembershipEndDate *time.Time `json:"user_membership_end_date" gorm:"column:user_membership_end_date;type:timestamptz"`

	// Idempotency guard: satu transaksi hanya boleh mengaktifkan satu langganan.
	UserMembershipTransactionID uuid.UUID `json:"user_membership_transaction_id" gorm:"column:user_membership_transaction_id;type:uuid;not null;unique"`

	UserMembershipPrice       int64      `json:"user_membership_price" gorm:"column:user_membership_price;type:bigint;not null"`
	UserMembershipActivatedAt *time.Time `json:"user_membership_activated_at" gorm:"column:user_membership_activated_at;type:timestamptz"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (UserMembership) TableName() string {
	return "user_memberships"
}

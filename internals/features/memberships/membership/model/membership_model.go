// file: internals/features/memberships/membership/model/membership_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* ================================
   ENUM mirror (harus cocok dgn DB)
================================ */

type MembershipDuration string

const (
	DurationOneMonth     MembershipDuration = "ONE_MONTH"
	DurationThreeMonths  MembershipDuration = "THREE_MONTHS"
	DurationSixMonths    MembershipDuration = "SIX_MONTHS"
	DurationTwelveMonths MembershipDuration = "TWELVE_MONTHS"
	DurationLifetime     MembershipDuration = "LIFETIME"
)

/* ================================
   MODEL: memberships (paket/plan)
================================ */

// Membership adalah plan yang bisa dibeli. Setelah direferensikan
// UserMembership aktif, edit hanya berlaku untuk pembelian berikutnya.
// Tidak pernah dihapus fisik — soft-delete via membership_is_active.
type Membership struct {
	MembershipID          uuid.UUID          `json:"membership_id" gorm:"column:membership_id;type:uuid;default:gen_random_uuid();primaryKey"`
	MembershipName        string             `json:"membership_name" gorm:"column:membership_name;type:varchar(120);not null"`
	MembershipSlug        string             `json:"membership_slug" gorm:"column:membership_slug;type:varchar(140);not null;unique"`
	MembershipDescription *string            `json:"membership_description" gorm:"column:membership_description;type:text"`
	MembershipDuration    MembershipDuration `json:"membership_duration" gorm:"column:membership_duration;type:membership_duration;not null;default:'ONE_MONTH'"`
	MembershipPrice       int64              `json:"membership_price" gorm:"column:membership_price;type:bigint;not null;check:membership_price>=0"`

	// Konfigurasi komisi affiliate (persen ATAU nominal flat)
	MembershipCommissionRate   *float64 `json:"membership_commission_rate" gorm:"column:membership_commission_rate;type:numeric(5,2)"`
	MembershipCommissionAmount *int64   `json:"membership_commission_amount" gorm:"column:membership_commission_amount;type:bigint"`

	MembershipIsActive bool `json:"membership_is_active" gorm:"column:membership_is_active;not null;default:true"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (Membership) TableName() string {
	return "memberships"
}

/* ================================
   Mapping plan → resource (statis, diatur admin)
================================ */

type MembershipGroup struct {
	MembershipGroupID uuid.UUID `json:"membership_group_id" gorm:"column:membership_group_id;type:uuid;default:gen_random_uuid();primaryKey"`
	MembershipID      uuid.UUID `json:"membership_id" gorm:"column:membership_id;type:uuid;not null;uniqueIndex:uq_membership_group"`
	GroupID           uuid.UUID `json:"group_id" gorm:"column:group_id;type:uuid;not null;uniqueIndex:uq_membership_group"`
}

func (MembershipGroup) TableName() string {
	return "membership_groups"
}

type MembershipCourse struct {
	MembershipCourseID uuid.UUID `json:"membership_course_id" gorm:"column:membership_course_id;type:uuid;default:gen_random_uuid();primaryKey"`
	MembershipID       uuid.UUID `json:"membership_id" gorm:"column:membership_id;type:uuid;not null;uniqueIndex:uq_membership_course"`
	CourseID           uuid.UUID `json:"course_id" gorm:"column:course_id;type:uuid;not null;uniqueIndex:uq_membership_course"`
}

func (MembershipCourse) TableName() string {
	return "membership_courses"
}

type MembershipProduct struct {
	MembershipProductID uuid.UUID `json:"membership_product_id" gorm:"column:membership_product_id;type:uuid;default:gen_random_uuid();primaryKey"`
	MembershipID        uuid.UUID `json:"membership_id" gorm:"column:membership_id;type:uuid;not null;uniqueIndex:uq_membership_product"`
	ProductID           uuid.UUID `json:"product_id" gorm:"column:product_id;type:uuid;not null;uniqueIndex:uq_membership_product"`
}

func (MembershipProduct) TableName() string {
	return "membership_products"
}

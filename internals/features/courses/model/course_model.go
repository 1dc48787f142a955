// file: internals/features/courses/model/course_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Course struct {
	CourseID          uuid.UUID `json:"course_id" gorm:"column:course_id;type:uuid;default:gen_random_uuid();primaryKey"`
	CourseTitle       string    `json:"course_title" gorm:"column:course_title;type:varchar(160);not null"`
	CourseSlug        string    `json:"course_slug" gorm:"column:course_slug;type:varchar(180);not null;unique"`
	CourseDescription *string   `json:"course_description" gorm:"column:course_description;type:text"`
	CourseIsPublished bool      `json:"course_is_published" gorm:"column:course_is_published;not null;default:false"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (Course) TableName() string {
	return "courses"
}

// CourseEnrollment menyimpan akses + progress user pada satu course.
// Row TIDAK dihapus saat langganan kadaluarsa — progress dipertahankan,
// hanya has_access yang dimatikan (dan hanya jika granted_via cocok).
type CourseEnrollment struct {
	CourseEnrollmentID uuid.UUID `json:"course_enrollment_id" gorm:"column:course_enrollment_id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID             uuid.UUID `json:"user_id" gorm:"column:user_id;type:uuid;not null;uniqueIndex:uq_course_enrollment"`
	CourseID           uuid.UUID `json:"course_id" gorm:"column:course_id;type:uuid;not null;uniqueIndex:uq_course_enrollment"`

	CourseEnrollmentProgress int            `json:"course_enrollment_progress" gorm:"column:course_enrollment_progress;not null;default:0"`
	CompletedLessons         pq.StringArray `json:"completed_lessons" gorm:"column:completed_lessons;type:text[]"`

	HasAccess       bool       `json:"has_access" gorm:"column:has_access;not null;default:false"`
	AccessGrantedAt *time.Time `json:"access_granted_at" gorm:"column:access_granted_at;type:timestamptz"`
	AccessExpiresAt *time.Time `json:"access_expires_at" gorm:"column:access_expires_at;type:timestamptz"`
	LastAccessedAt  *time.Time `json:"last_accessed_at" gorm:"column:last_accessed_at;type:timestamptz"`

	GrantedViaUserMembershipID *uuid.UUID `json:"granted_via_user_membership_id" gorm:"column:granted_via_user_membership_id;type:uuid"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (CourseEnrollment) TableName() string {
	return "course_enrollments"
}

type Product struct {
	ProductID       uuid.UUID `json:"product_id" gorm:"column:product_id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductName     string    `json:"product_name" gorm:"column:product_name;type:varchar(160);not null"`
	ProductSlug     string    `json:"product_slug" gorm:"column:product_slug;type:varchar(180);not null;unique"`
	ProductPrice    int64     `json:"product_price" gorm:"column:product_price;type:bigint;not null;default:0"`
	ProductIsActive bool      `json:"product_is_active" gorm:"column:product_is_active;not null;default:true"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (Product) TableName() string {
	return "products"
}

// ProductCourse: course yang ikut terbuka saat product dimiliki.
type ProductCourse struct {
	ProductCourseID uuid.UUID `json:"product_course_id" gorm:"column:product_course_id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID       uuid.UUID `json:"product_id" gorm:"column:product_id;type:uuid;not null;uniqueIndex:uq_product_course"`
	CourseID        uuid.UUID `json:"course_id" gorm:"column:course_id;type:uuid;not null;uniqueIndex:uq_product_course"`
}

func (ProductCourse) TableName() string {
	return "product_courses"
}

type UserProduct struct {
	UserProductID uuid.UUID `json:"user_product_id" gorm:"column:user_product_id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID        uuid.UUID `json:"user_id" gorm:"column:user_id;type:uuid;not null;uniqueIndex:uq_user_product"`
	ProductID     uuid.UUID `json:"product_id" gorm:"column:product_id;type:uuid;not null;uniqueIndex:uq_user_product"`

	UserProductTransactionID *uuid.UUID `json:"user_product_transaction_id" gorm:"column:user_product_transaction_id;type:uuid"`
	UserProductPrice         int64      `json:"user_product_price" gorm:"column:user_product_price;type:bigint;not null;default:0"`
	UserProductIsActive      bool       `json:"user_product_is_active" gorm:"column:user_product_is_active;not null;default:true"`
	UserProductExpiresAt     *time.Time `json:"user_product_expires_at" gorm:"column:user_product_expires_at;type:timestamptz"`

	GrantedViaUserMembershipID *uuid.UUID `json:"granted_via_user_membership_id" gorm:"column:granted_via_user_membership_id;type:uuid"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
}

func (UserProduct) TableName() string {
	return "user_products"
}

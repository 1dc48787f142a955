// file: internals/features/memberships/user_membership/service/propagation.go
package service

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	groupModel "eksporyuk_backend/internals/features/community/groups/model"
	courseModel "eksporyuk_backend/internals/features/courses/model"
	mModel "eksporyuk_backend/internals/features/memberships/membership/model"
)

type PropagationResult struct {
	GroupsJoined      int `json:"groups_joined"`
	CoursesActivated  int `json:"courses_activated"`
	ProductsActivated int `json:"products_activated"`
}

// PropagateEntitlements membuka semua akses yang dipetakan plan:
// group → group_members, course → course_enrollments (langsung maupun lewat
// product), product → user_products. Upsert idempoten per mapping — aman
// dipanggil berulang (perpanjangan, webhook + poll race) tanpa duplikat.
// Tidak pernah MENCABUT akses; pencabutan urusan sweeper.
func PropagateEntitlements(db *gorm.DB, userID, membershipID, grantedVia uuid.UUID, endDate *time.Time) (*PropagationResult, error) {
	res := &PropagationResult{}

	// 1) Groups
	var groupMaps []mModel.MembershipGroup
	if err := db.Where("membership_id = ?", membershipID).Find(&groupMaps).Error; err != nil {
		return nil, err
	}
	for _, gm := range groupMaps {
		joined, err := joinGroup(db, userID, gm.GroupID, grantedVia)
		if err != nil {
			return nil, err
		}
		if joined {
			res.GroupsJoined++
		}
	}

	// 2) Courses langsung dari plan
	var courseMaps []mModel.MembershipCourse
	if err := db.Where("membership_id = ?", membershipID).Find(&courseMaps).Error; err != nil {
		return nil, err
	}
	for _, cm := range courseMaps {
		if err := activateCourseAccess(db, userID, cm.CourseID, grantedVia, endDate); err != nil {
			return nil, err
		}
		res.CoursesActivated++
	}

	// 3) Products dari plan (beserta course di dalamnya)
	var productMaps []mModel.MembershipProduct
	if err := db.Where("membership_id = ?", membershipID).Find(&productMaps).Error; err != nil {
		return nil, err
	}
	for _, pm := range productMaps {
		granted, err := grantProduct(db, userID, pm.ProductID, grantedVia, endDate)
		if err != nil {
			return nil, err
		}
		if granted {
			res.ProductsActivated++
		}

		var productCourses []courseModel.ProductCourse
		if err := db.Where("product_id = ?", pm.ProductID).Find(&productCourses).Error; err != nil {
			return nil, err
		}
		for _, pc := range productCourses {
			if err := activateCourseAccess(db, userID, pc.CourseID, grantedVia, endDate); err != nil {
				return nil, err
			}
			res.CoursesActivated++
		}
	}

	return res, nil
}

// joinGroup: insert hanya jika belum member (idempotency guard).
func joinGroup(db *gorm.DB, userID, groupID, grantedVia uuid.UUID) (bool, error) {
	var existing groupModel.GroupMember
	err := db.Where("group_id = ? AND user_id = ?", groupID, userID).First(&existing).Error
	if err == nil {
		// sudah member — kalau grant lama berasal dari langganan, pindahkan
		// edge ke langganan terbaru supaya revocation akurat saat expired.
		// Grant manual (granted_via NULL) tidak disentuh.
		if existing.GrantedViaUserMembershipID != nil && *existing.GrantedViaUserMembershipID != grantedVia {
			if err := db.Model(&existing).
				Update("granted_via_user_membership_id", grantedVia).Error; err != nil {
				log.Printf("[MEMBERSHIP] gagal update granted_via group %s: %v", groupID, err)
			}
		}
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	member := groupModel.GroupMember{
		GroupID:                    groupID,
		UserID:                     userID,
		GroupMemberRole:            "MEMBER",
		GrantedViaUserMembershipID: &grantedVia,
	}
	if err := db.Create(&member).Error; err != nil {
		return false, err
	}
	return true, nil
}

// activateCourseAccess: buat enrollment baru (progress 0) atau nyalakan
// kembali akses pada enrollment yang sudah ada tanpa mereset progress.
func activateCourseAccess(db *gorm.DB, userID, courseID, grantedVia uuid.UUID, expiresAt *time.Time) error {
	now := time.Now()

	var existing courseModel.CourseEnrollment
	err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error
	if err == nil {
		updates := map[string]interface{}{
			"has_access":        true,
			"access_granted_at": now,
			"access_expires_at": expiresAt,
		}
		if existing.GrantedViaUserMembershipID != nil {
			updates["granted_via_user_membership_id"] = grantedVia
		}
		return db.Model(&existing).Updates(updates).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	enrollment := courseModel.CourseEnrollment{
		UserID:                     userID,
		CourseID:                   courseID,
		CourseEnrollmentProgress:   0,
		HasAccess:                  true,
		AccessGrantedAt:            &now,
		AccessExpiresAt:            expiresAt,
		GrantedViaUserMembershipID: &grantedVia,
	}
	return db.Create(&enrollment).Error
}

func grantProduct(db *gorm.DB, userID, productID, grantedVia uuid.UUID, expiresAt *time.Time) (bool, error) {
	var existing courseModel.UserProduct
	err := db.Where("user_id = ? AND product_id = ?", userID, productID).First(&existing).Error
	if err == nil {
		if !existing.UserProductIsActive {
			if err := db.Model(&existing).Updates(map[string]interface{}{
				"user_product_is_active":  true,
				"user_product_expires_at": expiresAt,
			}).Error; err != nil {
				return false, err
			}
		}
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	up := courseModel.UserProduct{
		UserID:                     userID,
		ProductID:                  productID,
		UserProductIsActive:        true,
		UserProductExpiresAt:       expiresAt,
		GrantedViaUserMembershipID: &grantedVia,
	}
	if err := db.Create(&up).Error; err != nil {
		return false, err
	}
	return true, nil
}

// file: internals/features/memberships/user_membership/service/activation.go
package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"eksporyuk_backend/internals/constants"
	mModel "eksporyuk_backend/internals/features/memberships/membership/model"
	umModel "eksporyuk_backend/internals/features/memberships/user_membership/model"
	userModel "eksporyuk_backend/internals/features/users/model"
)

var ErrMembershipNotFound = errors.New("membership plan tidak ditemukan")

type ActivationParams struct {
	UserID        uuid.UUID
	MembershipID  uuid.UUID
	TransactionID uuid.UUID
	Price         int64
	Now           time.Time // zero = time.Now()
}

type ActivationResult struct {
	UserMembership   *umModel.UserMembership `json:"user_membership"`
	Propagation      *PropagationResult      `json:"propagation"`
	RoleUpgraded     bool                    `json:"role_upgraded"`
	AlreadyActivated bool                    `json:"already_activated"`
}

// ActivateMembership mengaktifkan langganan dari transaksi yang sudah SUCCESS.
//
// Guard idempoten paling depan: transaction_id yang sudah pernah mengaktifkan
// langganan (webhook + poll manual sama-sama masuk) langsung return tanpa efek.
// Sisanya berjalan dalam SATU transaksi database: upgrade role, deactivate
// langganan lama, insert row baru, propagasi entitlement. Kalau ada langkah
// gagal, semuanya rollback — user tidak pernah tertinggal tanpa langganan.
func ActivateMembership(db *gorm.DB, p ActivationParams) (*ActivationResult, error) {
	now := p.Now
	if now.IsZero() {
		now = time.Now()
	}

	// 0) Idempotency guard: satu transaksi = satu aktivasi
	var existing umModel.UserMembership
	err := db.Where("user_membership_transaction_id = ?", p.TransactionID).First(&existing).Error
	if err == nil {
		log.Printf("[MEMBERSHIP] transaksi %s sudah pernah diaktivasi, skip", p.TransactionID)
		return &ActivationResult{UserMembership: &existing, AlreadyActivated: true}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var plan mModel.Membership
	if err := db.First(&plan, "membership_id = ?", p.MembershipID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMembershipNotFound
		}
		return nil, err
	}

	res := &ActivationResult{}

	err = db.Transaction(func(tx *gorm.DB) error {
		// 1) Upgrade role MEMBER_FREE → MEMBER_PREMIUM. Role lebih tinggi
		// (ADMIN, MENTOR) tidak pernah diturunkan — WHERE membatasi ke free.
		upgrade := tx.Model(&userModel.User{}).
			Where("user_id = ? AND user_role = ?", p.UserID, constants.RoleMemberFree).
			Update("user_role", constants.RoleMemberPremium)
		if upgrade.Error != nil {
			return upgrade.Error
		}
		res.RoleUpgraded = upgrade.RowsAffected > 0

		// 2) Deactivate semua langganan aktif user (satu user satu plan aktif)
		if err := tx.Model(&umModel.UserMembership{}).
			Where("user_membership_user_id = ? AND user_membership_is_active = ?", p.UserID, true).
			Updates(map[string]interface{}{
				"user_membership_is_active": false,
				"user_membership_status":    umModel.UserMembershipExpired,
			}).Error; err != nil {
			return err
		}

		// 3) Hitung window & insert langganan baru
		endDate := MembershipEndDate(now, plan.MembershipDuration)
		um := umModel.UserMembership{
			UserMembershipUserID:        p.UserID,
			UserMembershipMembershipID:  plan.MembershipID,
			UserMembershipTransactionID: p.TransactionID,
			UserMembershipStatus:        umModel.UserMembershipActive,
			UserMembershipIsActive:      true,
			UserMembershipStartDate:     now,
			UserMembershipEndDate:       endDate,
			UserMembershipPrice:         p.Price,
			UserMembershipActivatedAt:   &now,
		}
		if err := tx.Create(&um).Error; err != nil {
			return fmt.Errorf("gagal insert user_membership: %w", err)
		}
		res.UserMembership = &um

		// 4) Propagasi entitlement di dalam transaksi yang sama
		prop, err := PropagateEntitlements(tx, p.UserID, plan.MembershipID, um.UserMembershipID, endDate)
		if err != nil {
			return err
		}
		res.Propagation = prop

		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[MEMBERSHIP] ✅ aktivasi %s untuk user %s (groups=%d courses=%d products=%d)",
		plan.MembershipName, p.UserID,
		res.Propagation.GroupsJoined, res.Propagation.CoursesActivated, res.Propagation.ProductsActivated)

	return res, nil
}

// file: internals/features/memberships/user_membership/controller/user_membership_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	umModel "eksporyuk_backend/internals/features/memberships/user_membership/model"
	helper "eksporyuk_backend/internals/helpers"
)

type UserMembershipController struct {
	DB *gorm.DB
}

func NewUserMembershipController(db *gorm.DB) *UserMembershipController {
	return &UserMembershipController{DB: db}
}

// 🟢 GET /api/my-membership — langganan aktif + riwayat (audit trail tetap ada)
func (ctrl *UserMembershipController) GetMyMembership(c *fiber.Ctx) error {
	userID, err := userIDFromLocals(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var active umModel.UserMembership
	var current *umModel.UserMembership
	err = ctrl.DB.
		Where("user_membership_user_id = ? AND user_membership_is_active = ?", userID, true).
		First(&active).Error
	if err == nil {
		current = &active
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil membership")
	}

	var history []umModel.UserMembership
	if err := ctrl.DB.
		Where("user_membership_user_id = ?", userID).
		Order("created_at DESC").
		Limit(20).
		Find(&history).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat membership")
	}

	return helper.Success(c, "OK", fiber.Map{
		"active":  current,
		"history": history,
	})
}

func userIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, errors.New("missing user_id")
	}
	return uuid.Parse(raw)
}

// file: internals/features/memberships/membership/controller/membership_plan_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"eksporyuk_backend/internals/features/memberships/membership/dto"
	"eksporyuk_backend/internals/features/memberships/membership/model"
	helper "eksporyuk_backend/internals/helpers"
)

type MembershipPlanController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewMembershipPlanController(db *gorm.DB) *MembershipPlanController {
	return &MembershipPlanController{DB: db, Validate: validator.New()}
}

// 🟢 CREATE PLAN (admin): plan + mapping group/course/product sekaligus
func (ctrl *MembershipPlanController) CreateMembershipPlan(c *fiber.Ctx) error {
	var body dto.CreateMembershipRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	plan := model.Membership{
		MembershipName:             body.Name,
		MembershipSlug:             body.Slug,
		MembershipDescription:      body.Description,
		MembershipDuration:         model.MembershipDuration(body.Duration),
		MembershipPrice:            body.Price,
		MembershipCommissionRate:   body.CommissionRate,
		MembershipCommissionAmount: body.CommissionAmount,
		MembershipIsActive:         true,
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&plan).Error; err != nil {
			return err
		}
		for _, raw := range body.GroupIDs {
			gid, err := uuid.Parse(raw)
			if err != nil {
				return err
			}
			if err := tx.Create(&model.MembershipGroup{MembershipID: plan.MembershipID, GroupID: gid}).Error; err != nil {
				return err
			}
		}
		for _, raw := range body.CourseIDs {
			cid, err := uuid.Parse(raw)
			if err != nil {
				return err
			}
			if err := tx.Create(&model.MembershipCourse{MembershipID: plan.MembershipID, CourseID: cid}).Error; err != nil {
				return err
			}
		}
		for _, raw := range body.ProductIDs {
			pid, err := uuid.Parse(raw)
			if err != nil {
				return err
			}
			if err := tx.Create(&model.MembershipProduct{MembershipID: plan.MembershipID, ProductID: pid}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("[MEMBERSHIP] gagal create plan: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan membership plan")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Membership plan berhasil dibuat", plan)
}

// 🟢 LIST PLAN (public): hanya plan aktif, untuk halaman pricing
func (ctrl *MembershipPlanController) GetActivePlans(c *fiber.Ctx) error {
	var plans []model.Membership
	if err := ctrl.DB.
		Where("membership_is_active = ?", true).
		Order("membership_price ASC").
		Find(&plans).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil membership plans")
	}
	return helper.Success(c, "OK", plans)
}

// 🟢 DETAIL PLAN by slug (public)
func (ctrl *MembershipPlanController) GetPlanBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var plan model.Membership
	if err := ctrl.DB.
		Where("membership_slug = ? AND membership_is_active = ?", slug, true).
		First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Membership plan tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil membership plan")
	}
	return helper.Success(c, "OK", plan)
}

// 🟢 UPDATE PLAN (admin) — hanya mempengaruhi pembelian berikutnya;
// langganan yang sudah aktif tidak berubah.
func (ctrl *MembershipPlanController) UpdateMembershipPlan(c *fiber.Ctx) error {
	planID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID plan tidak valid")
	}

	var body dto.UpdateMembershipRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var plan model.Membership
	if err := ctrl.DB.First(&plan, "membership_id = ?", planID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Membership plan tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil membership plan")
	}

	updates := map[string]interface{}{}
	if body.Name != nil {
		updates["membership_name"] = *body.Name
	}
	if body.Description != nil {
		updates["membership_description"] = *body.Description
	}
	if body.Duration != nil {
		updates["membership_duration"] = *body.Duration
	}
	if body.Price != nil {
		updates["membership_price"] = *body.Price
	}
	if body.CommissionRate != nil {
		updates["membership_commission_rate"] = *body.CommissionRate
	}
	if body.CommissionAmount != nil {
		updates["membership_commission_amount"] = *body.CommissionAmount
	}
	if body.IsActive != nil {
		updates["membership_is_active"] = *body.IsActive
	}
	if len(updates) == 0 {
		return helper.Success(c, "Tidak ada perubahan", plan)
	}

	if err := ctrl.DB.Model(&plan).Updates(updates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui membership plan")
	}
	return helper.Success(c, "Membership plan berhasil diperbarui", plan)
}

// 🟢 DELETE PLAN (admin) — soft delete via is_active; row tidak pernah
// dihapus fisik selama masih direferensikan langganan.
func (ctrl *MembershipPlanController) DeleteMembershipPlan(c *fiber.Ctx) error {
	planID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID plan tidak valid")
	}

	result := ctrl.DB.Model(&model.Membership{}).
		Where("membership_id = ?", planID).
		Update("membership_is_active", false)
	if result.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menonaktifkan membership plan")
	}
	if result.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Membership plan tidak ditemukan")
	}
	return helper.Success(c, "Membership plan dinonaktifkan", nil)
}

// file: internals/route/details/membership_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eksporyuk_backend/internals/constants"
	mController "eksporyuk_backend/internals/features/memberships/membership/controller"
	umController "eksporyuk_backend/internals/features/memberships/user_membership/controller"
	authMiddleware "eksporyuk_backend/internals/middlewares/auth"
)

// MembershipRoutes: pricing publik, my-membership user, CRUD plan admin.
func MembershipRoutes(public fiber.Router, user fiber.Router, admin fiber.Router, db *gorm.DB) {
	planCtrl := mController.NewMembershipPlanController(db)
	umCtrl := umController.NewUserMembershipController(db)

	// PUBLIC
	public.Get("/membership-plans", planCtrl.GetActivePlans)
	public.Get("/membership-plans/:slug", planCtrl.GetPlanBySlug)

	// USER
	user.Get("/my-membership", umCtrl.GetMyMembership)

	// ADMIN
	adminOnly := authMiddleware.OnlyRolesSlice(
		constants.RoleErrorAdmin("membership plans"),
		constants.AdminOnly,
	)
	admin.Post("/membership-plans", adminOnly, planCtrl.CreateMembershipPlan)
	admin.Put("/membership-plans/:id", adminOnly, planCtrl.UpdateMembershipPlan)
	admin.Delete("/membership-plans/:id", adminOnly, planCtrl.DeleteMembershipPlan)
}

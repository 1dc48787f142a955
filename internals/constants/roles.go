package constants

import "fmt"

// Role user mengikuti enum di database (uppercase, warisan skema lama)
const (
	RoleMemberFree    = "MEMBER_FREE"
	RoleMemberPremium = "MEMBER_PREMIUM"
	RoleMentor        = "MENTOR"
	RoleAffiliate     = "AFFILIATE"
	RoleAdmin         = "ADMIN"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess  = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyMemberCanAccess  = "❌ Fitur %s hanya untuk member."
	ErrPremiumOnlyCanAccess = "❌ Fitur %s hanya untuk member premium."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorMember(feature string) string {
	return fmt.Sprintf(ErrOnlyMemberCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleMemberFree,
		RoleMemberPremium,
		RoleMentor,
		RoleAffiliate,
		RoleAdmin,
	}

	PremiumAndAbove = []string{
		RoleMemberPremium,
		RoleMentor,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

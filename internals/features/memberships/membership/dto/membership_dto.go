package dto

// Request admin untuk membuat / mengubah plan.
type CreateMembershipRequest struct {
	Name             string   `json:"name" validate:"required,min=3,max=120"`
	Slug             string   `json:"slug" validate:"required,min=3,max=140"`
	Description      *string  `json:"description"`
	Duration         string   `json:"duration" validate:"required,oneof=ONE_MONTH THREE_MONTHS SIX_MONTHS TWELVE_MONTHS LIFETIME"`
	Price            int64    `json:"price" validate:"required,gte=0"`
	CommissionRate   *float64 `json:"commission_rate" validate:"omitempty,gte=0,lte=100"`
	CommissionAmount *int64   `json:"commission_amount" validate:"omitempty,gte=0"`

	GroupIDs   []string `json:"group_ids" validate:"omitempty,dive,uuid4"`
	CourseIDs  []string `json:"course_ids" validate:"omitempty,dive,uuid4"`
	ProductIDs []string `json:"product_ids" validate:"omitempty,dive,uuid4"`
}

type UpdateMembershipRequest struct {
	Name             *string  `json:"name" validate:"omitempty,min=3,max=120"`
	Description      *string  `json:"description"`
	Duration         *string  `json:"duration" validate:"omitempty,oneof=ONE_MONTH THREE_MONTHS SIX_MONTHS TWELVE_MONTHS LIFETIME"`
	Price            *int64   `json:"price" validate:"omitempty,gte=0"`
	CommissionRate   *float64 `json:"commission_rate" validate:"omitempty,gte=0,lte=100"`
	CommissionAmount *int64   `json:"commission_amount" validate:"omitempty,gte=0"`
	IsActive         *bool    `json:"is_active"`
}

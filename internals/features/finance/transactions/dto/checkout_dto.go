package dto

// CheckoutMembershipRequest: user memilih plan + metode pembayaran.
type CheckoutMembershipRequest struct {
	MembershipID  string `json:"membership_id" validate:"required,uuid4"`
	PaymentMethod string `json:"payment_method" validate:"omitempty,oneof=xendit_invoice midtrans_snap"`
}

// XenditWebhookPayload: body callback invoice dari Xendit (field yang dipakai saja).
type XenditWebhookPayload struct {
	ID         string `json:"id"`
	ExternalID string `json:"external_id"`
	Status     string `json:"status"`
	PaidAmount int64  `json:"paid_amount"`
	PaidAt     string `json:"paid_at"`
}

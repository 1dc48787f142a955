package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeProviderStatus(t *testing.T) {
	tests := []struct {
		name           string
		providerStatus string
		want           PaymentStatus
	}{
		{name: "SUCCEEDED is paid", providerStatus: "SUCCEEDED", want: StatusSuccess},
		{name: "PAID is paid", providerStatus: "PAID", want: StatusSuccess},
		{name: "SETTLED is paid", providerStatus: "SETTLED", want: StatusSuccess},
		{name: "CAPTURED is paid", providerStatus: "CAPTURED", want: StatusSuccess},
		{name: "lowercase paid also counts", providerStatus: "paid", want: StatusSuccess},
		{name: "PENDING stays pending", providerStatus: "PENDING", want: StatusPending},
		{name: "AWAITING_CAPTURE stays pending", providerStatus: "AWAITING_CAPTURE", want: StatusPending},
		{name: "EXPIRED is not success", providerStatus: "EXPIRED", want: StatusPending},
		{name: "unknown vocabulary falls back to pending", providerStatus: "SOMETHING_NEW", want: StatusPending},
		{name: "empty string", providerStatus: "", want: StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeProviderStatus(tt.providerStatus))
		})
	}
}

// Client belum di-init (mis. env kosong di staging) → resolver tidak boleh
// error, cukup PENDING supaya bisa dicoba lagi.
func TestResolvePaymentStatus_NotConfigured(t *testing.T) {
	xenditClient = nil

	status, raw := ResolvePaymentStatus(context.Background(), "inv-123")
	assert.Equal(t, StatusPending, status)
	assert.Empty(t, raw)
}

func TestCreateXenditInvoice_NotConfigured(t *testing.T) {
	xenditClient = nil

	inv, err := CreateXenditInvoice(context.Background(), CreateInvoiceParams{
		ExternalID: "MEMBERSHIP-premium-1",
		Amount:     990000,
	})
	assert.Nil(t, inv)
	assert.ErrorIs(t, err, ErrXenditNotConfigured)
}

// file: internals/features/finance/transactions/service/xendit.go
package service

import (
	"context"
	"errors"
	"log"
	"strings"

	xendit "github.com/xendit/xendit-go/v3"
	"github.com/xendit/xendit-go/v3/invoice"
)

/* =========================================================
   Xendit Client
========================================================= */

var xenditClient *xendit.XenditClient

// InitXendit harus dipanggil saat bootstrap app.
func InitXendit(secretKey string) {
	if secretKey == "" {
		log.Println("⚠️ Xendit tidak dikonfigurasi — resolver akan selalu mengembalikan PENDING")
		return
	}
	xenditClient = xendit.NewClient(secretKey)
	log.Println("✅ Xendit client siap")
}

/* =========================================================
   Payment Status Resolver
========================================================= */

// Status internal — vocabulary provider dinormalisasi ke sini.
type PaymentStatus string

const (
	StatusSuccess PaymentStatus = "SUCCESS"
	StatusPending PaymentStatus = "PENDING"
	StatusFailed  PaymentStatus = "FAILED"
)

// NormalizeProviderStatus memetakan vocabulary Xendit ke status internal.
// SUCCEEDED/PAID/SETTLED/CAPTURED = sudah dibayar; sisanya dianggap PENDING
// (termasuk EXPIRED — keputusan mem-FAIL-kan ada di pemanggil yang melihat
// raw status, bukan di resolver).
func NormalizeProviderStatus(providerStatus string) PaymentStatus {
	switch strings.ToUpper(providerStatus) {
	case "SUCCEEDED", "PAID", "SETTLED", "CAPTURED":
		return StatusSuccess
	default:
		return StatusPending
	}
}

// ResolvePaymentStatus menanyakan status settlement ke Xendit berdasarkan
// reference yang tersimpan. Dua bentuk reference: payment request (prefix
// "pr-") dan invoice. Error komunikasi TIDAK pernah diteruskan ke pemanggil
// — status jatuh ke PENDING supaya bisa dicoba lagi nanti.
//
// Dipanggil dari dua jalur (webhook dan endpoint polling user); keduanya
// lanjut ke proses settlement yang sama.
func ResolvePaymentStatus(ctx context.Context, reference string) (PaymentStatus, string) {
	if xenditClient == nil {
		return StatusPending, ""
	}

	if strings.HasPrefix(reference, "pr-") {
		pr, _, err := xenditClient.PaymentRequestApi.GetPaymentRequestByID(ctx, reference).Execute()
		if err != nil {
			log.Printf("[PAYMENT] Xendit payment request API error utk %s: %v", reference, err)
			return StatusPending, ""
		}
		raw := string(pr.GetStatus())
		return NormalizeProviderStatus(raw), raw
	}

	inv, _, err := xenditClient.InvoiceApi.GetInvoiceById(ctx, reference).Execute()
	if err != nil {
		log.Printf("[PAYMENT] Xendit invoice API error utk %s: %v", reference, err)
		return StatusPending, ""
	}
	raw := string(inv.GetStatus())
	return NormalizeProviderStatus(raw), raw
}

/* =========================================================
   Create Invoice (checkout)
========================================================= */

type CreateInvoiceParams struct {
	ExternalID  string
	Amount      int64
	PayerEmail  string
	Description string
}

type CreatedInvoice struct {
	InvoiceID  string
	InvoiceURL string
}

var ErrXenditNotConfigured = errors.New("xendit belum dikonfigurasi")

func CreateXenditInvoice(ctx context.Context, p CreateInvoiceParams) (*CreatedInvoice, error) {
	if xenditClient == nil {
		return nil, ErrXenditNotConfigured
	}

	req := *invoice.NewCreateInvoiceRequest(p.ExternalID, float64(p.Amount))
	req.SetPayerEmail(p.PayerEmail)
	req.SetDescription(p.Description)
	req.SetCurrency("IDR")

	inv, _, err := xenditClient.InvoiceApi.CreateInvoice(ctx).
		CreateInvoiceRequest(req).
		Execute()
	if err != nil {
		return nil, err
	}

	return &CreatedInvoice{
		InvoiceID:  inv.GetId(),
		InvoiceURL: inv.GetInvoiceUrl(),
	}, nil
}

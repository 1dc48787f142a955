// file: internals/features/finance/transactions/service/midtrans.go
package service

import (
	"errors"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

/* =========================================================
   Midtrans Client (gateway alternatif)
========================================================= */

var SnapClient snap.Client

// InitMidtrans harus dipanggil saat bootstrap app.
// useProduction=true untuk Production, false untuk Sandbox.
func InitMidtrans(serverKey string, useProduction bool) {
	if useProduction {
		SnapClient.New(serverKey, midtrans.Production)
	} else {
		SnapClient.New(serverKey, midtrans.Sandbox)
	}
}

type SnapParams struct {
	OrderID      string
	Amount       int64
	ItemName     string
	CustomerName string
	Email        string
	Phone        string
}

// GenerateSnapToken membuat snap token untuk checkout via Midtrans.
func GenerateSnapToken(p SnapParams) (string, string, error) {
	if p.Amount <= 0 {
		return "", "", errors.New("invalid amount")
	}
	if p.OrderID == "" {
		return "", "", errors.New("order_id is required")
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  p.OrderID,
			GrossAmt: p.Amount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: p.CustomerName,
			Email: p.Email,
			Phone: p.Phone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       p.OrderID,
				Price:    p.Amount,
				Qty:      1,
				Name:     truncate(p.ItemName, 50),
				Category: "MEMBERSHIP",
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n]
}

package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is an append-only amount received against an invoice.
//
// ProviderPaymentID is only filled when the payment was charged through the
// card gateway.
type Payment struct {
	ID                string          `json:"id"`
	InvoiceID         string          `json:"invoice_id"`
	Date              string          `json:"date"`
	Amount            decimal.Decimal `json:"amount"`
	Method            string          `json:"method"`
	ProviderPaymentID string          `json:"provider_payment_id,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

package request

import (
	"encoding/json"

	"taller_mecanico/internal/usecase"

	"github.com/shopspring/decimal"
)

// PaymentRequest records an amount received against an invoice.
//
// `mp_payload` is forwarded as-is to Mercado Pago when method is mercadopago.
type PaymentRequest struct {
	Date      string          `json:"date"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"number"`
	Method    string          `json:"method"`
	MPPayload json.RawMessage `json:"mp_payload,omitempty" swaggertype:"object"`
}

func (r PaymentRequest) ToInput() usecase.PaymentInput {
	return usecase.PaymentInput{Date: r.Date, Amount: r.Amount, Method: r.Method, MPPayload: r.MPPayload}
}

package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts external card payment providers (e.g. Mercado Pago).
//
// Invoice payments made with the card method are charged through it before
// being recorded, and the provider payment id is kept on the payment.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}

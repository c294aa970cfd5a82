package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/shopspring/decimal"
)

// PaymentMethodMercadoPago routes a payment through the card gateway.
const PaymentMethodMercadoPago = "mercadopago"

var (
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentDeclined                = errors.New("payment declined by provider")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

func isCardMethod(method string) bool {
	return strings.EqualFold(strings.TrimSpace(method), PaymentMethodMercadoPago)
}

// chargeCard sends the payment to the gateway. The amount and the invoice
// reference always come from the ledger, never from the caller's payload.
func (u *InvoiceUseCase) chargeCard(ctx context.Context, invoiceID string, amount decimal.Decimal, payload json.RawMessage) (string, error) {
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured invoice_id=%s", invoiceID)
		return "", ErrPaymentGatewayNotConfigured
	}
	if len(strings.TrimSpace(string(payload))) == 0 {
		payload = json.RawMessage("{}")
	}

	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil || reqMap == nil {
		log.Printf("[payment][usecase] invalid payload (not-json-object) invoice_id=%s", invoiceID)
		return "", ErrInvalidMPPayload
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = invoiceID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Factura %s", invoiceID)
	}
	reqMap["transaction_amount"] = amount.InexactFloat64()

	body, err := json.Marshal(reqMap)
	if err != nil {
		return "", err
	}

	log.Printf("[payment][usecase] calling payment gateway invoice_id=%s amount=%s", invoiceID, amount)
	providerID, providerStatus, _, err := u.gateway.CreatePayment(ctx, body)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed invoice_id=%s err=%v", invoiceID, err)
		switch {
		case isGatewayCustomerNotFound(err):
			return "", ErrPaymentGatewayCustomerNotFound
		case isGatewayInvalidUsers(err):
			return "", ErrPaymentGatewayInvalidUsers
		case isGatewayUnauthorized(err):
			return "", ErrPaymentGatewayUnauthorized
		case isGatewayBadRequest(err):
			return "", ErrPaymentGatewayBadRequest
		}
		return "", err
	}
	if !strings.EqualFold(providerStatus, "approved") {
		log.Printf("[payment][usecase] payment not approved invoice_id=%s provider_payment_id=%s provider_status=%s", invoiceID, providerID, providerStatus)
		return "", ErrPaymentDeclined
	}
	log.Printf("[payment][usecase] payment gateway success invoice_id=%s provider_payment_id=%s", invoiceID, providerID)
	return providerID, nil
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}

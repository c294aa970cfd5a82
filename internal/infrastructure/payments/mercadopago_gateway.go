package payments

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"taller_mecanico/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
)

// Statuses returned by Mercado Pago that the shop cares about.
const (
	StatusApproved = "approved"
	StatusPending  = "in_process"
	StatusRejected = "rejected"
)

// MercadoPagoGateway charges invoice payments made by card.
type MercadoPagoGateway struct {
	client payment.Client
	mock   bool
	now    func() time.Time
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

// NewMercadoPagoGateway builds the card gateway. In mock mode no call leaves
// the process and the outcome follows the Mercado Pago test cardholder names
// (APRO approves, CONT stays pending, OTHE is rejected).
func NewMercadoPagoGateway(accessToken string, mock bool) (*MercadoPagoGateway, error) {
	if mock {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mock: true, now: time.Now}, nil
	}
	if strings.TrimSpace(accessToken) == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] sdk config failed err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client ready")
	return &MercadoPagoGateway{client: payment.NewClient(cfg), now: time.Now}, nil
}

// CreatePayment sends the charge built by the invoice use case. The body
// already carries transaction_amount and external_reference (the invoice id).
func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, body json.RawMessage) (string, string, json.RawMessage, error) {
	switch {
	case g == nil:
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	case g.mock:
		return g.simulate(body)
	case g.client == nil:
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}

	var req payment.Request
	if err := json.Unmarshal(body, &req); err != nil {
		return "", "", nil, err
	}
	log.Printf("[payment][gateway] charge start external_reference=%s amount=%v", req.ExternalReference, req.TransactionAmount)

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] charge failed external_reference=%s err=%v", req.ExternalReference, err)
		return "", "", nil, err
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	providerID := strconv.FormatInt(int64(resp.ID), 10)
	log.Printf("[payment][gateway] charge done external_reference=%s provider_payment_id=%s status=%s", req.ExternalReference, providerID, resp.Status)
	return providerID, resp.Status, raw, nil
}

type simulatedCharge struct {
	ExternalReference string  `json:"external_reference"`
	TransactionAmount float64 `json:"transaction_amount"`
	Payer             struct {
		FirstName string `json:"first_name"`
	} `json:"payer"`
}

func (g *MercadoPagoGateway) simulate(body json.RawMessage) (string, string, json.RawMessage, error) {
	var charge simulatedCharge
	if len(body) > 0 {
		if err := json.Unmarshal(body, &charge); err != nil {
			return "", "", nil, err
		}
	}

	status, detail := StatusApproved, "accredited"
	switch strings.ToUpper(strings.TrimSpace(charge.Payer.FirstName)) {
	case "CONT":
		status, detail = StatusPending, "pending_contingency"
	case "OTHE":
		status, detail = StatusRejected, "cc_rejected_other_reason"
	}

	now := g.now().UTC()
	providerID := "mock-" + strconv.FormatInt(now.UnixNano(), 10)
	raw, err := json.Marshal(map[string]any{
		"id":                 providerID,
		"status":             status,
		"status_detail":      detail,
		"external_reference": charge.ExternalReference,
		"transaction_amount": charge.TransactionAmount,
		"date_created":       now.Format(time.RFC3339Nano),
	})
	if err != nil {
		return "", "", nil, err
	}
	log.Printf("[payment][gateway] mock charge external_reference=%s provider_payment_id=%s status=%s", charge.ExternalReference, providerID, status)
	return providerID, status, raw, nil
}

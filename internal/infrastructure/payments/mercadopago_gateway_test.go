package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestNewMercadoPagoGateway(t *testing.T) {
	t.Run("missing token without mock", func(t *testing.T) {
		_, err := NewMercadoPagoGateway("  ", false)
		if !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
			t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
		}
	})

	t.Run("mock mode needs no token", func(t *testing.T) {
		g, err := NewMercadoPagoGateway("", true)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !g.mock {
			t.Fatalf("expected mock mode")
		}
	})
}

func TestMercadoPagoGateway_Simulate(t *testing.T) {
	g, _ := NewMercadoPagoGateway("", true)
	g.now = func() time.Time { return time.Unix(1700000000, 0) }

	cases := []struct {
		name   string
		payer  string
		status string
	}{
		{"approved by default", "", StatusApproved},
		{"approved test cardholder", "APRO", StatusApproved},
		{"pending test cardholder", "cont", StatusPending},
		{"rejected test cardholder", "OTHE", StatusRejected},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := json.RawMessage(`{"transaction_amount":200,"external_reference":"inv-1","payer":{"first_name":"` + tc.payer + `"}}`)
			id, status, raw, err := g.CreatePayment(context.Background(), body)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if status != tc.status {
				t.Fatalf("expected %s, got %s", tc.status, status)
			}
			if id != "mock-1700000000000000000" {
				t.Fatalf("unexpected id %s", id)
			}

			var resp map[string]any
			if err := json.Unmarshal(raw, &resp); err != nil {
				t.Fatalf("response is not json: %v", err)
			}
			if resp["external_reference"] != "inv-1" || resp["transaction_amount"] != float64(200) {
				t.Fatalf("unexpected response: %v", resp)
			}
		})
	}

	t.Run("payload that is not an object", func(t *testing.T) {
		if _, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`[1]`)); err == nil {
			t.Fatalf("expected decode error")
		}
	})
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	_, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`))
	if !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
}

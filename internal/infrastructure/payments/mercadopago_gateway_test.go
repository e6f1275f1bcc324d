package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"conserta_ja/internal/usecase/interfaces"
)

func TestNewMercadoPagoGateway(t *testing.T) {
	t.Run("missing token is rejected", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")
		_, err := NewMercadoPagoGateway("")
		if !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
			t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
		}
	})

	t.Run("mock mode needs no token", func(t *testing.T) {
		t.Setenv("MERCADOPAGO_MOCK", "on")
		g, err := NewMercadoPagoGateway("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !g.MockMode() {
			t.Fatal("expected mock mode gateway")
		}
	})
}

func TestMercadoPagoGateway_MockCreate(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "1")
	g, err := NewMercadoPagoGateway("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	charge := interfaces.PaymentCharge{
		JobID:       "job-9",
		Amount:      321.5,
		Description: "Job job-9",
		Payload:     json.RawMessage(`{"payment_method_id":"pix"}`),
	}
	id, status, resp, err := g.CreatePayment(context.Background(), charge)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == "" || status != "approved" {
		t.Fatalf("expected a synthesized approval, got id=%q status=%q", id, status)
	}

	var m map[string]any
	if err := json.Unmarshal(resp, &m); err != nil {
		t.Fatalf("mock response must be valid json: %v", err)
	}
	if m["external_reference"] != "job-9" {
		t.Fatalf("expected external_reference job-9, got %v", m["external_reference"])
	}
	if m["transaction_amount"] != 321.5 {
		t.Fatalf("expected the charge amount, got %v", m["transaction_amount"])
	}
	if m["status_detail"] != "accredited" {
		t.Fatalf("expected accredited status detail, got %v", m["status_detail"])
	}
}

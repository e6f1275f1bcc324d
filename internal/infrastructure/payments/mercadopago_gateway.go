package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"conserta_ja/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway charges customers through the Mercado Pago payments API.
// The amount and job linkage of every charge come from the PaymentCharge, not
// from the client payload; the payload only contributes the payment
// instrument (payment_method_id, token, payer and so on).
//
// With PAYMENT_GATEWAY_MOCK or MERCADOPAGO_MOCK set, the gateway approves
// every charge locally without calling Mercado Pago. That is the mode the
// local compose stack and the test suites run in.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) MockMode() bool {
	return g != nil && g.mockMode
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, charge interfaces.PaymentCharge) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g.MockMode() {
		return g.mockCreate(charge)
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] create start job_id=%s amount=%.2f", charge.JobID, charge.Amount)

	var req payment.Request
	if len(charge.Payload) > 0 {
		if err := json.Unmarshal(charge.Payload, &req); err != nil {
			log.Printf("[payment][gateway] payload unmarshal failed job_id=%s err=%v", charge.JobID, err)
			return "", "", nil, err
		}
	}

	// The charge, not the payload, decides what is billed and to which job
	// the provider links it.
	req.TransactionAmount = charge.Amount
	if req.ExternalReference == "" {
		req.ExternalReference = charge.JobID
	}
	if req.Description == "" {
		req.Description = charge.Description
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed job_id=%s err=%v", charge.JobID, err)
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] response marshal failed err=%v", err)
		return "", "", nil, err
	}
	log.Printf("[payment][gateway] create success job_id=%s provider_payment_id=%d provider_status=%s", charge.JobID, resp.ID, resp.Status)

	return fmt.Sprintf("%d", resp.ID), resp.Status, b, nil
}

func (g *MercadoPagoGateway) mockCreate(charge interfaces.PaymentCharge) (string, string, json.RawMessage, error) {
	log.Printf("[payment][gateway] mock create start job_id=%s amount=%.2f", charge.JobID, charge.Amount)

	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp := map[string]any{
		"id":                 id,
		"status":             "approved",
		"status_detail":      "accredited",
		"external_reference": charge.JobID,
		"description":        charge.Description,
		"transaction_amount": charge.Amount,
		"date_created":       now,
		"date_approved":      now,
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] mock response marshal failed err=%v", err)
		return "", "", nil, err
	}

	log.Printf("[payment][gateway] mock create success job_id=%s provider_payment_id=%s provider_status=approved", charge.JobID, id)
	return id, "approved", b, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
